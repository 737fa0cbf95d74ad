package editor

import (
	"github.com/lucasb-eyer/go-colorful"

	"wavespec/internal/lod"
)

var (
	inactiveColor = colorful.Color{R: 0.35, G: 0.35, B: 0.35}
	overflowColor = colorful.Color{R: 0.95, G: 0.95, B: 0.95}
)

// BandColor picks the colour a tag is drawn with. Concrete LODs walk the hue
// wheel from blue (finest) to red (coarsest).
func BandColor(t lod.Tag, count int) colorful.Color {
	switch {
	case t == lod.Inactive || t < 0:
		return inactiveColor
	case int(t) >= count:
		return overflowColor
	}
	f := 0.0
	if count > 1 {
		f = float64(t) / float64(count-1)
	}
	return colorful.Hsv(220-220*f, 0.7, 0.95)
}
