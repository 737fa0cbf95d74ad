package bands

import (
	"fmt"
	"math"

	"wavespec/internal/editor"
	"wavespec/internal/graphics"
	"wavespec/internal/graphics/renderables/ui"
	renderer "wavespec/internal/graphics/renderer"
	"wavespec/internal/lod"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	stripHeight = 36
	stripBottom = 34
	marginX     = 24
)

// Bands draws the LOD chain as a strip on a log2 wavelength axis, with one
// tick per wave component.
type Bands struct {
	ui       *ui.UI
	viewport graphics.Viewport
}

func NewBands(u *ui.UI) *Bands {
	return &Bands{ui: u}
}

func (b *Bands) Init() error { return nil }

func (b *Bands) Dispose() {}

func (b *Bands) SetViewport(v graphics.Viewport) { b.viewport = v }

func (b *Bands) Render(ctx renderer.RenderContext) {
	comps := ctx.Components
	if comps == nil || comps.Len() == 0 || ctx.Spectrum == nil {
		return
	}

	lo := math.Log2(ctx.Spectrum.MustSmallWavelength(0))
	hi := math.Log2(ctx.Spectrum.MustSmallWavelength(ctx.Spectrum.Len()-1)) + 1
	x0 := float32(marginX)
	w := b.viewport.Width - 2*marginX
	y := b.viewport.Height - stripBottom - stripHeight
	toX := func(wl float64) float32 {
		f := (math.Log2(wl) - lo) / (hi - lo)
		return x0 + w*float32(math.Max(0, math.Min(1, f)))
	}

	b.ui.DrawFilledRect(x0, y, w, stripHeight, mgl32.Vec3{0.1, 0.1, 0.1}, 0.8)

	// Band k covers [MinWavelength*2^k, MinWavelength*2^(k+1)), the overflow band runs to the end.
	bn := ctx.Binner
	for k := 0; k <= bn.Count; k++ {
		from := toX(bn.MinWavelength * math.Ldexp(1, k))
		to := x0 + w
		if k < bn.Count {
			to = toX(bn.MinWavelength * math.Ldexp(1, k+1))
		}
		if to <= from {
			continue
		}
		c := editor.BandColor(lod.Tag(k), bn.Count)
		b.ui.DrawFilledRect(from, y, to-from, 6, vec3(c.R, c.G, c.B), 0.6)
	}

	for i := 0; i < comps.Len(); i++ {
		c := editor.BandColor(comps.LODs[i], bn.Count)
		h := float32(stripHeight - 8)
		if comps.LODs[i] == lod.Inactive {
			h /= 3
		}
		b.ui.DrawFilledRect(toX(comps.Wavelengths[i])-1, y+stripHeight-h, 3, h, vec3(c.R, c.G, c.B), 0.95)
	}

	label := fmt.Sprintf("LOD 0 from %.3f m, %d bands", bn.MinWavelength, bn.Count)
	b.ui.DrawText(label, x0, y-6, 0.34, mgl32.Vec3{0.7, 0.7, 0.7})
}

func vec3(r, g, b float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(r), float32(g), float32(b)}
}
