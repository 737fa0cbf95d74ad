package waves

import (
	"fmt"

	"wavespec/internal/lod"
)

// Components holds one generation pass as parallel arrays, index aligned.
type Components struct {
	Wavelengths []float64
	Amplitudes  []float64
	AnglesRad   []float64
	Phases      []float64
	LODs        []lod.Tag

	// Pass-wide settings for renderers
	WindDirectionDeg float64
	Choppiness       float64
}

func newComponents(n int) *Components {
	return &Components{
		Wavelengths: make([]float64, n),
		Amplitudes:  make([]float64, n),
		AnglesRad:   make([]float64, n),
		Phases:      make([]float64, n),
		LODs:        make([]lod.Tag, n),
	}
}

func (c *Components) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Wavelengths)
}

// Active counts the components with a LOD assignment.
func (c *Components) Active() int {
	n := 0
	for _, t := range c.LODs {
		if t != lod.Inactive {
			n++
		}
	}
	return n
}

// ByLOD counts components per tag, inactive included.
func (c *Components) ByLOD() map[lod.Tag]int {
	out := make(map[lod.Tag]int)
	for _, t := range c.LODs {
		out[t]++
	}
	return out
}

// Label names component i the way scene objects are named.
func (c *Components) Label(i int) string {
	return fmt.Sprintf("Wavelength %.3f", c.Wavelengths[i])
}

// Batch is the float32 copy of a pass used for GPU uploads.
type Batch struct {
	Wavelengths []float32
	Amplitudes  []float32
	AnglesRad   []float32
	Phases      []float32
	LODs        []int32
}

// Float32 narrows the pass for upload.
func (c *Components) Float32() Batch {
	n := c.Len()
	b := Batch{
		Wavelengths: make([]float32, n),
		Amplitudes:  make([]float32, n),
		AnglesRad:   make([]float32, n),
		Phases:      make([]float32, n),
		LODs:        make([]int32, n),
	}
	for i := 0; i < n; i++ {
		b.Wavelengths[i] = float32(c.Wavelengths[i])
		b.Amplitudes[i] = float32(c.Amplitudes[i])
		b.AnglesRad[i] = float32(c.AnglesRad[i])
		b.Phases[i] = float32(c.Phases[i])
		b.LODs[i] = int32(c.LODs[i])
	}
	return b
}
