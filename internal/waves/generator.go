package waves

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"wavespec/internal/lod"
	"wavespec/internal/profiling"
	"wavespec/internal/spectrum"
)

// DefaultSeed is the seed every pass is drawn from unless configured otherwise.
const DefaultSeed int64 = 0

// Generator turns a spectrum into wave components once per update.
type Generator struct {
	Spectrum         *spectrum.Spectrum
	Seed             int64
	WindDirectionDeg float64
	Choppiness       float64 // Horizontal displacement factor, passed through untouched

	// OnResize is called with the new count when a pass yields a different
	// number of components than the previous one.
	OnResize func(n int)

	rng       *rand.Rand
	lastCount int
}

// NewGenerator returns a generator over s using DefaultSeed.
func NewGenerator(s *spectrum.Spectrum) *Generator {
	return &Generator{Spectrum: s, Seed: DefaultSeed}
}

// WindDirection is the unit vector of the wind heading on the XZ plane.
func (g *Generator) WindDirection() mgl64.Vec2 {
	rad := mgl64.DegToRad(g.WindDirectionDeg)
	return mgl64.Vec2{math.Cos(rad), math.Sin(rad)}
}

// Update runs one full pass: regenerate the raw components from the fixed
// seed, then derive amplitudes and LOD tags against p. The second result is
// true when the component count changed since the previous pass.
func (g *Generator) Update(p lod.Provider) (*Components, bool) {
	defer profiling.Track("waves.Update")()

	wavelengths, anglesDeg, phases := g.regenerate()
	out := g.derive(wavelengths, anglesDeg, phases, lod.NewBinner(p))

	resized := out.Len() != g.lastCount
	g.lastCount = out.Len()
	if resized && g.OnResize != nil {
		g.OnResize(out.Len())
	}
	return out, resized
}

func (g *Generator) regenerate() (wavelengths, anglesDeg, phases []float64) {
	defer profiling.Track("waves.regenerate")()

	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(g.Seed))
	} else {
		g.rng.Seed(g.Seed)
	}
	return g.Spectrum.GenerateComponents(g.rng)
}

func (g *Generator) derive(wavelengths, anglesDeg, phases []float64, binner lod.Binner) *Components {
	defer profiling.Track("waves.derive")()

	out := newComponents(len(wavelengths))
	out.WindDirectionDeg = g.WindDirectionDeg
	out.Choppiness = g.Choppiness
	for i, wl := range wavelengths {
		amp := Amplitude(g.Spectrum.Power(wl), wl)
		out.Wavelengths[i] = wl
		out.Amplitudes[i] = amp
		out.AnglesRad[i] = mgl64.DegToRad(g.WindDirectionDeg + anglesDeg[i])
		out.Phases[i] = phases[i]
		out.LODs[i] = binner.Assign(wl, amp)
	}
	return out
}
