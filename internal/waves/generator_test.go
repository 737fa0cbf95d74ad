package waves

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavespec/internal/lod"
	"wavespec/internal/spectrum"
)

func newSpectrum(t testing.TB, octaves int, base float64) *spectrum.Spectrum {
	t.Helper()
	cfg := spectrum.NewConfig()
	cfg.NumOctaves = octaves
	cfg.BaseWavelength = base
	s, err := spectrum.New(cfg)
	require.NoError(t, err)
	return s
}

type fixedProvider struct {
	count int
	max0  float64
}

func (p fixedProvider) LodCount() int { return p.count }

func (p fixedProvider) MaxWavelength(lodIdx int) float64 { return math.Ldexp(p.max0, lodIdx) }

func TestPeriodAndAmplitude(t *testing.T) {
	for _, wl := range []float64{0.25, 1, 10, 128} {
		assert.InDelta(t, math.Sqrt(2*math.Pi*wl/spectrum.Gravity), Period(wl), 1e-12, "Period(%v)", wl)
		assert.InDelta(t, wl/Period(wl), DeepWaterPhaseSpeed(wl), 1e-12)
	}

	// One second period.
	wl := spectrum.Gravity / (2 * math.Pi)
	assert.InDelta(t, 1.0, Period(wl), 1e-12)
	assert.InDelta(t, 2.0, Amplitude(4, wl), 1e-12)

	assert.Zero(t, Amplitude(0, 5))
	assert.Zero(t, Amplitude(-1, 5))
	assert.Zero(t, Amplitude(math.NaN(), 5))

	// Degenerate wavelengths are floored, never dividing by zero.
	for _, wl := range []float64{0, -3, 1e-9} {
		a := Amplitude(1, wl)
		assert.False(t, math.IsInf(a, 0) || math.IsNaN(a), "Amplitude(1, %v) = %v", wl, a)
		assert.Equal(t, Period(MinWavelength), Period(wl))
	}
}

func TestUpdateAmplitudes(t *testing.T) {
	s := newSpectrum(t, 8, 1)
	s.ApplyPiersonMoskowitz(10)
	require.NoError(t, s.SetEnabled(2, false))

	g := NewGenerator(s)
	comps, _ := g.Update(lod.NewChain(4))

	for i := 0; i < comps.Len(); i++ {
		assert.GreaterOrEqual(t, comps.Amplitudes[i], 0.0, "component %d", i)
	}
	assert.Zero(t, comps.Amplitudes[2], "disabled bucket")

	assert.InDelta(t, math.Sqrt(s.Power(8)/Period(8)), comps.Amplitudes[3], 1e-12)
	assert.Greater(t, comps.Amplitudes[3], 0.0)
}

func TestUpdateDeterministic(t *testing.T) {
	s := newSpectrum(t, 8, 1)
	s.ApplyPiersonMoskowitz(10)
	chain := lod.NewChain(6)

	g := NewGenerator(s)
	g.Seed = 42
	g.WindDirectionDeg = 30
	first, _ := g.Update(chain)
	second, _ := g.Update(chain)
	assert.Equal(t, first, second)

	other := NewGenerator(s)
	other.Seed = 42
	other.WindDirectionDeg = 30
	third, _ := other.Update(chain)
	assert.Equal(t, first, third)

	wl, ang, ph := s.GenerateComponentsSeeded(42)
	assert.Equal(t, wl, first.Wavelengths)
	assert.Equal(t, ph, first.Phases)
	for i := range ang {
		assert.InDelta(t, (30+ang[i])*math.Pi/180, first.AnglesRad[i], 1e-12)
	}
}

func TestAllDisabledKeepsLength(t *testing.T) {
	s := newSpectrum(t, 8, 1)
	s.ApplyPiersonMoskowitz(10)
	chain := lod.NewChain(6)
	g := NewGenerator(s)

	before, _ := g.Update(chain)
	s.SetAllEnabled(false)
	after, resized := g.Update(chain)

	assert.False(t, resized)
	require.Equal(t, before.Len(), after.Len())
	for i := 0; i < after.Len(); i++ {
		assert.Zero(t, after.Amplitudes[i], "component %d", i)
		assert.Equal(t, lod.Inactive, after.LODs[i])
	}
	assert.Zero(t, after.Active())
	assert.Equal(t, before.Wavelengths, after.Wavelengths)
	assert.Equal(t, before.Phases, after.Phases)
}

func TestResizeDetection(t *testing.T) {
	s := newSpectrum(t, 8, 1)
	g := NewGenerator(s)

	var calls []int
	g.OnResize = func(n int) { calls = append(calls, n) }

	chain := lod.NewChain(4)
	_, resized := g.Update(chain)
	assert.True(t, resized, "first pass sizes the collaborator")
	_, resized = g.Update(chain)
	assert.False(t, resized)

	g.Spectrum = newSpectrum(t, 5, 1)
	comps, resized := g.Update(chain)
	assert.True(t, resized)
	assert.Equal(t, 5, comps.Len())
	assert.Equal(t, []int{8, 5}, calls)
}

func TestUpdateBinsIntoLODs(t *testing.T) {
	s := newSpectrum(t, 8, 1)
	for i := 0; i < s.Len(); i++ {
		require.NoError(t, s.SetPowerLog(i, 0))
	}
	g := NewGenerator(s)
	comps, _ := g.Update(fixedProvider{count: 4, max0: 10})

	// 1, 2, 4 are below LOD 0. 8 -> lod 0, 16 -> 1, 32 -> 2, 64 -> 3, 128 -> overflow.
	want := []lod.Tag{lod.Inactive, lod.Inactive, lod.Inactive, 0, 1, 2, 3, 4}
	assert.Equal(t, want, comps.LODs)
	assert.Equal(t, 5, comps.Active())
	assert.Equal(t, map[lod.Tag]int{lod.Inactive: 3, 0: 1, 1: 1, 2: 1, 3: 1, 4: 1}, comps.ByLOD())
}

func TestComponentsHelpers(t *testing.T) {
	s := newSpectrum(t, 4, spectrum.DefaultBaseWavelength)
	comps, _ := NewGenerator(s).Update(lod.NewChain(2))

	assert.Equal(t, "Wavelength 0.250", comps.Label(0))
	assert.Equal(t, "Wavelength 2.000", comps.Label(3))

	b := comps.Float32()
	require.Len(t, b.Wavelengths, 4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, float32(comps.Wavelengths[i]), b.Wavelengths[i])
		assert.Equal(t, int32(comps.LODs[i]), b.LODs[i])
	}

	var nilComps *Components
	assert.Zero(t, nilComps.Len())
}

func TestUpdateCarriesPassSettings(t *testing.T) {
	s := newSpectrum(t, 4, spectrum.DefaultBaseWavelength)
	g := NewGenerator(s)
	g.WindDirectionDeg = -45
	g.Choppiness = 1.25

	comps, _ := g.Update(lod.NewChain(2))
	assert.Equal(t, -45.0, comps.WindDirectionDeg)
	assert.Equal(t, 1.25, comps.Choppiness)

	g.Choppiness = 0
	comps, _ = g.Update(lod.NewChain(2))
	assert.Zero(t, comps.Choppiness)
}

func TestWindDirection(t *testing.T) {
	g := &Generator{WindDirectionDeg: 90}
	d := g.WindDirection()
	assert.InDelta(t, 0, d.X(), 1e-12)
	assert.InDelta(t, 1, d.Y(), 1e-12)
	assert.InDelta(t, 1, d.Len(), 1e-12)
}

func BenchmarkUpdate(b *testing.B) {
	s := newSpectrum(b, spectrum.DefaultNumOctaves, spectrum.DefaultBaseWavelength)
	s.ApplyJONSWAP(10, 1e5)
	g := NewGenerator(s)
	chain := lod.NewChain(8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Update(chain)
	}
}
