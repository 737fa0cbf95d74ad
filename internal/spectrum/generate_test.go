package spectrum

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateComponentsDeterministic(t *testing.T) {
	s := newTestSpectrum(t, 8, 1)
	s.ApplyPiersonMoskowitz(10)

	wl1, ang1, ph1 := s.GenerateComponentsSeeded(42)
	wl2, ang2, ph2 := s.GenerateComponentsSeeded(42)

	assert.Equal(t, []float64{1, 2, 4, 8, 16, 32, 64, 128}, wl1)
	assert.Equal(t, wl1, wl2)
	assert.Equal(t, ang1, ang2)
	assert.Equal(t, ph1, ph2)

	_, ang3, _ := s.GenerateComponentsSeeded(43)
	assert.NotEqual(t, ang1, ang3, "different seeds should give different directions")
}

func TestGenerateComponentsLeavesOtherStreamsAlone(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	ambient := rand.New(rand.NewSource(7))
	reference := rand.New(rand.NewSource(7))

	for i := 0; i < 5; i++ {
		a := ambient.Float64()
		s.GenerateComponentsSeeded(42)
		assert.Equal(t, reference.Float64(), a, "draw %d", i)
	}
}

func TestGenerateComponentsRanges(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	for seed := int64(0); seed < 20; seed++ {
		wl, ang, ph := s.GenerateComponentsSeeded(seed)
		require.Len(t, wl, s.Len())
		require.Len(t, ang, s.Len())
		require.Len(t, ph, s.Len())
		for i := range wl {
			assert.GreaterOrEqual(t, ang[i], -DefaultDirectionSpreadDeg)
			assert.Less(t, ang[i], DefaultDirectionSpreadDeg)
			assert.GreaterOrEqual(t, ph[i], 0.0)
			assert.Less(t, ph[i], 2*math.Pi)
		}
	}
}

func TestGenerateComponentsIgnoresEnabledFlags(t *testing.T) {
	s := newTestSpectrum(t, 6, 0.5)
	wl, ang, ph := s.GenerateComponentsSeeded(9)

	require.NoError(t, s.SetEnabled(2, false))
	s.SetAllEnabled(false)
	wlOff, angOff, phOff := s.GenerateComponentsSeeded(9)

	assert.Equal(t, wl, wlOff)
	assert.Equal(t, ang, angOff)
	assert.Equal(t, ph, phOff)
}

func TestGenerateComponentsSpread(t *testing.T) {
	cfg := NewConfig()
	cfg.DirectionSpreadDeg = 0
	s, err := New(cfg)
	require.NoError(t, err)

	_, ang, _ := s.GenerateComponentsSeeded(3)
	for i, a := range ang {
		assert.Zero(t, a, "component %d", i)
	}
}

func BenchmarkGenerateComponents(b *testing.B) {
	s, err := New(nil)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng.Seed(1)
		_, _, _ = s.GenerateComponents(rng)
	}
}
