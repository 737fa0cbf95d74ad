package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allPresets = []Preset{PresetPhillips, PresetPiersonMoskowitz, PresetJONSWAP}

func TestPresetsStayInRange(t *testing.T) {
	winds := []float64{0, -5, 0.1, 10, 1000, math.NaN(), math.Inf(1), math.Inf(-1)}
	fetches := []float64{0, -1, 1e5, math.NaN()}

	for _, p := range allPresets {
		for _, u := range winds {
			for _, f := range fetches {
				s, err := New(nil)
				require.NoError(t, err)
				require.NoError(t, s.Apply(p, u, f))
				for i := 0; i < s.Len(); i++ {
					v, _ := s.PowerLog(i)
					assert.False(t, math.IsNaN(v), "%v wind=%v fetch=%v bucket %d is NaN", p, u, f, i)
					assert.GreaterOrEqual(t, v, DefaultMinPowerLog)
					assert.LessOrEqual(t, v, DefaultMaxPowerLog)
				}
			}
		}
	}
}

func TestZeroWindGivesMinimumPower(t *testing.T) {
	for _, p := range allPresets {
		s, err := New(nil)
		require.NoError(t, err)
		for i := 0; i < s.Len(); i++ {
			require.NoError(t, s.SetPowerLog(i, 1))
		}
		require.NoError(t, s.Apply(p, 0, 1e5))
		for i := 0; i < s.Len(); i++ {
			v, _ := s.PowerLog(i)
			assert.Equal(t, DefaultMinPowerLog, v, "%v bucket %d", p, i)
		}
	}
}

func TestPiersonMoskowitzShape(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	s.ApplyPiersonMoskowitz(10)

	short, _ := s.PowerLog(0)
	mid, _ := s.PowerLog(5)
	assert.Less(t, short, mid, "longer waves carry more energy below the peak")
	assert.InDelta(t, -4.99, short, 0.01)
	assert.InDelta(t, -1.98, mid, 0.01)

	// Well past the peak the exponential cutoff takes over.
	tail, _ := s.PowerLog(11)
	assert.Equal(t, DefaultMinPowerLog, tail)
}

func TestPhillipsCutsBelowPeak(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	s.ApplyPhillips(10)

	v, _ := s.PowerLog(7)
	assert.InDelta(t, -0.77, v, 0.01)
	for i := 8; i < s.Len(); i++ {
		v, _ := s.PowerLog(i)
		assert.Equal(t, DefaultMinPowerLog, v, "bucket %d", i)
	}
}

func TestStrongerWindMovesEnergyToLongerWaves(t *testing.T) {
	calm, err := New(nil)
	require.NoError(t, err)
	storm, err := New(nil)
	require.NoError(t, err)

	calm.ApplyPiersonMoskowitz(5)
	storm.ApplyPiersonMoskowitz(20)

	c, _ := calm.PowerLog(9)
	st, _ := storm.PowerLog(9)
	assert.Less(t, c, st)
}

func TestJONSWAPFetch(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	s.ApplyJONSWAP(10, 1e5)

	peak, _ := s.PowerLog(7)
	assert.InDelta(t, -0.82, peak, 0.01)

	short, err := New(nil)
	require.NoError(t, err)
	short.ApplyJONSWAP(10, 0)
	assert.Equal(t, short.Snapshot(), func() State {
		ref, _ := New(nil)
		ref.ApplyJONSWAP(10, MinFetch)
		return ref.Snapshot()
	}(), "fetch is floored at MinFetch")
}

func TestFitsIgnoreEnabledFlags(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	require.NoError(t, s.SetEnabled(3, false))
	s.ApplyPiersonMoskowitz(10)

	v, _ := s.PowerLog(3)
	assert.InDelta(t, -3.18, v, 0.01)
	on, _ := s.Enabled(3)
	assert.False(t, on)
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want Preset
	}{
		{"phillips", PresetPhillips},
		{"PM", PresetPiersonMoskowitz},
		{"pierson-moskowitz", PresetPiersonMoskowitz},
		{" JONSWAP ", PresetJONSWAP},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParsePreset("tessendorf")
	assert.Error(t, err)

	for _, p := range allPresets {
		back, err := ParsePreset(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, back)
		assert.NotEmpty(t, p.Description())
	}

	assert.Equal(t, "Preset(7)", Preset(7).String())
	s, err := New(nil)
	require.NoError(t, err)
	assert.Error(t, s.Apply(Preset(7), 10, 0))
}

// Eight octaves from 1 m under a 10 m/s fully developed sea.
func TestSmallSpectrumScenario(t *testing.T) {
	s := newTestSpectrum(t, 8, 1)
	s.ApplyPiersonMoskowitz(10)

	want := []float64{-3.78, -3.18, -2.58, -1.98, -1.41, -0.93, -0.82, -2.17}
	for i, w := range want {
		v, _ := s.PowerLog(i)
		assert.InDelta(t, w, v, 0.01, "bucket %d", i)
	}

	wl, _, _ := s.GenerateComponentsSeeded(42)
	assert.Equal(t, []float64{1, 2, 4, 8, 16, 32, 64, 128}, wl)
}
