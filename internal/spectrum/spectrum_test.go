package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpectrum(t *testing.T, octaves int, base float64) *Spectrum {
	t.Helper()
	cfg := NewConfig()
	cfg.NumOctaves = octaves
	cfg.BaseWavelength = base
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestNewDefaults(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultNumOctaves, s.Len())
	for i := 0; i < s.Len(); i++ {
		b, err := s.Bucket(i)
		require.NoError(t, err)
		assert.Equal(t, i, b.Index)
		assert.True(t, b.Enabled)
		assert.Equal(t, DefaultMinPowerLog, b.PowerLog)
	}
	assert.True(t, s.AllEnabled())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no octaves", func(c *Config) { c.NumOctaves = 0 }},
		{"zero base", func(c *Config) { c.BaseWavelength = 0 }},
		{"negative base", func(c *Config) { c.BaseWavelength = -1 }},
		{"NaN base", func(c *Config) { c.BaseWavelength = math.NaN() }},
		{"empty power range", func(c *Config) { c.MinPowerLog, c.MaxPowerLog = 2, 2 }},
		{"inverted power range", func(c *Config) { c.MinPowerLog, c.MaxPowerLog = 3, -3 }},
		{"spread too wide", func(c *Config) { c.DirectionSpreadDeg = 270 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			_, err := New(cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSmallWavelengthDoubles(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	first, err := s.SmallWavelength(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseWavelength, first)

	for i := 0; i+1 < s.Len(); i++ {
		assert.Equal(t, 2*s.MustSmallWavelength(i), s.MustSmallWavelength(i+1), "octave %d", i)
	}
}

func TestOutOfRangeIndex(t *testing.T) {
	s := newTestSpectrum(t, 4, 1)

	for _, i := range []int{-1, 4, 100} {
		_, err := s.SmallWavelength(i)
		assert.True(t, errors.Is(err, ErrOctaveOutOfRange), "SmallWavelength(%d)", i)

		assert.ErrorIs(t, s.SetPowerLog(i, 0), ErrOctaveOutOfRange)
		assert.ErrorIs(t, s.SetEnabled(i, false), ErrOctaveOutOfRange)

		_, err = s.PowerLog(i)
		assert.ErrorIs(t, err, ErrOctaveOutOfRange)
		_, err = s.Enabled(i)
		assert.ErrorIs(t, err, ErrOctaveOutOfRange)
		_, err = s.Bucket(i)
		assert.ErrorIs(t, err, ErrOctaveOutOfRange)
	}

	assert.Panics(t, func() { s.MustSmallWavelength(4) })
}

func TestSetPowerLogClamps(t *testing.T) {
	s := newTestSpectrum(t, 4, 1)

	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-1.5, -1.5},
		{100, DefaultMaxPowerLog},
		{-100, DefaultMinPowerLog},
		{math.Inf(1), DefaultMaxPowerLog},
		{math.Inf(-1), DefaultMinPowerLog},
		{math.NaN(), DefaultMinPowerLog},
	}
	for _, tt := range tests {
		require.NoError(t, s.SetPowerLog(2, tt.in))
		got, err := s.PowerLog(2)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "SetPowerLog(%v)", tt.in)
	}
}

func TestPowerNearestBucket(t *testing.T) {
	s := newTestSpectrum(t, 8, 1)
	powerLog := func(i int) float64 { return -0.5 * float64(i) }
	for i := 0; i < s.Len(); i++ {
		require.NoError(t, s.SetPowerLog(i, powerLog(i)))
		got, err := s.PowerLog(i)
		require.NoError(t, err)
		require.Equal(t, powerLog(i), got, "bucket %d must stay inside the power range", i)
	}

	tests := []struct {
		wavelength float64
		bucket     int
	}{
		{1, 0},
		{4, 2},
		{2.8, 1}, // log2 = 1.49
		{3, 2},   // log2 = 1.58
		{2.9, 2}, // log2 = 1.54, linearly nearer bucket 1
		{0.1, 0}, // below the first bucket
		{0, 0},   // degenerate
		{-5, 0},  // degenerate
		{1e6, 7}, // above the last bucket
		{128, 7}, // exact last bucket
		{100, 7}, // log2 = 6.64
		{90, 6},  // log2 = 6.49
	}
	for _, tt := range tests {
		want := math.Pow(10, powerLog(tt.bucket))
		assert.InDelta(t, want, s.Power(tt.wavelength), 1e-12, "Power(%v)", tt.wavelength)
	}

	assert.InDelta(t, 1.0, s.Power(math.NaN()), 1e-12, "NaN maps to the first bucket")
}

func TestPowerDisabledBucketIsZero(t *testing.T) {
	s := newTestSpectrum(t, 8, 1)
	require.NoError(t, s.SetPowerLog(3, 2))
	require.NoError(t, s.SetEnabled(3, false))

	assert.Equal(t, 0.0, s.Power(8))
	assert.False(t, s.AllEnabled())

	s.SetAllEnabled(true)
	assert.InDelta(t, 100.0, s.Power(8), 1e-9)
}

func TestSnapshotRestore(t *testing.T) {
	s := newTestSpectrum(t, 4, 1)
	require.NoError(t, s.SetPowerLog(1, 1.25))
	require.NoError(t, s.SetEnabled(2, false))

	st := s.Snapshot()
	assert.Equal(t, []float64{-6, 1.25, -6, -6}, st.PowerLog)
	assert.Equal(t, []bool{true, true, false, true}, st.Enabled)

	other := newTestSpectrum(t, 4, 1)
	st.PowerLog[3] = 99
	require.NoError(t, other.Restore(st))
	got, err := other.PowerLog(3)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxPowerLog, got)
	on, err := other.Enabled(2)
	require.NoError(t, err)
	assert.False(t, on)

	err = other.Restore(State{PowerLog: []float64{0}, Enabled: []bool{true}})
	assert.ErrorIs(t, err, ErrStateMismatch)
	got, err = other.PowerLog(1)
	require.NoError(t, err)
	assert.Equal(t, 1.25, got, "failed restore must not write")
}
