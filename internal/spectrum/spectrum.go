package spectrum

import (
	"errors"
	"fmt"
	"math"
)

// Default configuration values for a new spectrum
const (
	DefaultNumOctaves         = 12
	DefaultBaseWavelength     = 0.25 // 2^-2 m
	DefaultMinPowerLog        = -6.0
	DefaultMaxPowerLog        = 3.0
	DefaultDirectionSpreadDeg = 90.0
)

var (
	// ErrOctaveOutOfRange is returned for bucket access outside [0, Len()).
	ErrOctaveOutOfRange = errors.New("octave index out of range")
	// ErrInvalidConfig is returned by New when the configuration cannot describe a spectrum.
	ErrInvalidConfig = errors.New("invalid spectrum config")
	// ErrStateMismatch is returned by Restore when the saved arrays do not match the bucket count.
	ErrStateMismatch = errors.New("spectrum state does not match bucket count")
)

// Config holds the fixed shape of a spectrum. It is read once at construction.
type Config struct {
	NumOctaves         int     // Number of octave buckets, fixed for the lifetime of the spectrum
	BaseWavelength     float64 // Wavelength of bucket 0 in meters
	MinPowerLog        float64 // Lower clamp of the log10 power
	MaxPowerLog        float64 // Upper clamp of the log10 power
	DirectionSpreadDeg float64 // Max direction offset from the wind, in degrees, either side
}

// NewConfig returns a config with default values.
func NewConfig() *Config {
	return &Config{
		NumOctaves:         DefaultNumOctaves,
		BaseWavelength:     DefaultBaseWavelength,
		MinPowerLog:        DefaultMinPowerLog,
		MaxPowerLog:        DefaultMaxPowerLog,
		DirectionSpreadDeg: DefaultDirectionSpreadDeg,
	}
}

func (c *Config) validate() error {
	if c.NumOctaves < 1 {
		return fmt.Errorf("%w: need at least one octave, got %d", ErrInvalidConfig, c.NumOctaves)
	}
	if !(c.BaseWavelength > 0) || math.IsInf(c.BaseWavelength, 1) {
		return fmt.Errorf("%w: base wavelength must be positive, got %v", ErrInvalidConfig, c.BaseWavelength)
	}
	if !(c.MinPowerLog < c.MaxPowerLog) {
		return fmt.Errorf("%w: power range [%v, %v] is empty", ErrInvalidConfig, c.MinPowerLog, c.MaxPowerLog)
	}
	if c.DirectionSpreadDeg < 0 || c.DirectionSpreadDeg > 180 {
		return fmt.Errorf("%w: direction spread %v outside [0, 180]", ErrInvalidConfig, c.DirectionSpreadDeg)
	}
	return nil
}

// Bucket is one octave of the spectrum.
// The wavelength is derived from the index and never stored.
type Bucket struct {
	Index    int
	PowerLog float64
	Enabled  bool
}

// Spectrum is an ordered set of octave buckets. Bucket i covers wavelengths
// starting at BaseWavelength * 2^i.
type Spectrum struct {
	cfg     Config
	buckets []Bucket
}

// New creates a spectrum with every bucket enabled and at the minimum power.
// A nil config uses NewConfig().
func New(cfg *Config) (*Spectrum, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Spectrum{
		cfg:     *cfg,
		buckets: make([]Bucket, cfg.NumOctaves),
	}
	for i := range s.buckets {
		s.buckets[i] = Bucket{Index: i, PowerLog: cfg.MinPowerLog, Enabled: true}
	}
	return s, nil
}

// Len returns the number of buckets.
func (s *Spectrum) Len() int {
	return len(s.buckets)
}

// Config returns a copy of the configuration the spectrum was built with.
func (s *Spectrum) Config() Config {
	return s.cfg
}

// MinPowerLog returns the lower clamp of the log power.
func (s *Spectrum) MinPowerLog() float64 { return s.cfg.MinPowerLog }

// MaxPowerLog returns the upper clamp of the log power.
func (s *Spectrum) MaxPowerLog() float64 { return s.cfg.MaxPowerLog }

func (s *Spectrum) checkIndex(i int) error {
	if i < 0 || i >= len(s.buckets) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOctaveOutOfRange, i, len(s.buckets))
	}
	return nil
}

// SmallWavelength returns the lower wavelength of bucket i.
func (s *Spectrum) SmallWavelength(i int) (float64, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}
	return s.smallWavelength(i), nil
}

// MustSmallWavelength is like SmallWavelength but panics on a bad index.
func (s *Spectrum) MustSmallWavelength(i int) float64 {
	wl, err := s.SmallWavelength(i)
	if err != nil {
		panic(err)
	}
	return wl
}

func (s *Spectrum) smallWavelength(i int) float64 {
	return math.Ldexp(s.cfg.BaseWavelength, i)
}

// Bucket returns a copy of bucket i.
func (s *Spectrum) Bucket(i int) (Bucket, error) {
	if err := s.checkIndex(i); err != nil {
		return Bucket{}, err
	}
	return s.buckets[i], nil
}

// PowerLog returns the log10 power of bucket i.
func (s *Spectrum) PowerLog(i int) (float64, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}
	return s.buckets[i].PowerLog, nil
}

// SetPowerLog writes the log10 power of bucket i, clamped to the configured range.
func (s *Spectrum) SetPowerLog(i int, v float64) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.buckets[i].PowerLog = s.clampPowerLog(v)
	return nil
}

// Enabled reports whether bucket i contributes power.
func (s *Spectrum) Enabled(i int) (bool, error) {
	if err := s.checkIndex(i); err != nil {
		return false, err
	}
	return s.buckets[i].Enabled, nil
}

// SetEnabled switches bucket i on or off.
func (s *Spectrum) SetEnabled(i int, on bool) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.buckets[i].Enabled = on
	return nil
}

// AllEnabled reports whether every bucket is on.
func (s *Spectrum) AllEnabled() bool {
	for _, b := range s.buckets {
		if !b.Enabled {
			return false
		}
	}
	return true
}

// SetAllEnabled switches every bucket on or off.
func (s *Spectrum) SetAllEnabled(on bool) {
	for i := range s.buckets {
		s.buckets[i].Enabled = on
	}
}

// clampPowerLog maps any float into [MinPowerLog, MaxPowerLog].
// NaN and -Inf go to the minimum, +Inf to the maximum.
func (s *Spectrum) clampPowerLog(v float64) float64 {
	if math.IsNaN(v) || v < s.cfg.MinPowerLog {
		return s.cfg.MinPowerLog
	}
	if v > s.cfg.MaxPowerLog {
		return s.cfg.MaxPowerLog
	}
	return v
}

// State is the persisted part of a spectrum.
type State struct {
	PowerLog []float64
	Enabled  []bool
}

// Snapshot copies the bucket arrays out of the spectrum.
func (s *Spectrum) Snapshot() State {
	st := State{
		PowerLog: make([]float64, len(s.buckets)),
		Enabled:  make([]bool, len(s.buckets)),
	}
	for i, b := range s.buckets {
		st.PowerLog[i] = b.PowerLog
		st.Enabled[i] = b.Enabled
	}
	return st
}

// Restore loads bucket arrays saved by Snapshot. Power values are clamped.
// Nothing is written if the lengths do not match.
func (s *Spectrum) Restore(st State) error {
	if len(st.PowerLog) != len(s.buckets) || len(st.Enabled) != len(s.buckets) {
		return fmt.Errorf("%w: have %d buckets, state has %d powers and %d flags",
			ErrStateMismatch, len(s.buckets), len(st.PowerLog), len(st.Enabled))
	}
	for i := range s.buckets {
		s.buckets[i].PowerLog = s.clampPowerLog(st.PowerLog[i])
		s.buckets[i].Enabled = st.Enabled[i]
	}
	return nil
}
