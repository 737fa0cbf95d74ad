package config

import (
	"math"
	"sync"

	"wavespec/internal/spectrum"
)

// Editor limits
const (
	MaxWindSpeedKmh = 60.0
	MaxFetch        = 1e6
	MaxChoppiness   = 2.0
)

// MaxWindSpeed is MaxWindSpeedKmh in m/s.
const MaxWindSpeed = MaxWindSpeedKmh / 3.6

// WaveSettings holds the wind and generation parameters of the ocean
type WaveSettings struct {
	mu               sync.RWMutex
	windSpeed        float64 // m/s
	windDirectionDeg float64
	fetch            float64 // m
	choppiness       float64
	seed             int64
	preset           spectrum.Preset
}

var globalWaveSettings = &WaveSettings{
	windSpeed:  10,
	fetch:      1e5,
	choppiness: 1.6,
	preset:     spectrum.PresetPiersonMoskowitz,
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GetWindSpeed returns the wind speed in m/s
func GetWindSpeed() float64 {
	globalWaveSettings.mu.RLock()
	defer globalWaveSettings.mu.RUnlock()
	return globalWaveSettings.windSpeed
}

// SetWindSpeed sets the wind speed in m/s, clamped to 0..MaxWindSpeed
func SetWindSpeed(v float64) {
	globalWaveSettings.mu.Lock()
	defer globalWaveSettings.mu.Unlock()
	globalWaveSettings.windSpeed = clamp(v, 0, MaxWindSpeed)
}

// GetWindSpeedKmh returns the wind speed as shown in editors
func GetWindSpeedKmh() float64 {
	return GetWindSpeed() * 3.6
}

func SetWindSpeedKmh(v float64) {
	SetWindSpeed(v / 3.6)
}

// GetWindDirection returns the wind heading in degrees
func GetWindDirection() float64 {
	globalWaveSettings.mu.RLock()
	defer globalWaveSettings.mu.RUnlock()
	return globalWaveSettings.windDirectionDeg
}

// SetWindDirection sets the wind heading, clamped to -180..180 degrees
func SetWindDirection(deg float64) {
	globalWaveSettings.mu.Lock()
	defer globalWaveSettings.mu.Unlock()
	globalWaveSettings.windDirectionDeg = clamp(deg, -180, 180)
}

// GetFetch returns the fetch in meters
func GetFetch() float64 {
	globalWaveSettings.mu.RLock()
	defer globalWaveSettings.mu.RUnlock()
	return globalWaveSettings.fetch
}

// SetFetch sets the fetch, clamped to 0..MaxFetch meters
func SetFetch(m float64) {
	globalWaveSettings.mu.Lock()
	defer globalWaveSettings.mu.Unlock()
	globalWaveSettings.fetch = clamp(m, 0, MaxFetch)
}

// GetChoppiness returns the horizontal displacement factor handed to renderers
func GetChoppiness() float64 {
	globalWaveSettings.mu.RLock()
	defer globalWaveSettings.mu.RUnlock()
	return globalWaveSettings.choppiness
}

func SetChoppiness(c float64) {
	globalWaveSettings.mu.Lock()
	defer globalWaveSettings.mu.Unlock()
	globalWaveSettings.choppiness = clamp(c, 0, MaxChoppiness)
}

// GetSeed returns the seed of every generation pass
func GetSeed() int64 {
	globalWaveSettings.mu.RLock()
	defer globalWaveSettings.mu.RUnlock()
	return globalWaveSettings.seed
}

func SetSeed(seed int64) {
	globalWaveSettings.mu.Lock()
	defer globalWaveSettings.mu.Unlock()
	globalWaveSettings.seed = seed
}

// GetPreset returns the last applied spectrum fit
func GetPreset() spectrum.Preset {
	globalWaveSettings.mu.RLock()
	defer globalWaveSettings.mu.RUnlock()
	return globalWaveSettings.preset
}

func SetPreset(p spectrum.Preset) {
	globalWaveSettings.mu.Lock()
	defer globalWaveSettings.mu.Unlock()
	globalWaveSettings.preset = p
}

// ApplyPreset runs the current preset fit over s with the current wind and fetch.
func ApplyPreset(s *spectrum.Spectrum) error {
	return s.Apply(GetPreset(), GetWindSpeed(), GetFetch())
}
