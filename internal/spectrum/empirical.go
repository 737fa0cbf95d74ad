package spectrum

import (
	"fmt"
	"math"
	"strings"
)

// Gravity is the gravitational acceleration used by the deep-water dispersion relation, in m/s^2.
const Gravity = 9.81

// MinFetch is the smallest fetch in meters the JONSWAP fit will use.
const MinFetch = 1.0

// Empirical spectrum constants.
// See: Frechot, "Realistic simulation of ocean surface using wave spectra".
const (
	phillipsAlpha      = 8.1e-3
	phillipsPeakFactor = 0.855
	pmBeta             = 0.74
	pmWindHeightFactor = 1.026 // U19.5 / U10
	jonswapGamma       = 3.3
	jonswapSigmaLow    = 0.07
	jonswapSigmaHigh   = 0.09
)

// Preset names one of the empirical spectrum fits.
type Preset int

const (
	PresetPhillips Preset = iota
	PresetPiersonMoskowitz
	PresetJONSWAP
)

var presetNames = [...]string{
	PresetPhillips:         "phillips",
	PresetPiersonMoskowitz: "pierson-moskowitz",
	PresetJONSWAP:          "jonswap",
}

func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// Description is the one-line summary shown next to the preset in editors.
func (p Preset) Description() string {
	switch p {
	case PresetPhillips:
		return "Base of modern parametric wave spectra"
	case PresetPiersonMoskowitz:
		return "Fully developed sea with infinite fetch"
	case PresetJONSWAP:
		return "Fetch limited sea where waves continue to grow"
	}
	return ""
}

// ParsePreset resolves a preset from its name. "pm" is accepted for Pierson-Moskowitz.
func ParsePreset(name string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "phillips":
		return PresetPhillips, nil
	case "pierson-moskowitz", "piersonmoskowitz", "pm":
		return PresetPiersonMoskowitz, nil
	case "jonswap":
		return PresetJONSWAP, nil
	}
	return 0, fmt.Errorf("unknown spectrum preset %q", name)
}

// Apply runs the fit named by p. Fetch is only used by JONSWAP.
func (s *Spectrum) Apply(p Preset, windSpeed, fetch float64) error {
	switch p {
	case PresetPhillips:
		s.ApplyPhillips(windSpeed)
	case PresetPiersonMoskowitz:
		s.ApplyPiersonMoskowitz(windSpeed)
	case PresetJONSWAP:
		s.ApplyJONSWAP(windSpeed, fetch)
	default:
		return fmt.Errorf("unknown spectrum preset %d", int(p))
	}
	return nil
}

// ApplyPhillips overwrites every bucket power with the Phillips spectrum for windSpeed (m/s).
func (s *Spectrum) ApplyPhillips(windSpeed float64) {
	if !(windSpeed > 0) {
		s.applyDensity(zeroDensity)
		return
	}
	omegaPeak := phillipsPeakFactor * Gravity / windSpeed
	s.applyDensity(func(omega float64) float64 {
		if omega < omegaPeak {
			return 0
		}
		return phillipsAlpha * Gravity * Gravity / math.Pow(omega, 5)
	})
}

// ApplyPiersonMoskowitz overwrites every bucket power with the Pierson-Moskowitz
// spectrum for a fully developed sea at windSpeed (m/s).
func (s *Spectrum) ApplyPiersonMoskowitz(windSpeed float64) {
	if !(windSpeed > 0) {
		s.applyDensity(zeroDensity)
		return
	}
	omega0 := Gravity / (pmWindHeightFactor * windSpeed)
	s.applyDensity(func(omega float64) float64 {
		return phillipsAlpha * Gravity * Gravity / math.Pow(omega, 5) * math.Exp(-pmBeta*math.Pow(omega0/omega, 4))
	})
}

// ApplyJONSWAP overwrites every bucket power with the JONSWAP spectrum for
// windSpeed (m/s) blowing over fetch (m). Fetch is floored at MinFetch.
func (s *Spectrum) ApplyJONSWAP(windSpeed, fetch float64) {
	if !(windSpeed > 0) {
		s.applyDensity(zeroDensity)
		return
	}
	if !(fetch >= MinFetch) {
		fetch = MinFetch
	}
	alpha := 0.076 * math.Pow(windSpeed*windSpeed/(fetch*Gravity), 0.22)
	omegaPeak := 22 * math.Cbrt(Gravity*Gravity/(windSpeed*fetch))
	s.applyDensity(func(omega float64) float64 {
		sigma := jonswapSigmaHigh
		if omega <= omegaPeak {
			sigma = jonswapSigmaLow
		}
		d := omega - omegaPeak
		r := math.Exp(-d * d / (2 * sigma * sigma * omegaPeak * omegaPeak))
		return alpha * Gravity * Gravity / math.Pow(omega, 5) *
			math.Exp(-1.25*math.Pow(omegaPeak/omega, 4)) *
			math.Pow(jonswapGamma, r)
	})
}

func zeroDensity(float64) float64 { return 0 }

// applyDensity integrates density over each octave and stores the clamped log power.
// The octave [wl, 2wl] is sampled once at 1.5*wl and scaled by its angular frequency width.
func (s *Spectrum) applyDensity(density func(omega float64) float64) {
	powers := make([]float64, len(s.buckets))
	for i := range s.buckets {
		wl := s.smallWavelength(i)
		omegaHigh := AngularFrequency(wl)
		omegaLow := AngularFrequency(2 * wl)
		p := density(AngularFrequency(1.5*wl)) * (omegaHigh - omegaLow)
		powers[i] = s.powerToLog(p)
	}
	for i := range s.buckets {
		s.buckets[i].PowerLog = powers[i]
	}
}

func (s *Spectrum) powerToLog(p float64) float64 {
	if math.IsNaN(p) || p <= 0 {
		return s.cfg.MinPowerLog
	}
	return s.clampPowerLog(math.Log10(p))
}

// AngularFrequency returns the deep-water angular frequency sqrt(g*k) of a
// wave with the given wavelength.
func AngularFrequency(wavelength float64) float64 {
	return math.Sqrt(Gravity * 2 * math.Pi / wavelength)
}
