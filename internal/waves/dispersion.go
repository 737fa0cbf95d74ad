package waves

import (
	"math"

	"wavespec/internal/spectrum"
)

// MinWavelength keeps the period away from zero for vanishing wavelengths.
const MinWavelength = 1e-4

// DeepWaterPhaseSpeed is sqrt(g/k) for a wave of the given length.
func DeepWaterPhaseSpeed(wavelength float64) float64 {
	k := 2 * math.Pi / math.Max(wavelength, MinWavelength)
	return math.Sqrt(spectrum.Gravity / k)
}

// Period returns the deep-water period of a wave in seconds.
func Period(wavelength float64) float64 {
	wl := math.Max(wavelength, MinWavelength)
	return wl / DeepWaterPhaseSpeed(wl)
}

// Amplitude converts the spectral power of a wave into its height amplitude.
func Amplitude(power, wavelength float64) float64 {
	if !(power > 0) {
		return 0
	}
	return math.Sqrt(power / Period(wavelength))
}
