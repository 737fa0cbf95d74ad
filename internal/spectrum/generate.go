package spectrum

import (
	"math"
	"math/rand"
)

// Power returns the linear power of the bucket nearest to wavelength.
// Buckets are compared in log2 space and there is no interpolation between
// neighbours. Nearest means the closest wavelength ratio, not the closest
// difference: 2.9*base picks bucket 2 (4*base) over bucket 1 (2*base).
// Disabled buckets return 0.
func (s *Spectrum) Power(wavelength float64) float64 {
	b := s.buckets[s.nearestIndex(wavelength)]
	if !b.Enabled {
		return 0
	}
	return math.Pow(10, b.PowerLog)
}

func (s *Spectrum) nearestIndex(wavelength float64) int {
	if !(wavelength > 0) {
		return 0
	}
	octave := math.Round(math.Log2(wavelength / s.cfg.BaseWavelength))
	if octave < 0 || math.IsNaN(octave) {
		return 0
	}
	if last := float64(len(s.buckets) - 1); octave > last {
		return len(s.buckets) - 1
	}
	return int(octave)
}

// GenerateComponents draws one wave component per bucket, in bucket order.
//
// Every bucket consumes exactly two values from rng (direction, then phase)
// whether it is enabled or not, so toggling a bucket never shifts the random
// sequence of the others. The caller owns rng; seed it to get repeatable
// output.
func (s *Spectrum) GenerateComponents(rng *rand.Rand) (wavelengths, anglesDeg, phases []float64) {
	n := len(s.buckets)
	wavelengths = make([]float64, n)
	anglesDeg = make([]float64, n)
	phases = make([]float64, n)

	spread := s.cfg.DirectionSpreadDeg
	for i := range s.buckets {
		wavelengths[i] = s.smallWavelength(i)
		anglesDeg[i] = spread * (2*rng.Float64() - 1)
		phases[i] = 2 * math.Pi * rng.Float64()
	}
	return wavelengths, anglesDeg, phases
}

// GenerateComponentsSeeded is GenerateComponents with a private generator
// seeded from seed.
func (s *Spectrum) GenerateComponentsSeeded(seed int64) (wavelengths, anglesDeg, phases []float64) {
	return s.GenerateComponents(rand.New(rand.NewSource(seed)))
}
