package editor

import (
	"fmt"
	"log"
	"math"

	"wavespec/internal/config"
	"wavespec/internal/lod"
	"wavespec/internal/spectrum"
	"wavespec/internal/waves"
	"wavespec/pkg/waveprofile"
)

// Model is the editing state shared by the window and terminal editors.
// Every front end mutates the spectrum and settings through it and reads the
// latest generation pass back.
type Model struct {
	Spectrum  *spectrum.Spectrum
	Chain     *lod.Chain
	Generator *waves.Generator

	components *waves.Components
	binner     lod.Binner
}

// NewModel wires a generator and an LOD chain around s using the current config.
func NewModel(s *spectrum.Spectrum) *Model {
	m := &Model{
		Spectrum:  s,
		Chain:     lod.NewChain(config.GetLodCount()),
		Generator: waves.NewGenerator(s),
	}
	m.Generator.OnResize = func(n int) {
		log.Printf("wave component count changed to %d", n)
	}
	m.Refresh()
	return m
}

// Refresh pulls the settings into the generator and runs one pass.
func (m *Model) Refresh() (*waves.Components, bool) {
	m.Chain.Count = config.GetLodCount()
	m.Generator.Spectrum = m.Spectrum
	m.Generator.Seed = config.GetSeed()
	m.Generator.WindDirectionDeg = config.GetWindDirection()
	m.Generator.Choppiness = config.GetChoppiness()

	comps, resized := m.Generator.Update(m.Chain)
	m.components = comps
	m.binner = lod.NewBinner(m.Chain)
	return comps, resized
}

// Components returns the last pass.
func (m *Model) Components() *waves.Components { return m.components }

// Binner returns the binner of the last pass.
func (m *Model) Binner() lod.Binner { return m.binner }

// OctaveFraction maps the power of bucket i onto 0..1 for sliders.
func (m *Model) OctaveFraction(i int) float32 {
	v, err := m.Spectrum.PowerLog(i)
	if err != nil {
		return 0
	}
	lo, hi := m.Spectrum.MinPowerLog(), m.Spectrum.MaxPowerLog()
	return float32((v - lo) / (hi - lo))
}

// SetOctaveFraction writes bucket i from a 0..1 slider position.
func (m *Model) SetOctaveFraction(i int, f float32) error {
	lo, hi := m.Spectrum.MinPowerLog(), m.Spectrum.MaxPowerLog()
	return m.Spectrum.SetPowerLog(i, lo+float64(Clamp01(f))*(hi-lo))
}

// ToggleOctave flips bucket i and returns its new state.
func (m *Model) ToggleOctave(i int) (bool, error) {
	on, err := m.Spectrum.Enabled(i)
	if err != nil {
		return false, err
	}
	return !on, m.Spectrum.SetEnabled(i, !on)
}

// ToggleAll turns every bucket on, or off when they already all are.
func (m *Model) ToggleAll() bool {
	on := !m.Spectrum.AllEnabled()
	m.Spectrum.SetAllEnabled(on)
	return on
}

// OctaveLabel is the caption of bucket i.
func (m *Model) OctaveLabel(i int) string {
	wl, err := m.Spectrum.SmallWavelength(i)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("Wavelength %.3f", wl)
}

// WindFraction is the wind speed as a 0..1 slider position over 0..60 km/h.
func (m *Model) WindFraction() float32 {
	return float32(config.GetWindSpeedKmh() / config.MaxWindSpeedKmh)
}

func (m *Model) SetWindFraction(f float32) {
	config.SetWindSpeedKmh(float64(Clamp01(f)) * config.MaxWindSpeedKmh)
}

// NudgeWind changes the wind speed by deltaKmh.
func (m *Model) NudgeWind(deltaKmh float64) {
	config.SetWindSpeedKmh(config.GetWindSpeedKmh() + deltaKmh)
}

// FetchFraction is the fetch as a 0..1 slider position over 0..MaxFetch.
func (m *Model) FetchFraction() float32 {
	return float32(config.GetFetch() / config.MaxFetch)
}

func (m *Model) SetFetchFraction(f float32) {
	config.SetFetch(float64(Clamp01(f)) * config.MaxFetch)
}

// ScaleFetch multiplies the fetch by factor, starting from 1 m when it is zero.
func (m *Model) ScaleFetch(factor float64) {
	f := config.GetFetch()
	if f < spectrum.MinFetch {
		f = spectrum.MinFetch
	}
	config.SetFetch(f * factor)
}

// NudgeDirection turns the wind by deltaDeg.
func (m *Model) NudgeDirection(deltaDeg float64) {
	config.SetWindDirection(config.GetWindDirection() + deltaDeg)
}

// ApplyPreset stores p as the active fit and runs it with the current wind and fetch.
func (m *Model) ApplyPreset(p spectrum.Preset) error {
	config.SetPreset(p)
	return config.ApplyPreset(m.Spectrum)
}

// BandSummary lists how many components landed in each band, finest first.
func (m *Model) BandSummary() []string {
	if m.components == nil {
		return nil
	}
	counts := m.components.ByLOD()
	lines := make([]string, 0, m.binner.Count+2)
	for t := lod.Inactive; int(t) <= m.binner.Count; t++ {
		if n := counts[t]; n > 0 {
			lines = append(lines, fmt.Sprintf("%s: %d", m.binner.Label(t), n))
		}
	}
	return lines
}

// StatusLine is the one line summary of the settings.
func (m *Model) StatusLine() string {
	return fmt.Sprintf("%s  wind %.1f km/h @ %.0f deg  fetch %.0f m  chop %.1f  active %d/%d",
		config.GetPreset(), config.GetWindSpeedKmh(), config.GetWindDirection(), config.GetFetch(),
		config.GetChoppiness(), m.components.Active(), m.components.Len())
}

// Save writes the settings and bucket state as the named profile.
func (m *Model) Save(l *waveprofile.Loader, name string) error {
	if err := l.Save(name, config.ToProfile(m.Spectrum)); err != nil {
		return fmt.Errorf("save profile %q: %w", name, err)
	}
	return nil
}

// Load applies the named profile to the settings and the spectrum.
func (m *Model) Load(l *waveprofile.Loader, name string) error {
	p, err := l.Load(name)
	if err != nil {
		return err
	}
	return config.ApplyProfile(p, m.Spectrum)
}

// Clamp01 limits f to 0..1. NaN becomes 0.
func Clamp01(f float32) float32 {
	if !(f > 0) {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Snap rounds a 0..1 value to the nearest of steps evenly spaced positions.
// Fewer than two steps leaves the value continuous.
func Snap(f float32, steps int) float32 {
	f = Clamp01(f)
	if steps < 2 {
		return f
	}
	denom := float32(steps - 1)
	return float32(math.Round(float64(f*denom))) / denom
}
