package config

import (
	"fmt"

	"wavespec/internal/spectrum"
	"wavespec/pkg/waveprofile"
)

// ToProfile captures the current settings and the bucket state of s.
func ToProfile(s *spectrum.Spectrum) *waveprofile.Profile {
	st := s.Snapshot()
	octaves := make([]waveprofile.Octave, len(st.PowerLog))
	for i := range octaves {
		octaves[i] = waveprofile.Octave{PowerLog: st.PowerLog[i], Enabled: st.Enabled[i]}
	}
	return &waveprofile.Profile{
		Preset:           GetPreset().String(),
		WindSpeed:        waveprofile.Float(GetWindSpeed()),
		WindDirectionDeg: waveprofile.Float(GetWindDirection()),
		Fetch:            waveprofile.Float(GetFetch()),
		Choppiness:       waveprofile.Float(GetChoppiness()),
		Seed:             waveprofile.Int(GetSeed()),
		Octaves:          octaves,
	}
}

// ApplyProfile loads p into the settings and, when it carries octaves, into s.
// Settings missing from p are left alone. Values go through the usual clamps.
func ApplyProfile(p *waveprofile.Profile, s *spectrum.Spectrum) error {
	if p.Preset != "" {
		preset, err := spectrum.ParsePreset(p.Preset)
		if err != nil {
			return fmt.Errorf("apply profile: %w", err)
		}
		SetPreset(preset)
	}
	if p.WindSpeed != nil {
		SetWindSpeed(*p.WindSpeed)
	}
	if p.WindDirectionDeg != nil {
		SetWindDirection(*p.WindDirectionDeg)
	}
	if p.Fetch != nil {
		SetFetch(*p.Fetch)
	}
	if p.Choppiness != nil {
		SetChoppiness(*p.Choppiness)
	}
	if p.Seed != nil {
		SetSeed(*p.Seed)
	}

	if len(p.Octaves) == 0 {
		return nil
	}
	st := spectrum.State{
		PowerLog: make([]float64, len(p.Octaves)),
		Enabled:  make([]bool, len(p.Octaves)),
	}
	for i, o := range p.Octaves {
		st.PowerLog[i] = o.PowerLog
		st.Enabled[i] = o.Enabled
	}
	if err := s.Restore(st); err != nil {
		return fmt.Errorf("apply profile: %w", err)
	}
	return nil
}
