package menu

import (
	"fmt"
	"log"

	"wavespec/internal/config"
	"wavespec/internal/editor"
	"wavespec/internal/graphics/renderables/ui"
	"wavespec/internal/spectrum"
	"wavespec/internal/ui/widget"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Layout
const (
	octaveTop    = 70
	octaveRow    = 38
	octaveLeft   = 24
	octaveSlider = 230
	sideLeft     = 560
	sideSlider   = 220
)

// SpectrumMenu edits the spectrum buckets, the wind and the fetch.
type SpectrumMenu struct {
	model *editor.Model

	allOn   *widget.Toggle
	toggles []*widget.Toggle
	sliders []*widget.Slider
	wind    *widget.Slider
	fetch   *widget.Slider
	presets []*widget.Button
	save    *widget.Button
	load    *widget.Button

	// Everything that takes clicks, in hit-test order
	clickable []widget.Component

	action Action
}

func NewSpectrumMenu(m *editor.Model) *SpectrumMenu {
	sm := &SpectrumMenu{model: m}

	sm.allOn = widget.NewToggle("All", octaveLeft, octaveTop-34, 16, 16, m.Spectrum.AllEnabled(), func(isOn bool) {
		m.Spectrum.SetAllEnabled(isOn)
		sm.action = ActionChanged
	})

	for i := 0; i < m.Spectrum.Len(); i++ {
		y := float32(octaveTop + i*octaveRow)
		on, _ := m.Spectrum.Enabled(i)
		toggle := widget.NewToggle("", octaveLeft, y+2, 16, 16, on, func(isOn bool) {
			if err := m.Spectrum.SetEnabled(i, isOn); err != nil {
				log.Printf("octave toggle: %v", err)
			}
			sm.action = ActionChanged
		})
		slider := widget.NewSlider(octaveLeft+30, y+2, octaveSlider, 16, m.OctaveFraction(i), 0, fmt.Sprintf("octave%d", i), func(val float32) {
			if err := m.SetOctaveFraction(i, val); err != nil {
				log.Printf("octave slider: %v", err)
			}
			sm.action = ActionChanged
		})
		slider.Label = m.OctaveLabel(i)
		slider.Format = func(float32) string {
			v, _ := m.Spectrum.PowerLog(i)
			return fmt.Sprintf("%.2f", v)
		}
		sm.toggles = append(sm.toggles, toggle)
		sm.sliders = append(sm.sliders, slider)
	}

	sm.wind = widget.NewSlider(sideLeft, 90, sideSlider, 18, m.WindFraction(), 61, "wind", func(val float32) {
		m.SetWindFraction(val)
	})
	sm.wind.Label = "Wind Speed"
	sm.wind.Format = func(float32) string { return fmt.Sprintf("%.0f km/h", config.GetWindSpeedKmh()) }

	sm.fetch = widget.NewSlider(sideLeft, 150, sideSlider, 18, m.FetchFraction(), 0, "fetch", func(val float32) {
		m.SetFetchFraction(val)
	})
	sm.fetch.Label = "Fetch"
	sm.fetch.Format = func(float32) string { return fmt.Sprintf("%.0f m", config.GetFetch()) }

	names := map[spectrum.Preset]string{
		spectrum.PresetPhillips:         "Phillips",
		spectrum.PresetPiersonMoskowitz: "Pierson-Moskowitz",
		spectrum.PresetJONSWAP:          "JONSWAP",
	}
	for i, p := range []spectrum.Preset{spectrum.PresetPhillips, spectrum.PresetPiersonMoskowitz, spectrum.PresetJONSWAP} {
		btn := widget.NewButton(names[p], sideLeft, float32(200+i*46), sideSlider, 36, func() {
			if err := m.ApplyPreset(p); err != nil {
				log.Printf("apply %v: %v", p, err)
				return
			}
			sm.action = ActionChanged
		})
		btn.Tooltip = p.Description()
		sm.presets = append(sm.presets, btn)
	}

	sm.save = widget.NewButton("Save", sideLeft, 350, sideSlider/2-4, 32, func() { sm.action = ActionSave })
	sm.save.Tooltip = "Save the current spectrum as a profile"
	sm.load = widget.NewButton("Profiles", sideLeft+sideSlider/2+4, 350, sideSlider/2-4, 32, func() { sm.action = ActionOpenProfiles })
	sm.load.Tooltip = "Load a saved profile"

	sm.clickable = append(sm.clickable, sm.allOn)
	for _, t := range sm.toggles {
		sm.clickable = append(sm.clickable, t)
	}
	for _, b := range sm.presets {
		sm.clickable = append(sm.clickable, b)
	}
	sm.clickable = append(sm.clickable, sm.save, sm.load)
	return sm
}

// Sync pulls the widget state back from the model, e.g. after a preset,
// a key binding or a profile load changed it.
func (sm *SpectrumMenu) Sync() {
	m := sm.model
	sm.allOn.IsOn = m.Spectrum.AllEnabled()
	for i := range sm.toggles {
		sm.toggles[i].IsOn, _ = m.Spectrum.Enabled(i)
		sm.sliders[i].Value = m.OctaveFraction(i)
	}
	sm.wind.Value = m.WindFraction()
	sm.fetch.Value = m.FetchFraction()
}

// Update handles clicks and returns what the caller should do next.
func (sm *SpectrumMenu) Update(window *glfw.Window, justPressedLeft bool) Action {
	sm.action = ActionNone

	for _, c := range sm.clickable {
		if c.HandleInput(window, justPressedLeft) {
			break
		}
	}

	if sm.action == ActionChanged {
		sm.Sync()
	}
	return sm.action
}

// Render draws the menu. Slider drags are applied here and reported by the
// next Update through the model.
func (sm *SpectrumMenu) Render(u *ui.UI, window *glfw.Window) {
	m := sm.model
	white := mgl32.Vec3{1, 1, 1}

	u.DrawText("Wave Spectrum", octaveLeft, 24, 0.6, white)
	sm.allOn.Render(u, window)

	comps := m.Components()
	for i := range sm.toggles {
		sm.toggles[i].Render(u, window)
		sm.sliders[i].Render(u, window)

		if comps == nil || i >= comps.Len() {
			continue
		}
		// Amplitude bar in the colour of the band the component landed in.
		c := editor.BandColor(comps.LODs[i], m.Binner().Count)
		y := float32(octaveTop + i*octaveRow)
		w := min(float32(comps.Amplitudes[i])*400, 160)
		u.DrawFilledRect(octaveLeft+30+octaveSlider+60, y+4, max(w, 1), 12, mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}, 0.9)
		if !config.GetShowLabels() {
			continue
		}
		u.DrawText(m.Binner().Label(comps.LODs[i]), octaveLeft+30+octaveSlider+60+max(w, 1)+6, y+16, 0.32, mgl32.Vec3{0.75, 0.75, 0.75})
	}

	sm.wind.Render(u, window)
	sm.fetch.Render(u, window)
	for _, b := range sm.presets {
		b.Render(u, window)
	}
	sm.save.Render(u, window)
	sm.load.Render(u, window)

	u.DrawLines(m.BandSummary(), sideLeft, 420, 18, 0.38, mgl32.Vec3{0.85, 0.85, 0.85})

	vp := u.Viewport()
	u.DrawText(m.StatusLine(), octaveLeft, vp.Height-14, 0.36, mgl32.Vec3{0.7, 0.8, 0.9})

	for _, b := range sm.presets {
		b.RenderTooltip(u, window)
	}
	sm.save.RenderTooltip(u, window)
	sm.load.RenderTooltip(u, window)
}
