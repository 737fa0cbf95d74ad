package app

import (
	"fmt"
	"log"
	"time"

	"wavespec/internal/config"
	"wavespec/internal/editor"
	"wavespec/internal/frame"
	"wavespec/internal/graphics"
	"wavespec/internal/graphics/renderables/bands"
	"wavespec/internal/graphics/renderables/compass"
	"wavespec/internal/graphics/renderables/overlay"
	"wavespec/internal/graphics/renderables/ui"
	renderer "wavespec/internal/graphics/renderer"
	"wavespec/internal/input"
	"wavespec/internal/profiling"
	"wavespec/internal/spectrum"
	"wavespec/internal/ui/menu"
	"wavespec/pkg/waveprofile"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// SlowFrame is the frame time above which the top profiled passes are logged.
const SlowFrame = 16 * time.Millisecond

// Options configures the editor window.
type Options struct {
	FontPath    string // Empty uses the built-in Go font
	ProfileName string // Name used by the save action
	Profiles    *waveprofile.Loader
}

// App is the spectrum editor window: it regenerates the wave components every
// frame and draws the editor over them.
type App struct {
	window   *glfw.Window
	input    *input.InputManager
	opts     Options
	model    *editor.Model
	ui       *ui.UI
	renderer *renderer.Renderer
	font     *graphics.FontRenderer
	overlay  *overlay.Overlay

	spectrumMenu *menu.SpectrumMenu
	profileMenu  *menu.ProfileMenu

	fpsLimiter *frame.FPSLimiter
	fps        *frame.Counter
	lastTime   time.Time
	lastEdit   time.Time
}

// New builds the editor around s. The window's context must be current.
func New(window *glfw.Window, s *spectrum.Spectrum, opts Options) (*App, error) {
	u := ui.NewUI()
	ov := overlay.NewOverlay(u)
	width, height := window.GetSize()
	r, err := renderer.NewRenderer(graphics.NewViewport(width, height),
		u, bands.NewBands(u), compass.NewCompass(), ov)
	if err != nil {
		return nil, err
	}

	atlas, err := graphics.BuildFontAtlas(opts.FontPath, 48)
	if err != nil {
		r.Dispose()
		return nil, fmt.Errorf("font atlas: %w", err)
	}
	fr, err := graphics.NewFontRenderer(atlas)
	if err != nil {
		r.Dispose()
		return nil, err
	}
	u.SetFontRenderer(fr)

	model := editor.NewModel(s)
	now := time.Now()
	a := &App{
		window:       window,
		input:        input.NewInputManager(),
		opts:         opts,
		model:        model,
		ui:           u,
		renderer:     r,
		font:         fr,
		overlay:      ov,
		spectrumMenu: menu.NewSpectrumMenu(model),
		fpsLimiter:   frame.NewFPSLimiter(),
		fps:          frame.NewCounter(now),
		lastTime:     now,
		lastEdit:     now,
	}
	a.setupCallbacks()
	return a, nil
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) Dispose() {
	a.font.Dispose()
	a.renderer.Dispose()
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	glfw.PollEvents()
	a.handleKeys()
	a.updateMenus()

	a.model.Refresh()
	a.render(dt)
	a.window.SwapBuffers()

	d := time.Since(start)
	if d > SlowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}
	if fps, ok := a.fps.Tick(time.Now()); ok && a.overlay.Visible() {
		fmt.Printf("FPS: %.0f  %s\n", fps, profiling.TopN(3))
	}
	a.overlay.SetFrame(d, a.fps.FPS())

	a.input.PostUpdate()
	a.fpsLimiter.Wait(time.Since(a.lastEdit) > 2*time.Second && !a.ui.Dragging())
}

func (a *App) handleKeys() {
	im := a.input
	changed := true
	switch {
	case im.JustPressed(input.ActionPresetPhillips):
		a.applyPreset(spectrum.PresetPhillips)
	case im.JustPressed(input.ActionPresetPiersonMoskowitz):
		a.applyPreset(spectrum.PresetPiersonMoskowitz)
	case im.JustPressed(input.ActionPresetJONSWAP):
		a.applyPreset(spectrum.PresetJONSWAP)
	case im.JustPressed(input.ActionToggleAll):
		a.model.ToggleAll()
	case im.JustPressed(input.ActionWindUp):
		a.model.NudgeWind(a.step(1))
	case im.JustPressed(input.ActionWindDown):
		a.model.NudgeWind(-a.step(1))
	case im.JustPressed(input.ActionFetchUp):
		a.model.ScaleFetch(2)
	case im.JustPressed(input.ActionFetchDown):
		a.model.ScaleFetch(0.5)
	case im.JustPressed(input.ActionTurnLeft):
		a.model.NudgeDirection(-a.step(5))
	case im.JustPressed(input.ActionTurnRight):
		a.model.NudgeDirection(a.step(5))
	case im.JustPressed(input.ActionReseed):
		config.SetSeed(config.GetSeed() + 1)
	default:
		changed = false
	}
	if changed {
		a.spectrumMenu.Sync()
		a.lastEdit = time.Now()
	}

	if im.JustPressed(input.ActionSave) && im.IsActive(input.ActionModControl) {
		a.save()
	}
	if im.JustPressed(input.ActionProfiles) {
		a.openProfiles()
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		a.overlay.Toggle()
	}
	if im.JustPressed(input.ActionToggleLabels) {
		config.SetShowLabels(!config.GetShowLabels())
	}
	if im.JustPressed(input.ActionQuit) {
		if a.profileMenu != nil {
			a.profileMenu = nil
		} else {
			a.window.SetShouldClose(true)
		}
	}
}

// step scales a nudge by 10 while shift is held.
func (a *App) step(base float64) float64 {
	if a.input.IsActive(input.ActionModShift) {
		return base * 10
	}
	return base
}

func (a *App) applyPreset(p spectrum.Preset) {
	if err := a.model.ApplyPreset(p); err != nil {
		log.Printf("apply %v: %v", p, err)
	}
}

func (a *App) updateMenus() {
	click := a.input.JustPressed(input.ActionMouseLeft)
	if click || a.ui.Dragging() {
		a.lastEdit = time.Now()
	}

	if a.profileMenu != nil {
		switch a.profileMenu.Update(a.window, click) {
		case menu.ActionLoadProfile:
			a.load(a.profileMenu.Selected())
			a.profileMenu = nil
		case menu.ActionClose:
			a.profileMenu = nil
		}
		return
	}

	switch a.spectrumMenu.Update(a.window, click) {
	case menu.ActionSave:
		a.save()
	case menu.ActionOpenProfiles:
		a.openProfiles()
	}
}

func (a *App) save() {
	if a.opts.Profiles == nil {
		log.Printf("no profile directory configured, not saving")
		return
	}
	if err := a.model.Save(a.opts.Profiles, a.opts.ProfileName); err != nil {
		log.Printf("%v", err)
		return
	}
	log.Printf("saved profile %q to %s", a.opts.ProfileName, a.opts.Profiles.Path(a.opts.ProfileName))
}

func (a *App) load(name string) {
	if err := a.model.Load(a.opts.Profiles, name); err != nil {
		log.Printf("load profile %q: %v", name, err)
		return
	}
	a.spectrumMenu.Sync()
}

func (a *App) openProfiles() {
	if a.opts.Profiles == nil {
		return
	}
	names, err := a.opts.Profiles.List()
	if err != nil {
		log.Printf("list profiles: %v", err)
		return
	}
	a.profileMenu = menu.NewProfileMenu(names)
}

func (a *App) render(dt float64) {
	start := time.Now()
	a.renderer.Render(a.model.Spectrum, a.model.Components(), a.model.Binner(), dt)
	a.overlay.SetRenderDuration(time.Since(start))

	defer profiling.Track("menu.Render")()
	a.spectrumMenu.Render(a.ui, a.window)
	if a.profileMenu != nil {
		a.profileMenu.Render(a.ui, a.window)
	}
}
