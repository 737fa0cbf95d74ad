// Package tui is the terminal front end of the spectrum editor.
package tui

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"wavespec/internal/config"
	"wavespec/internal/editor"
	"wavespec/internal/lod"
	"wavespec/internal/profiling"
	"wavespec/internal/spectrum"
	"wavespec/pkg/waveprofile"
)

// FrameInterval is how often pending edits are regenerated and drawn.
const FrameInterval = 33 * time.Millisecond

// PowerStep is the fraction of the power range one left/right press moves.
const PowerStep = 1.0 / 36

const help = "j/k octave  h/l power  space toggle  a all  1-3 preset  w/W wind  f/F fetch  [/] dir  r seed  s save  q quit"

var (
	styleDefault = tcell.StyleDefault
	styleHeader  = tcell.StyleDefault.Reverse(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCursor  = tcell.StyleDefault.Bold(true)
)

// View draws the editor model on a tcell screen and maps keys onto it.
type View struct {
	screen  tcell.Screen
	model   *editor.Model
	loader  *waveprofile.Loader
	name    string
	cursor  int
	message string
	dirty   bool
}

// NewView binds model to an initialised screen. Saves go to loader under name.
func NewView(screen tcell.Screen, model *editor.Model, loader *waveprofile.Loader, name string) *View {
	return &View{screen: screen, model: model, loader: loader, name: name, dirty: true}
}

// Cursor is the selected octave.
func (v *View) Cursor() int { return v.cursor }

// Message is the last status message shown above the help line.
func (v *View) Message() string { return v.message }

// Run polls events until the user quits or the screen closes.
func (v *View) Run() {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pump(v.screen, events, done)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev.Key(), ev.Rune()) {
					return
				}
			case *tcell.EventResize:
				v.screen.Sync()
				v.dirty = true
			}
		case <-ticker.C:
			if v.dirty {
				profiling.ResetFrame()
				v.Draw()
			}
		}
	}
}

// pump forwards screen events until the screen stops polling or done closes.
func pump(s tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleKey applies one key press. It reports true when the editor should quit.
func (v *View) HandleKey(key tcell.Key, r rune) bool {
	n := v.model.Spectrum.Len()
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		r = 'k'
	case tcell.KeyDown:
		r = 'j'
	case tcell.KeyLeft:
		r = 'h'
	case tcell.KeyRight:
		r = 'l'
	case tcell.KeyRune:
	default:
		return false
	}

	switch r {
	case 'q':
		return true
	case 'j':
		v.cursor = min(v.cursor+1, n-1)
	case 'k':
		v.cursor = max(v.cursor-1, 0)
	case 'h', 'l':
		step := float32(PowerStep)
		if r == 'h' {
			step = -step
		}
		v.check(v.model.SetOctaveFraction(v.cursor, v.model.OctaveFraction(v.cursor)+step))
	case ' ':
		_, err := v.model.ToggleOctave(v.cursor)
		v.check(err)
	case 'a':
		v.model.ToggleAll()
	case '1', '2', '3':
		p := spectrum.Preset(r - '1')
		v.check(v.model.ApplyPreset(p))
		v.message = "applied " + p.String()
	case 'w':
		v.model.NudgeWind(-1)
	case 'W':
		v.model.NudgeWind(1)
	case 'f':
		v.model.ScaleFetch(0.5)
	case 'F':
		v.model.ScaleFetch(2)
	case '[':
		v.model.NudgeDirection(-5)
	case ']':
		v.model.NudgeDirection(5)
	case 'r':
		config.SetSeed(config.GetSeed() + 1)
	case 's':
		v.save()
	default:
		return false
	}
	v.model.Refresh()
	v.dirty = true
	return false
}

func (v *View) check(err error) {
	if err != nil {
		v.message = err.Error()
		log.Printf("%v", err)
	}
}

func (v *View) save() {
	if v.loader == nil {
		v.message = "no profile directory configured"
		return
	}
	if err := v.model.Save(v.loader, v.name); err != nil {
		v.check(err)
		return
	}
	v.message = "saved " + v.loader.Path(v.name)
}

// Draw renders the whole editor and shows it.
func (v *View) Draw() {
	defer profiling.Track("tui.Draw")()
	v.dirty = false

	s := v.screen
	s.Clear()
	w, h := s.Size()

	fill(s, 0, w, styleHeader)
	drawText(s, 0, 0, " wavespec  "+v.model.StatusLine(), styleHeader)

	comps := v.model.Components()
	binner := v.model.Binner()
	barW := max(w-40, 10)
	y := 2
	for i := 0; i < v.model.Spectrum.Len() && y < h-2; i++ {
		v.drawOctave(s, y, i, barW, comps.LODs[i], binner)
		y++
	}

	y++
	for _, line := range v.model.BandSummary() {
		if y >= h-2 {
			break
		}
		drawText(s, 2, y, line, styleDim)
		y++
	}

	if v.message != "" {
		drawText(s, 0, h-2, v.message, styleDefault)
	}
	drawText(s, 0, h-1, help, styleDim)
	s.Show()
}

func (v *View) drawOctave(s tcell.Screen, y, i, barW int, tag lod.Tag, binner lod.Binner) {
	style := styleDefault
	marker := "  "
	if i == v.cursor {
		style = styleCursor
		marker = "> "
	}
	check := "[ ]"
	if on, _ := v.model.Spectrum.Enabled(i); on {
		check = "[x]"
	}
	wl := v.model.Spectrum.MustSmallWavelength(i)
	x := drawText(s, 0, y, fmt.Sprintf("%s%2d %9.3f m %s ", marker, i, wl, check), style)

	r, g, b := editor.BandColor(tag, binner.Count).RGB255()
	bar := styleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	filled := int(math.Round(float64(v.model.OctaveFraction(i)) * float64(barW)))
	for j := 0; j < barW; j++ {
		if j < filled {
			s.SetContent(x+j, y, '█', nil, bar)
		} else {
			s.SetContent(x+j, y, '·', nil, styleDim)
		}
	}
	pl, _ := v.model.Spectrum.PowerLog(i)
	drawText(s, x+barW+1, y, fmt.Sprintf("%5.2f  %s", pl, binner.Label(tag)), style)
}

// drawText writes str from x and returns the column after it.
func drawText(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func fill(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}
