package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavespec/internal/config"
	"wavespec/internal/editor"
	"wavespec/internal/spectrum"
	"wavespec/pkg/waveprofile"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()
	config.SetLodCount(8)
	config.SetSeed(0)
	config.SetWindSpeedKmh(36)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 30)

	s, err := spectrum.New(nil)
	require.NoError(t, err)
	m := editor.NewModel(s)
	return NewView(screen, m, waveprofile.NewLoader(t.TempDir()), "test"), screen
}

func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestCursorMovement(t *testing.T) {
	v, _ := newTestView(t)

	assert.False(t, v.HandleKey(tcell.KeyRune, 'k'))
	assert.Equal(t, 0, v.Cursor())

	v.HandleKey(tcell.KeyRune, 'j')
	v.HandleKey(tcell.KeyDown, 0)
	assert.Equal(t, 2, v.Cursor())

	for i := 0; i < 50; i++ {
		v.HandleKey(tcell.KeyRune, 'j')
	}
	assert.Equal(t, spectrum.DefaultNumOctaves-1, v.Cursor())
}

func TestEditKeys(t *testing.T) {
	v, _ := newTestView(t)
	s := v.model.Spectrum

	v.HandleKey(tcell.KeyRune, ' ')
	on, _ := s.Enabled(0)
	assert.False(t, on)
	assert.Equal(t, 0.0, v.model.Components().Amplitudes[0])

	v.HandleKey(tcell.KeyRune, 'a')
	assert.True(t, s.AllEnabled())
	v.HandleKey(tcell.KeyRune, 'a')
	on, _ = s.Enabled(5)
	assert.False(t, on)

	before, _ := s.PowerLog(0)
	v.HandleKey(tcell.KeyRight, 0)
	after, _ := s.PowerLog(0)
	assert.InDelta(t, 0.25, after-before, 1e-6)

	v.HandleKey(tcell.KeyRune, '3')
	assert.Equal(t, spectrum.PresetJONSWAP, config.GetPreset())
	assert.Equal(t, "applied jonswap", v.Message())

	v.HandleKey(tcell.KeyRune, 'W')
	assert.InDelta(t, 37, config.GetWindSpeedKmh(), 1e-9)

	seed := config.GetSeed()
	v.HandleKey(tcell.KeyRune, 'r')
	assert.Equal(t, seed+1, config.GetSeed())
}

func TestQuitKeys(t *testing.T) {
	v, _ := newTestView(t)
	assert.True(t, v.HandleKey(tcell.KeyRune, 'q'))
	assert.True(t, v.HandleKey(tcell.KeyEscape, 0))
	assert.True(t, v.HandleKey(tcell.KeyCtrlC, 0))
	assert.False(t, v.HandleKey(tcell.KeyF1, 0))
	assert.False(t, v.HandleKey(tcell.KeyRune, 'z'))
}

func TestRunQuits(t *testing.T) {
	v, screen := newTestView(t)
	screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	finished := make(chan struct{})
	go func() {
		v.Run()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
	assert.Equal(t, 1, v.Cursor())
}

func TestPumpStopsWhenDone(t *testing.T) {
	_, screen := newTestView(t)
	events := make(chan tcell.Event)
	done := make(chan struct{})

	stopped := make(chan struct{})
	go func() {
		pump(screen, events, done)
		close(stopped)
	}()

	// Nobody receives, so the pump is stuck on the send until done closes.
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	close(done)

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("pump kept blocking after done was closed")
	}
	_, ok := <-events
	assert.False(t, ok, "events should be closed")
}

func TestSaveKey(t *testing.T) {
	v, _ := newTestView(t)
	v.HandleKey(tcell.KeyRune, 's')
	assert.Contains(t, v.Message(), "saved")

	p, err := v.loader.Load("test")
	require.NoError(t, err)
	assert.Len(t, p.Octaves, spectrum.DefaultNumOctaves)
}

func TestDraw(t *testing.T) {
	v, screen := newTestView(t)
	v.Draw()

	assert.Contains(t, row(screen, 0), "wavespec")
	assert.Contains(t, row(screen, 2), ">  0")
	assert.Contains(t, row(screen, 2), "[x]")
	assert.Contains(t, row(screen, 3), "0.500 m")
	_, h := screen.Size()
	assert.Contains(t, row(screen, h-1), "q quit")
}
