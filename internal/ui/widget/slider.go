package widget

import (
	"wavespec/internal/graphics/renderables/ui"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type Slider struct {
	BaseComponent
	Value    float32 // 0.0 to 1.0
	Steps    int
	ID       string
	Label    string
	Format   func(val float32) string // Value text drawn right of the track
	OnChange func(val float32)
}

func NewSlider(x, y, w, h float32, initialVal float32, steps int, id string, onChange func(val float32)) *Slider {
	return &Slider{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Value:         initialVal,
		Steps:         steps,
		ID:            id,
		OnChange:      onChange,
	}
}

func (s *Slider) Render(u *ui.UI, window *glfw.Window) {
	if s.Label != "" {
		u.DrawText(s.Label, s.X, s.Y-4, 0.4, mgl32.Vec3{1, 1, 1})
	}

	newValue := u.DrawSlider(s.X, s.Y, s.W, s.H, s.Value, window, s.Steps, s.ID)
	if newValue != s.Value {
		s.Value = newValue
		if s.OnChange != nil {
			s.OnChange(s.Value)
		}
	}

	if s.Format != nil {
		u.DrawText(s.Format(s.Value), s.X+s.W+8, s.Y+s.H*0.8, 0.38, mgl32.Vec3{0.8, 0.8, 0.8})
	}
}

// HandleInput is a no-op; dragging is handled while rendering.
func (s *Slider) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	return false
}
