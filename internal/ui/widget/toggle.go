package widget

import (
	"wavespec/internal/graphics/renderables/ui"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Toggle is an on/off box with its label drawn to the right.
type Toggle struct {
	BaseComponent
	Label     string
	IsOn      bool
	OnToggle  func(isOn bool)
	IsHovered bool
}

func NewToggle(label string, x, y, w, h float32, initial bool, onToggle func(isOn bool)) *Toggle {
	return &Toggle{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Label:         label,
		IsOn:          initial,
		OnToggle:      onToggle,
	}
}

func (t *Toggle) Render(u *ui.UI, window *glfw.Window) {
	t.IsHovered = t.hovered(window)

	bg := mgl32.Vec3{0.5, 0.2, 0.2}
	if t.IsOn {
		bg = mgl32.Vec3{0.2, 0.5, 0.2}
	}
	if t.IsHovered {
		bg = bg.Mul(1.2)
	}
	u.DrawFilledRect(t.X, t.Y, t.W, t.H, bg, 0.85)

	if t.Label != "" {
		u.DrawText(t.Label, t.X+t.W+6, t.Y+t.H*0.8, 0.38, mgl32.Vec3{0.9, 0.9, 0.9})
	}
}

func (t *Toggle) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	if t.IsHovered && justPressedLeft {
		t.IsOn = !t.IsOn
		if t.OnToggle != nil {
			t.OnToggle(t.IsOn)
		}
		return true
	}
	return false
}
