package widget

import (
	"wavespec/internal/graphics/renderables/ui"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Component interface {
	Render(u *ui.UI, window *glfw.Window)
	HandleInput(window *glfw.Window, justPressedLeft bool) bool
	SetPosition(x, y float32)
}

type BaseComponent struct {
	X, Y, W, H float32
}

func (b *BaseComponent) SetPosition(x, y float32) { b.X, b.Y = x, y }

// Contains reports whether the point lies inside the component.
func (b *BaseComponent) Contains(x, y float32) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

func (b *BaseComponent) hovered(window *glfw.Window) bool {
	mx, my := window.GetCursorPos()
	return b.Contains(float32(mx), float32(my))
}
