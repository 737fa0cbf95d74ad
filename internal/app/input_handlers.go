package app

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func (a *App) setupCallbacks() {
	window := a.window
	im := a.input

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})

	// Layout uses window coordinates, so the renderer gets the window size
	// while GL gets the framebuffer size.
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		winW, winH := w.GetSize()
		a.renderer.UpdateViewport(winW, winH)
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		a.render(0)
		w.SwapBuffers()
	})
}
