package app

import (
	"fmt"

	"wavespec/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow opens the editor window with a 4.1 core context. glfw.Init
// must have been called on the main thread.
func SetupWindow(title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(graphics.DefaultWidth, graphics.DefaultHeight, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}

	// The FPS limiter paces frames instead of v-sync.
	glfw.SwapInterval(0)
	return window, nil
}
