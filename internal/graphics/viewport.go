package graphics

import "github.com/go-gl/mathgl/mgl32"

// Default window size in screen units
const (
	DefaultWidth  = 900
	DefaultHeight = 600
)

// Viewport is the logical window size all 2D drawing is laid out in.
// Coordinates are pixels with a top-left origin.
type Viewport struct {
	Width  float32
	Height float32
}

func NewViewport(width, height int) Viewport {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return Viewport{Width: float32(width), Height: float32(height)}
}

// Ortho maps viewport pixels to clip space with y pointing down.
func (v Viewport) Ortho() mgl32.Mat4 {
	return mgl32.Ortho(0, v.Width, v.Height, 0, -1, 1)
}
