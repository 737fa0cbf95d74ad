package renderer

import (
	"wavespec/internal/graphics"
	"wavespec/internal/lod"
	"wavespec/internal/spectrum"
	"wavespec/internal/waves"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Spectrum   *spectrum.Spectrum
	Components *waves.Components
	Binner     lod.Binner
	Viewport   graphics.Viewport
	DT         float64
	Proj       mgl32.Mat4

	WindDirectionDeg float64 // 0 is +x, counter-clockwise
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(v graphics.Viewport)
}
