package renderer

import (
	"fmt"

	"wavespec/internal/graphics"
	"wavespec/internal/lod"
	"wavespec/internal/profiling"
	"wavespec/internal/spectrum"
	"wavespec/internal/waves"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	viewport    graphics.Viewport
	clearColor  mgl32.Vec3
}

// NewRenderer initialises every renderable in order.
func NewRenderer(v graphics.Viewport, rs ...Renderable) (*Renderer, error) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
		r.SetViewport(v)
	}
	return &Renderer{
		renderables: rs,
		viewport:    v,
		clearColor:  mgl32.Vec3{0.05, 0.09, 0.14},
	}, nil
}

// Render clears the frame and draws every feature over the latest pass.
func (r *Renderer) Render(s *spectrum.Spectrum, comps *waves.Components, binner lod.Binner, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(r.clearColor.X(), r.clearColor.Y(), r.clearColor.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	ctx := RenderContext{
		Spectrum:   s,
		Components: comps,
		Binner:     binner,
		Viewport:   r.viewport,
		DT:         dt,
		Proj:       r.viewport.Ortho(),
	}
	if comps != nil {
		ctx.WindDirectionDeg = comps.WindDirectionDeg
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport forwards a window resize to every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	r.viewport = graphics.NewViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(r.viewport)
	}
}

func (r *Renderer) Viewport() graphics.Viewport { return r.viewport }
