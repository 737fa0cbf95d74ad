package overlay

import (
	"fmt"
	"time"

	"wavespec/internal/frame"
	"wavespec/internal/graphics"
	"wavespec/internal/graphics/renderables/ui"
	renderer "wavespec/internal/graphics/renderer"
	"wavespec/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Overlay prints frame timings and the slowest tracked passes in the top
// right corner while it is visible.
type Overlay struct {
	ui       *ui.UI
	viewport graphics.Viewport
	visible  bool

	frames *frame.Stats
	fps    float64
	total  time.Duration
}

func NewOverlay(u *ui.UI) *Overlay {
	return &Overlay{ui: u, frames: &frame.Stats{}}
}

func (o *Overlay) Init() error { return nil }

func (o *Overlay) Dispose() {}

func (o *Overlay) SetViewport(v graphics.Viewport) { o.viewport = v }

func (o *Overlay) Toggle() bool {
	o.visible = !o.visible
	return o.visible
}

func (o *Overlay) Visible() bool { return o.visible }

// SetRenderDuration records the time spent in Renderer.Render this frame.
func (o *Overlay) SetRenderDuration(d time.Duration) { o.frames.Add(d) }

// SetFrame records the whole previous frame and the current rate.
func (o *Overlay) SetFrame(total time.Duration, fps float64) {
	o.total = total
	o.fps = fps
}

func (o *Overlay) Render(ctx renderer.RenderContext) {
	if !o.visible {
		return
	}

	lines := []string{
		fmt.Sprintf("FPS: %.0f  frame: %s", o.fps, profiling.FormatMs(o.total)),
		fmt.Sprintf("render: %s (min %s, avg %s, max %s)",
			profiling.FormatMs(o.frames.Last()), profiling.FormatMs(o.frames.Min()),
			profiling.FormatMs(o.frames.Avg()), profiling.FormatMs(o.frames.Max())),
		fmt.Sprintf("waves: %s  menu: %s",
			profiling.FormatMs(profiling.SumWithPrefix("waves.")),
			profiling.FormatMs(profiling.SumWithPrefix("menu."))),
	}
	for i, e := range profiling.Entries() {
		if i == 6 {
			break
		}
		lines = append(lines, fmt.Sprintf("%s: %s x%d", e.Name, profiling.FormatMs(e.Total), e.Calls))
	}
	if ctx.Components != nil {
		lines = append(lines, fmt.Sprintf("components: %d (%d active)  chop %.2f",
			ctx.Components.Len(), ctx.Components.Active(), ctx.Components.Choppiness))
	}

	const scale, step = 0.3, 15
	w := float32(0)
	for _, l := range lines {
		lw, _ := o.ui.MeasureText(l, scale)
		w = max(w, lw)
	}
	x := o.viewport.Width - w - 16
	o.ui.DrawFilledRect(x-8, 8, w+16, float32(len(lines))*step+12, mgl32.Vec3{0, 0, 0}, 0.55)
	o.ui.DrawLines(lines, x, 26, step, scale, mgl32.Vec3{1, 1, 1})
}
