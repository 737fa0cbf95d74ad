package ui

import (
	"wavespec/internal/editor"
	"wavespec/internal/graphics"
	renderer "wavespec/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// UI draws flat rectangles, sliders and text in viewport pixels
type UI struct {
	shader   *graphics.Shader
	font     *graphics.FontRenderer
	viewport graphics.Viewport
	vao      uint32
	vbo      uint32

	isDraggingSlider bool
	activeSliderID   string
}

func NewUI() *UI {
	return &UI{viewport: graphics.NewViewport(graphics.DefaultWidth, graphics.DefaultHeight)}
}

func (u *UI) Init() error {
	var err error
	u.shader, err = graphics.LoadShader("ui", "ui")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

// Render is a no-op; widgets draw through the UI directly.
func (u *UI) Render(ctx renderer.RenderContext) {}

func (u *UI) Dispose() {
	if u.vao != 0 {
		gl.DeleteVertexArrays(1, &u.vao)
	}
	if u.vbo != 0 {
		gl.DeleteBuffers(1, &u.vbo)
	}
	if u.shader != nil {
		u.shader.Delete()
	}
}

func (u *UI) SetViewport(v graphics.Viewport) {
	u.viewport = v
	if u.font != nil {
		u.font.SetViewport(v)
	}
}

func (u *UI) Viewport() graphics.Viewport { return u.viewport }

// SetFontRenderer attaches the renderer used by DrawText and MeasureText.
func (u *UI) SetFontRenderer(fr *graphics.FontRenderer) {
	u.font = fr
	fr.SetViewport(u.viewport)
}

// DrawText draws text with its baseline at (x, y). Without a font it does nothing.
func (u *UI) DrawText(text string, x, y, scale float32, color mgl32.Vec3) {
	if u.font == nil {
		return
	}
	u.font.Render(text, x, y, scale, color)
}

// DrawLines draws several lines of text lineStep pixels apart.
func (u *UI) DrawLines(lines []string, x, y, lineStep, scale float32, color mgl32.Vec3) {
	if u.font == nil {
		return
	}
	u.font.RenderLines(lines, x, y, lineStep, scale, color)
}

func (u *UI) MeasureText(text string, scale float32) (float32, float32) {
	if u.font == nil {
		return 0, 0
	}
	return u.font.Measure(text, scale)
}

// DrawSlider draws a horizontal slider holding value in 0..1 and returns the
// value after mouse input. sliderID keeps a drag captured by one slider.
// steps > 1 snaps the value and draws tick marks.
func (u *UI) DrawSlider(x, y, w, h float32, value float32, window *glfw.Window, steps int, sliderID string) float32 {
	u.DrawFilledRect(x, y, w, h, mgl32.Vec3{0.3, 0.3, 0.3}, 0.8)

	if steps > 1 {
		tickH := h * 0.6
		tickY := y + (h-tickH)*0.5
		every := max(steps/10, 1)
		for i := 0; i < steps; i++ {
			if i != 0 && i != steps-1 && i%every != 0 {
				continue
			}
			tx := x + float32(i)/float32(steps-1)*w - 1
			u.DrawFilledRect(tx, tickY, 2, tickH, mgl32.Vec3{0.9, 0.9, 0.9}, 0.18)
		}
	}

	if window != nil {
		cx, cy := window.GetCursorPos()
		mx, my := float32(cx), float32(cy)
		leftDown := window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
		inside := my >= y && my <= y+h && mx >= x && mx <= x+w

		switch {
		case u.isDraggingSlider && u.activeSliderID == sliderID:
			if leftDown {
				value = editor.Snap((mx-x)/w, steps)
			} else {
				u.isDraggingSlider = false
				u.activeSliderID = ""
			}
		case !u.isDraggingSlider && leftDown && inside:
			u.isDraggingSlider = true
			u.activeSliderID = sliderID
			value = editor.Snap((mx-x)/w, steps)
		}
	}

	const thumbW = 12
	thumbX := x + (w-thumbW)*value
	u.DrawFilledRect(thumbX, y, thumbW, h, mgl32.Vec3{0.7, 0.7, 0.7}, 0.9)
	return value
}

// Dragging reports whether a slider currently holds the mouse.
func (u *UI) Dragging() bool { return u.isDraggingSlider }

// DrawFilledRect draws a rectangle in viewport pixels with a top-left origin.
func (u *UI) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	vw, vh := u.viewport.Width, u.viewport.Height
	x0 := x/vw*2 - 1
	y0 := 1 - y/vh*2
	x1 := (x+w)/vw*2 - 1
	y1 := 1 - (y+h)/vh*2
	verts := [12]float32{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y0,
		x1, y1,
		x0, y1,
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	u.shader.Use()
	u.shader.SetVec4("uColor", color.Vec4(alpha))

	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

// DrawTooltip draws text on a dark box just below and right of (x, y).
func (u *UI) DrawTooltip(text string, x, y float32) {
	const scale, pad = 0.45, 6
	w, h := u.MeasureText(text, scale)
	if w == 0 {
		return
	}
	bx := min(x+12, u.viewport.Width-w-2*pad)
	by := y + 16
	u.DrawFilledRect(bx, by, w+2*pad, h+2*pad, mgl32.Vec3{0, 0, 0}, 0.85)
	u.DrawText(text, bx+pad, by+pad+h*0.8, scale, mgl32.Vec3{1, 1, 0.85})
}
