package compass

import (
	"math"

	"wavespec/internal/editor"
	"wavespec/internal/graphics"
	renderer "wavespec/internal/graphics/renderer"
	"wavespec/internal/lod"
	"wavespec/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Placement in viewport pixels, measured from the bottom right corner.
const (
	Radius  = 60
	OffsetX = 100
	OffsetY = 170
)

const ringSegments = 48

// Wind arrow in unit space, pointing up
var arrowVertices = []float32{
	// Body
	-0.06, -0.8,
	0.06, -0.8,
	0.06, 0.45,
	-0.06, 0.45,
	// Head
	-0.2, 0.45,
	0.2, 0.45,
	0.0, 0.8,
}

// N marker drawn above the ring
var letterN = []float32{
	-0.08, 1.1,
	-0.08, 1.26,
	-0.08, 1.26,
	0.08, 1.1,
	0.08, 1.1,
	0.08, 1.26,
}

// Compass shows the wind heading and one ray per active wave component,
// rotated to its travel direction, scaled by amplitude and coloured by band.
type Compass struct {
	shader   *graphics.Shader
	viewport graphics.Viewport

	arrowVAO, arrowVBO uint32
	ringVAO, ringVBO   uint32
	lineVAO, lineVBO   uint32
}

func NewCompass() *Compass {
	return &Compass{}
}

func (c *Compass) Init() error {
	var err error
	c.shader, err = graphics.LoadShader("compass", "compass")
	if err != nil {
		return err
	}

	c.arrowVAO, c.arrowVBO = newLineBuffer(arrowVertices, gl.STATIC_DRAW)
	c.ringVAO, c.ringVBO = newLineBuffer(ringVertices(ringSegments), gl.STATIC_DRAW)
	c.lineVAO, c.lineVBO = newLineBuffer(make([]float32, len(letterN)), gl.DYNAMIC_DRAW)
	return nil
}

func newLineBuffer(verts []float32, usage uint32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), usage)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return vao, vbo
}

func ringVertices(n int) []float32 {
	out := make([]float32, 0, 2*n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		out = append(out, float32(math.Cos(a)), float32(math.Sin(a)))
	}
	return out
}

func (c *Compass) SetViewport(v graphics.Viewport) { c.viewport = v }

func (c *Compass) Dispose() {
	for _, vao := range []*uint32{&c.arrowVAO, &c.ringVAO, &c.lineVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
		}
	}
	for _, vbo := range []*uint32{&c.arrowVBO, &c.ringVBO, &c.lineVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
		}
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}

func (c *Compass) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderCompass")()

	vw, vh := c.viewport.Width, c.viewport.Height
	cx := (vw-OffsetX)/vw*2 - 1
	cy := 1 - (vh-OffsetY)/vh*2

	c.shader.Use()
	c.shader.SetVec2("uCenter", mgl32.Vec2{cx, cy})
	c.shader.SetVec2("uScale", mgl32.Vec2{Radius / vw * 2, Radius / vh * 2})
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.LineWidth(1.0)

	c.shader.SetFloat("uRotation", 0)
	c.shader.SetVec4("uColor", mgl32.Vec4{0.6, 0.6, 0.6, 0.7})
	gl.BindVertexArray(c.ringVAO)
	gl.DrawArrays(gl.LINE_LOOP, 0, ringSegments)
	c.drawLines(letterN)

	c.renderRays(ctx)

	// The arrow points up, heading 0 is east.
	heading := ctx.WindDirectionDeg - 90
	c.shader.SetFloat("uRotation", mgl32.DegToRad(float32(heading)))
	c.shader.SetVec4("uColor", mgl32.Vec4{1, 0.3, 0.2, 1})
	gl.BindVertexArray(c.arrowVAO)
	gl.DrawArrays(gl.LINE_LOOP, 0, 4)
	gl.DrawArrays(gl.LINE_LOOP, 4, 3)
	gl.BindVertexArray(0)
}

func (c *Compass) renderRays(ctx renderer.RenderContext) {
	if ctx.Components == nil {
		return
	}
	b := ctx.Components.Float32()
	maxAmp := float32(0)
	for i, a := range b.Amplitudes {
		if lod.Tag(b.LODs[i]) != lod.Inactive {
			maxAmp = max(maxAmp, a)
		}
	}
	if maxAmp == 0 {
		return
	}

	// One upload for every ray, then one draw per ray for its colour.
	verts := make([]float32, 0, 4*len(b.Amplitudes))
	for i, a := range b.AnglesRad {
		r := 0.15 + 0.85*b.Amplitudes[i]/maxAmp
		s, co := math.Sincos(float64(a))
		verts = append(verts, 0, 0, r*float32(co), r*float32(s))
	}
	gl.BindVertexArray(c.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)

	c.shader.SetFloat("uRotation", 0)
	for i := range b.AnglesRad {
		tag := lod.Tag(b.LODs[i])
		if tag == lod.Inactive {
			continue
		}
		col := editor.BandColor(tag, ctx.Binner.Count)
		c.shader.SetVec4("uColor", mgl32.Vec4{float32(col.R), float32(col.G), float32(col.B), 0.9})
		gl.DrawArrays(gl.LINES, int32(2*i), 2)
	}
}

func (c *Compass) drawLines(verts []float32) {
	gl.BindVertexArray(c.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(verts)/2))
}
