package graphics

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph is one character's place in the atlas and its metrics, in pixels.
type Glyph struct {
	AtlasX, AtlasY     float32
	Width, Height      float32
	BearingX, BearingY float32
	Advance            float32
}

// FontAtlas is a single channel texture holding printable ASCII.
type FontAtlas struct {
	TextureID uint32
	Width     int
	Height    int
	Glyphs    map[rune]Glyph
}

const atlasWidth = 1024

// BuildFontAtlas bakes the TrueType font at path, or Go Regular when path is empty.
func BuildFontAtlas(path string, pixels int) (*FontAtlas, error) {
	ttf := goregular.TTF
	if path != "" {
		var err error
		if ttf, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
	}
	img, glyphs, err := rasterizeFont(ttf, pixels)
	if err != nil {
		return nil, err
	}

	texture, w, h := NewAlphaTexture(img)
	return &FontAtlas{TextureID: texture, Width: w, Height: h, Glyphs: glyphs}, nil
}

// rasterizeFont packs ASCII 32..126 into rows of an alpha image.
func rasterizeFont(ttf []byte, pixels int) (*image.Alpha, map[rune]Glyph, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(pixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	const padding = 1
	rowH := face.Metrics().Height.Ceil() + padding
	rows := 1
	x := 0
	for r := rune(32); r <= 126; r++ {
		dr, _, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		if x+dr.Dx()+padding > atlasWidth {
			rows++
			x = 0
		}
		x += dr.Dx() + padding
	}

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, rows*rowH))
	glyphs := make(map[rune]Glyph, 95)
	x, y := 0, 0
	for r := rune(32); r <= 126; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		if x+dr.Dx()+padding > atlasWidth {
			x = 0
			y += rowH
		}
		if dr.Dx() > 0 && dr.Dy() > 0 {
			draw.Draw(img, image.Rect(x, y, x+dr.Dx(), y+dr.Dy()), mask, maskp, draw.Src)
		}
		glyphs[r] = Glyph{
			AtlasX:   float32(x),
			AtlasY:   float32(y),
			Width:    float32(dr.Dx()),
			Height:   float32(dr.Dy()),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  float32(math.Round(float64(advance) / 64)),
		}
		x += dr.Dx() + padding
	}
	return img, glyphs, nil
}

// FontRenderer draws strings from an atlas in viewport pixels.
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	projection mgl32.Mat4
	vao, vbo   uint32
}

func NewFontRenderer(atlas *FontAtlas) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := LoadShader("font", "font")
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{
		atlas:      atlas,
		shader:     shader,
		projection: NewViewport(DefaultWidth, DefaultHeight).Ortho(),
	}

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 256*6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return fr, nil
}

// SetViewport updates the projection after a resize.
func (fr *FontRenderer) SetViewport(v Viewport) {
	fr.projection = v.Ortho()
}

// Render draws text with its baseline at (x, y).
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec3) {
	fr.RenderLines([]string{text}, x, y, 0, scale, color)
}

// RenderLines draws one string per line, lineStep pixels apart, in a single draw call.
func (fr *FontRenderer) RenderLines(lines []string, x, y, lineStep, scale float32, color mgl32.Vec3) {
	var verts []float32
	for _, line := range lines {
		verts = fr.appendVertices(verts, line, x, y, scale)
		y += lineStep
	}
	if len(verts) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	fr.shader.Use()
	fr.shader.SetVec3("textColor", color)
	fr.shader.SetMat4("projection", fr.projection)
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	size := len(verts) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

// Measure returns the width and tallest glyph height of text in pixels.
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	var w, h float32
	for _, r := range text {
		g, ok := fr.atlas.Glyphs[r]
		if !ok {
			g = fr.atlas.Glyphs[' ']
		}
		w += g.Advance * scale
		h = max(h, g.Height*scale)
	}
	return w, h
}

func (fr *FontRenderer) appendVertices(verts []float32, text string, x, y, scale float32) []float32 {
	aw, ah := float32(fr.atlas.Width), float32(fr.atlas.Height)
	for _, r := range text {
		g, ok := fr.atlas.Glyphs[r]
		if !ok {
			x += fr.atlas.Glyphs[' '].Advance * scale
			continue
		}
		if g.Width > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1, y1 := x0+g.Width*scale, y0+g.Height*scale
			u0, v0 := g.AtlasX/aw, g.AtlasY/ah
			u1, v1 := (g.AtlasX+g.Width)/aw, (g.AtlasY+g.Height)/ah
			verts = append(verts,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += g.Advance * scale
	}
	return verts
}

// Dispose frees the GL objects.
func (fr *FontRenderer) Dispose() {
	gl.DeleteVertexArrays(1, &fr.vao)
	gl.DeleteBuffers(1, &fr.vbo)
	DeleteTexture(fr.atlas.TextureID)
	fr.shader.Delete()
}
