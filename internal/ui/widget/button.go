package widget

import (
	"wavespec/internal/graphics/renderables/ui"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Button is a clickable box with centred text and an optional hover tooltip.
type Button struct {
	BaseComponent
	Text      string
	Tooltip   string
	OnClick   func()
	IsHovered bool

	NormalColor mgl32.Vec3
	HoverColor  mgl32.Vec3
	TextColor   mgl32.Vec3
}

func NewButton(text string, x, y, w, h float32, onClick func()) *Button {
	return &Button{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Text:          text,
		OnClick:       onClick,
		NormalColor:   mgl32.Vec3{0.2, 0.3, 0.4},
		HoverColor:    mgl32.Vec3{0.3, 0.42, 0.55},
		TextColor:     mgl32.Vec3{1, 1, 1},
	}
}

func (b *Button) Render(u *ui.UI, window *glfw.Window) {
	b.IsHovered = b.hovered(window)

	color := b.NormalColor
	if b.IsHovered {
		color = b.HoverColor
	}
	u.DrawFilledRect(b.X, b.Y, b.W, b.H, color, 1.0)

	// Text takes 45% of the height, shrunk further if it would overflow 90% of the width.
	_, rawH := u.MeasureText(b.Text, 1.0)
	if rawH == 0 {
		rawH = 20
	}
	scale := b.H * 0.45 / rawH
	textW, _ := u.MeasureText(b.Text, scale)
	if maxW := b.W * 0.9; textW > maxW {
		scale *= maxW / textW
		textW = maxW
	}
	textH := rawH * scale
	u.DrawText(b.Text, b.X+(b.W-textW)/2, b.Y+(b.H+textH)/2, scale, b.TextColor)
}

// RenderTooltip draws the tooltip if the button is hovered. Call it after
// every other component so it stays on top.
func (b *Button) RenderTooltip(u *ui.UI, window *glfw.Window) {
	if !b.IsHovered || b.Tooltip == "" {
		return
	}
	mx, my := window.GetCursorPos()
	u.DrawTooltip(b.Tooltip, float32(mx), float32(my))
}

func (b *Button) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	if b.IsHovered && justPressedLeft {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}
