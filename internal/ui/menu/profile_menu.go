package menu

import (
	"wavespec/internal/graphics/renderables/ui"
	"wavespec/internal/ui/widget"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// ProfileMenu lists saved profiles and lets the user pick one.
type ProfileMenu struct {
	buttons  []*widget.Button
	back     *widget.Button
	selected string
	action   Action
}

func NewProfileMenu(names []string) *ProfileMenu {
	pm := &ProfileMenu{}
	for _, name := range names {
		btn := widget.NewButton(name, 0, 0, 260, 34, func() {
			pm.selected = name
			pm.action = ActionLoadProfile
		})
		pm.buttons = append(pm.buttons, btn)
	}
	pm.back = widget.NewButton("Back", 0, 0, 260, 34, func() { pm.action = ActionClose })
	pm.back.NormalColor = mgl32.Vec3{0.25, 0.25, 0.25}
	pm.back.HoverColor = mgl32.Vec3{0.35, 0.35, 0.35}
	return pm
}

// Selected is the profile picked by the last ActionLoadProfile.
func (pm *ProfileMenu) Selected() string { return pm.selected }

func (pm *ProfileMenu) Update(window *glfw.Window, justPressedLeft bool) Action {
	pm.action = ActionNone
	for _, btn := range pm.buttons {
		btn.HandleInput(window, justPressedLeft)
	}
	pm.back.HandleInput(window, justPressedLeft)
	return pm.action
}

func (pm *ProfileMenu) Render(u *ui.UI, window *glfw.Window) {
	vp := u.Viewport()
	u.DrawFilledRect(0, 0, vp.Width, vp.Height, mgl32.Vec3{0, 0, 0}, 0.6)

	centerX := vp.Width / 2
	title := "Profiles"
	tw, _ := u.MeasureText(title, 0.8)
	u.DrawText(title, centerX-tw/2, 70, 0.8, mgl32.Vec3{1, 1, 1})

	y := float32(110)
	if len(pm.buttons) == 0 {
		msg := "No saved profiles"
		mw, _ := u.MeasureText(msg, 0.45)
		u.DrawText(msg, centerX-mw/2, y+20, 0.45, mgl32.Vec3{0.8, 0.8, 0.8})
		y += 40
	}
	for _, btn := range pm.buttons {
		btn.SetPosition(centerX-btn.W/2, y)
		btn.Render(u, window)
		y += 42
	}
	pm.back.SetPosition(centerX-pm.back.W/2, y+10)
	pm.back.Render(u, window)
}
