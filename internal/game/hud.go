package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
)

// hud is the raygui status panel in the top-left corner.
type hud struct {
	bounds rl.Rectangle
}

func newHUD() *hud {
	return &hud{bounds: rl.Rectangle{X: 10, Y: 10, Width: 280, Height: 176}}
}

func (h *hud) init() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}

func (h *hud) captures(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, h.bounds)
}

func (h *hud) draw(g *Game) {
	x, y := h.bounds.X, h.bounds.Y
	line := func(i int) rl.Rectangle {
		return rl.Rectangle{X: x + 10, Y: y + 30 + float32(i)*20, Width: h.bounds.Width - 20, Height: 18}
	}

	gui.Panel(h.bounds, "cubeview")

	angle := g.World.Store.Rotation()
	marker := g.World.Store.Marker()
	gui.Label(line(0), fmt.Sprintf("Angle: %.1f deg", angle*rl.Rad2deg))
	gui.Label(line(1), fmt.Sprintf("Marker: (%.2f, %.2f, %.2f)", marker.X, marker.Y, marker.Z))
	gui.Label(line(2), fmt.Sprintf("Drag: %s   Seed taps: %d", g.Router.Strategy(), g.SeedTaps))
	gui.Label(line(3), fmt.Sprintf("Last tap: %s   Animating: %d", g.LastTap.Kind, g.Scheduler.Len()))

	g.ShowPhysics = gui.CheckBox(rl.Rectangle{X: x + 10, Y: y + 116, Width: 16, Height: 16}, "Show physics", g.ShowPhysics)
	if gui.Button(rl.Rectangle{X: x + 10, Y: y + 142, Width: 100, Height: 24}, "Reset (R)") {
		g.Reset()
	}

	rl.DrawFPS(int32(h.bounds.X+h.bounds.Width)+10, int32(y))
}
