package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Viewer is a fixed camera looking at the scene anchor. It also answers
// screen-to-world ray queries for tap handling.
type Viewer struct {
	Position rl.Vector3
	Target   rl.Vector3
	Fovy     float32

	// Width and Height override the window size for ray queries. Zero means
	// use the current render size.
	Width, Height int32
}

func New(pos, target rl.Vector3, fovy float32) *Viewer {
	if fovy <= 0 {
		fovy = 45
	}
	return &Viewer{
		Position: pos,
		Target:   target,
		Fovy:     fovy,
	}
}

func (c *Viewer) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// ScreenRay returns the world ray through a screen-space point.
func (c *Viewer) ScreenRay(screen rl.Vector2) rl.Ray {
	w, h := c.Width, c.Height
	if w <= 0 || h <= 0 {
		w, h = int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	}
	return rl.GetScreenToWorldRayEx(screen, c.GetRaylibCamera(), w, h)
}

// Zoom moves the camera along its view direction, never past minDistance from the target.
func (c *Viewer) Zoom(amount, minDistance float32) {
	offset := rl.Vector3Subtract(c.Position, c.Target)
	dist := rl.Vector3Length(offset)
	if dist == 0 {
		return
	}
	next := dist - amount
	if next < minDistance {
		next = minDistance
	}
	c.Position = rl.Vector3Add(c.Target, rl.Vector3Scale(offset, next/dist))
}
