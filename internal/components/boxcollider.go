package components

import (
	"cubeview/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is an oriented box in its GameObject's local space.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// NewBoxColliderFromBounds fits a collider to a local bounding box, e.g. a loaded model's.
func NewBoxColliderFromBounds(box rl.BoundingBox) *BoxCollider {
	return &BoxCollider{
		Size:   rl.Vector3Subtract(box.Max, box.Min),
		Offset: rl.Vector3Scale(rl.Vector3Add(box.Min, box.Max), 0.5),
	}
}

// LocalBounds returns the box in the owner's local space.
func (b *BoxCollider) LocalBounds() rl.BoundingBox {
	half := rl.Vector3{X: math32.Abs(b.Size.X) / 2, Y: math32.Abs(b.Size.Y) / 2, Z: math32.Abs(b.Size.Z) / 2}
	return rl.BoundingBox{
		Min: rl.Vector3Subtract(b.Offset, half),
		Max: rl.Vector3Add(b.Offset, half),
	}
}

// WorldCorners returns the eight corners of the box in world space.
func (b *BoxCollider) WorldCorners() [8]rl.Vector3 {
	var corners [8]rl.Vector3
	g := b.GetGameObject()
	if g == nil {
		return corners
	}
	box := b.LocalBounds()
	m := g.WorldMatrix()
	for i := range corners {
		p := box.Min
		if i&1 != 0 {
			p.X = box.Max.X
		}
		if i&2 != 0 {
			p.Y = box.Max.Y
		}
		if i&4 != 0 {
			p.Z = box.Max.Z
		}
		corners[i] = rl.Vector3Transform(p, m)
	}
	return corners
}

// WorldBounds returns the axis-aligned box enclosing the oriented collider.
func (b *BoxCollider) WorldBounds() rl.BoundingBox {
	corners := b.WorldCorners()
	out := rl.BoundingBox{Min: corners[0], Max: corners[0]}
	for _, c := range corners[1:] {
		out.Min = rl.Vector3Min(out.Min, c)
		out.Max = rl.Vector3Max(out.Max, c)
	}
	return out
}

// DrawWireframe outlines the oriented box; used for the physics debug overlay.
func (b *BoxCollider) DrawWireframe(color rl.Color) {
	c := b.WorldCorners()
	edges := [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
		{0, 2}, {1, 3}, {4, 6}, {5, 7},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		rl.DrawLine3D(c[e[0]], c[e[1]], color)
	}
}
