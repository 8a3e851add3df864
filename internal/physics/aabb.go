package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func NewAABBFromBounds(b rl.BoundingBox) AABB {
	return AABB{Min: b.Min, Max: b.Max}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Penetration returns the smallest overlap depth across the three axes, or 0 if disjoint.
func (a AABB) Penetration(b AABB) float32 {
	if !a.Intersects(b) {
		return 0
	}
	depth := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	depth = min(depth, min(a.Max.Y, b.Max.Y)-max(a.Min.Y, b.Min.Y))
	depth = min(depth, min(a.Max.Z, b.Max.Z)-max(a.Min.Z, b.Min.Z))
	return depth
}
