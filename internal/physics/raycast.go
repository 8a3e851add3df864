package physics

import (
	"cubeview/internal/components"
	"cubeview/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Colliders is the set of objects a ray query runs against.
type Colliders struct {
	Objects []*engine.GameObject
}

// NewColliders collects every active object in the scene that carries a BoxCollider.
func NewColliders(scene *engine.Scene) *Colliders {
	c := &Colliders{}
	for _, g := range scene.GameObjects {
		if engine.GetComponent[*components.BoxCollider](g) != nil {
			c.Objects = append(c.Objects, g)
		}
	}
	return c
}

// Raycast checks for intersection with all collidable objects and returns the closest hit
func (c *Colliders) Raycast(ray rl.Ray, maxDistance float32) (engine.RaycastResult, bool) {
	direction := rl.Vector3Normalize(ray.Direction)
	if rl.Vector3Length(direction) == 0 {
		return engine.RaycastResult{}, false
	}
	ray.Direction = direction

	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false

	for _, obj := range c.Objects {
		if !obj.Active {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](obj)
		if box == nil {
			continue
		}
		if info, ok := raycastBox(ray, obj, box, maxDistance); ok && info.Distance < closest.Distance {
			closest = info
			closest.GameObject = obj
			hit = true
		}
	}

	return closest, hit
}

// raycastBox intersects the ray with an oriented box by moving the ray into the
// owner's local space. The ray parameter is preserved by the affine map, so the
// local t is the world distance along the normalized world direction.
func raycastBox(ray rl.Ray, obj *engine.GameObject, box *components.BoxCollider, maxDistance float32) (engine.RaycastResult, bool) {
	world := obj.WorldMatrix()
	inv := rl.MatrixInvert(world)
	origin := rl.Vector3Transform(ray.Position, inv)
	direction := rl.Vector3Subtract(rl.Vector3Transform(rl.Vector3Add(ray.Position, ray.Direction), inv), origin)

	b := box.LocalBounds()
	min, max := b.Min, b.Max

	tmin := float32(-1e30)
	tmax := float32(1e30)
	axes := [3][4]float32{
		{origin.X, direction.X, min.X, max.X},
		{origin.Y, direction.Y, min.Y, max.Y},
		{origin.Z, direction.Z, min.Z, max.Z},
	}
	for _, a := range axes {
		o, d, lo, hi := a[0], a[1], a[2], a[3]
		if d == 0 {
			if o < lo || o > hi {
				return engine.RaycastResult{}, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return engine.RaycastResult{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return engine.RaycastResult{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	local := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if math32.Abs(local.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1}
	} else if math32.Abs(local.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1}
	} else if math32.Abs(local.Y-min.Y) < epsilon {
		normal = rl.Vector3{Y: -1}
	} else if math32.Abs(local.Y-max.Y) < epsilon {
		normal = rl.Vector3{Y: 1}
	} else if math32.Abs(local.Z-min.Z) < epsilon {
		normal = rl.Vector3{Z: -1}
	} else {
		normal = rl.Vector3{Z: 1}
	}
	normal = rl.Vector3Normalize(rl.Vector3RotateByQuaternion(normal, obj.WorldRotation()))

	return engine.RaycastResult{
		Point:    rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)),
		Normal:   normal,
		Distance: t,
	}, true
}
