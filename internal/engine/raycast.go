package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycaster answers nearest-hit queries against the scene's collidable geometry.
type Raycaster interface {
	Raycast(ray rl.Ray, maxDistance float32) (RaycastResult, bool)
}
