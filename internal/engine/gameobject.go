package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform is expressed in the parent's local space.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

// Matrix returns the local transform as scale -> rotate -> translate.
func (t Transform) Matrix() rl.Matrix {
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rot := rl.QuaternionToMatrix(t.Rotation)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.QuaternionIdentity(),
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// ChildAt follows a chain of child indices starting at g.
// It reports false instead of panicking when any step is missing.
func (g *GameObject) ChildAt(path ...int) (*GameObject, bool) {
	cur := g
	for _, i := range path {
		if cur == nil || i < 0 || i >= len(cur.Children) {
			return nil, false
		}
		cur = cur.Children[i]
	}
	return cur, cur != nil
}

// FindChild searches the subtree below g depth-first for a node named name.
func (g *GameObject) FindChild(name string) (*GameObject, bool) {
	for _, c := range g.Children {
		if c.Name == name {
			return c, true
		}
		if found, ok := c.FindChild(name); ok {
			return found, true
		}
	}
	return nil, false
}

// IsOrDescendsFrom reports whether ancestor is g itself or appears in g's parent chain.
func (g *GameObject) IsOrDescendsFrom(ancestor *GameObject) bool {
	if ancestor == nil {
		return false
	}
	for obj := g; obj != nil; obj = obj.Parent {
		if obj == ancestor {
			return true
		}
	}
	return false
}

// WorldMatrix composes the local transforms from the root down to g.
func (g *GameObject) WorldMatrix() rl.Matrix {
	local := g.Transform.Matrix()
	if g.Parent == nil {
		return local
	}
	return rl.MatrixMultiply(local, g.Parent.WorldMatrix())
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	return g.ToWorld(rl.Vector3Zero())
}

// ToWorld maps a point from g's local space into world space.
func (g *GameObject) ToWorld(local rl.Vector3) rl.Vector3 {
	return rl.Vector3Transform(local, g.WorldMatrix())
}

// ToLocal maps a world-space point into g's local space.
func (g *GameObject) ToLocal(world rl.Vector3) rl.Vector3 {
	return rl.Vector3Transform(world, rl.MatrixInvert(g.WorldMatrix()))
}

func (g *GameObject) WorldRotation() rl.Quaternion {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.QuaternionMultiply(g.Parent.WorldRotation(), g.Transform.Rotation)
}
