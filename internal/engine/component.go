package engine

// Component is attached to a GameObject. Colliders and renderers are components.
type Component interface {
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Drawable is implemented by components that render their GameObject.
type Drawable interface {
	Draw()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
