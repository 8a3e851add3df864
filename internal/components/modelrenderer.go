package components

import (
	"cubeview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type ModelRenderer struct {
	engine.BaseComponent
	Model    rl.Model
	Color    rl.Color
	fromFile bool // true if owned by the asset cache
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Color: color,
	}
}

// NewBoxRenderer generates a cube mesh of the given size.
func NewBoxRenderer(size rl.Vector3, color rl.Color) *ModelRenderer {
	mesh := rl.GenMeshCube(size.X, size.Y, size.Z)
	return NewModelRenderer(rl.LoadModelFromMesh(mesh), color)
}

// NewSharedModelRenderer wraps a model owned by the asset cache; Unload leaves it alone.
func NewSharedModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model:    model,
		Color:    color,
		fromFile: true,
	}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	m.Model.Transform = g.WorldMatrix()
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Color)
}

func (m *ModelRenderer) Unload() {
	if !m.fromFile {
		rl.UnloadModel(m.Model)
	}
}
