package world

import (
	"fmt"

	"cubeview/internal/assets"
	"cubeview/internal/components"
	"cubeview/internal/config"
	"cubeview/internal/engine"
	"cubeview/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// Names of the structural nodes between the seed root and its mesh. The
// nesting mirrors a seed loaded from a model file.
const (
	AnchorName    = "anchor"
	SeedModelName = "seed_model"
	SeedMeshName  = "semente"
)

type World struct {
	Scene     *engine.Scene
	Anchor    *engine.GameObject
	Scenery   *engine.GameObject
	Marker    *engine.GameObject
	Seed      *engine.GameObject // nil when disabled
	Store     *Store
	Colliders *physics.Colliders

	cfg  *config.Config
	tilt rl.Quaternion
	log  zerolog.Logger
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// New builds the scene graph and colliders. It touches no GPU state, so it can
// run before a window exists; LoadRenderers adds the drawable side.
func New(cfg *config.Config, log zerolog.Logger) (*World, error) {
	w := &World{
		Scene: engine.NewScene("Main"),
		Store: NewStore(cfg.Scenery.InitialAngle, vec3(cfg.Marker.Position)),
		cfg:   cfg,
		tilt:  rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, cfg.Scenery.Tilt),
		log:   log.With().Str("component", "world").Logger(),
	}

	w.Anchor = engine.NewGameObject(AnchorName)

	w.Scenery = engine.NewGameObject(cfg.Scenery.Name)
	w.Scenery.AddComponent(components.NewBoxCollider(vec3(cfg.Scenery.Size)))
	w.Anchor.AddChild(w.Scenery)

	w.Marker = engine.NewGameObject(cfg.Marker.Name)
	markerSize := rl.Vector3{X: cfg.Marker.Size, Y: cfg.Marker.Size, Z: cfg.Marker.Size}
	w.Marker.AddComponent(components.NewBoxCollider(markerSize))
	w.Scenery.AddChild(w.Marker)

	if cfg.Seed.Enabled {
		w.Seed = engine.NewGameObject(cfg.Seed.Name)
		w.Seed.Transform.Position = vec3(cfg.Seed.Position)
		model := engine.NewGameObject(SeedModelName)
		mesh := engine.NewGameObject(SeedMeshName)
		seedSize := rl.Vector3{X: cfg.Seed.Size, Y: cfg.Seed.Size, Z: cfg.Seed.Size}
		mesh.AddComponent(components.NewBoxCollider(seedSize))
		model.AddChild(mesh)
		w.Seed.AddChild(model)
		w.Scenery.AddChild(w.Seed)
	}

	w.Scene.AddGameObject(w.Anchor)

	names := []string{cfg.Scenery.Name, cfg.Marker.Name}
	if w.Seed != nil {
		names = append(names, cfg.Seed.Name)
	}
	if err := w.Scene.RequireUnique(names...); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	w.Colliders = physics.NewColliders(w.Scene)
	w.Apply()
	return w, nil
}

// LoadRenderers attaches meshes to the scene. With a scenery model configured,
// the model replaces the generated box and the scenery collider is refitted to
// the model bounds. Requires a window.
func (w *World) LoadRenderers() error {
	cfg := w.cfg

	if cfg.Scenery.Model != "" {
		model, err := assets.LoadModel(cfg.Scenery.Model)
		if err != nil {
			return fmt.Errorf("load scenery: %w", err)
		}
		if box := engine.GetComponent[*components.BoxCollider](w.Scenery); box != nil {
			fitted := components.NewBoxColliderFromBounds(rl.GetModelBoundingBox(model))
			box.Size, box.Offset = fitted.Size, fitted.Offset
		}
		w.Scenery.AddComponent(components.NewSharedModelRenderer(model, assets.LookupColor(cfg.Scenery.Color)))
		w.log.Info().Str("model", cfg.Scenery.Model).Msg("scenery model loaded")
	} else {
		w.Scenery.AddComponent(components.NewBoxRenderer(vec3(cfg.Scenery.Size), assets.LookupColor(cfg.Scenery.Color)))
	}

	markerSize := rl.Vector3{X: cfg.Marker.Size, Y: cfg.Marker.Size, Z: cfg.Marker.Size}
	w.Marker.AddComponent(components.NewBoxRenderer(markerSize, assets.LookupColor(cfg.Marker.Color)))

	if w.Seed != nil {
		if mesh, ok := w.Seed.FindChild(SeedMeshName); ok {
			seedSize := rl.Vector3{X: cfg.Seed.Size, Y: cfg.Seed.Size, Z: cfg.Seed.Size}
			mesh.AddComponent(components.NewBoxRenderer(seedSize, assets.LookupColor(cfg.Seed.Color)))
		}
	}

	return nil
}

// Footprint returns the scenery collider's half extents on X and Z.
func (w *World) Footprint() rl.Vector2 {
	box := engine.GetComponent[*components.BoxCollider](w.Scenery)
	if box == nil {
		return rl.Vector2{}
	}
	b := box.LocalBounds()
	return rl.Vector2{
		X: max(-b.Min.X, b.Max.X),
		Y: max(-b.Min.Z, b.Max.Z),
	}
}

// Apply copies the store into the scene transforms: the scenery takes the
// fixed tilt composed with the current yaw, the marker its local position.
func (w *World) Apply() {
	yaw := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, w.Store.Rotation())
	w.Scenery.Transform.Rotation = rl.QuaternionMultiply(w.tilt, yaw)
	w.Marker.Transform.Position = w.Store.Marker()
}

func (w *World) Draw(showColliders bool) {
	for _, g := range w.Scene.GameObjects {
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawable); ok {
				d.Draw()
			}
		}
	}
	if !showColliders {
		return
	}
	for _, g := range w.Colliders.Objects {
		if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
			box.DrawWireframe(rl.Lime)
		}
	}
}

func (w *World) Unload() {
	for _, g := range w.Scene.GameObjects {
		if r := engine.GetComponent[*components.ModelRenderer](g); r != nil {
			r.Unload()
		}
	}
	assets.Unload()
}
