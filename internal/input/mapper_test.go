package input

import (
	"math"
	"testing"

	"cubeview/internal/components"
	"cubeview/internal/engine"
	"cubeview/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// topDown treats screen coordinates as world X/Z and casts straight down.
type topDown struct{}

func (topDown) ScreenRay(p rl.Vector2) rl.Ray {
	return rl.Ray{Position: rl.Vector3{X: p.X, Y: 10, Z: p.Y}, Direction: rl.Vector3{Y: -1}}
}

type fixture struct {
	scene   *engine.Scene
	scenery *engine.GameObject
	marker  *engine.GameObject
	seed    *engine.GameObject
	mesh    *engine.GameObject
}

func newFixture() *fixture {
	f := &fixture{scene: engine.NewScene("test")}

	f.scenery = engine.NewGameObject("scenery")
	f.scenery.Transform.Rotation = rl.QuaternionMultiply(
		rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, math.Pi/8),
		rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/3),
	)
	f.scenery.AddComponent(components.NewBoxCollider(rl.Vector3{X: 4, Y: 0.2, Z: 4}))

	f.marker = engine.NewGameObject("marker")
	f.marker.Transform.Position = rl.Vector3{X: 1.5, Y: 0.5, Z: 0}
	f.marker.AddComponent(components.NewBoxCollider(rl.Vector3{X: 0.2, Y: 0.2, Z: 0.2}))
	f.scenery.AddChild(f.marker)

	f.seed = engine.NewGameObject("seed")
	f.seed.Transform.Position = rl.Vector3{X: -1.5, Y: 0.5, Z: 0}
	model := engine.NewGameObject("seed_model")
	f.mesh = engine.NewGameObject("semente")
	f.mesh.AddComponent(components.NewBoxCollider(rl.Vector3{X: 0.3, Y: 0.3, Z: 0.3}))
	model.AddChild(f.mesh)
	f.seed.AddChild(model)
	f.scenery.AddChild(f.seed)

	f.scene.AddGameObject(f.scenery)
	return f
}

func (f *fixture) mapper(cfg MapperConfig) *InputMapper {
	return NewInputMapper(cfg, topDown{}, physics.NewColliders(f.scene), f.scenery, f.seed, zerolog.Nop())
}

func screenAbove(p rl.Vector3) rl.Vector2 {
	return rl.Vector2{X: p.X, Y: p.Z}
}

func TestMapperSceneryTapMovesInLocalFrame(t *testing.T) {
	f := newFixture()
	m := f.mapper(MapperConfig{TargetPath: []int{0, 0}})

	var moves []rl.Vector3
	m.Move.AddListener(func(p rl.Vector3) { moves = append(moves, p) })

	res := m.HandleTap(rl.Vector2{X: 0.2, Y: 0.3})

	require.Equal(t, TapScenery, res.Kind)
	require.Len(t, moves, 1)
	assert.Equal(t, res.Local, moves[0])
	assert.InDelta(t, 0.1, res.Local.Y, 1e-4, "hit lies on the scenery's top face")

	back := f.scenery.ToWorld(res.Local)
	assert.InDelta(t, 0, rl.Vector3Distance(back, res.World), 1e-4)
	assert.InDelta(t, 0.2, res.World.X, 1e-4)
	assert.InDelta(t, 0.3, res.World.Z, 1e-4)
}

func TestMapperNoHit(t *testing.T) {
	f := newFixture()
	m := f.mapper(MapperConfig{TargetPath: []int{0, 0}})

	fired := false
	m.Move.AddListener(func(rl.Vector3) { fired = true })
	m.TargetTapped.AddListener(func(*engine.GameObject) { fired = true })

	res := m.HandleTap(rl.Vector2{X: 50, Y: 50})
	assert.Equal(t, TapNone, res.Kind)
	assert.Nil(t, res.Object)
	assert.False(t, fired)
}

func TestMapperSeedTap(t *testing.T) {
	f := newFixture()
	m := f.mapper(MapperConfig{TargetPath: []int{0, 0}})

	var tapped *engine.GameObject
	m.TargetTapped.AddListener(func(g *engine.GameObject) { tapped = g })
	moved := false
	m.Move.AddListener(func(rl.Vector3) { moved = true })

	res := m.HandleTap(screenAbove(f.mesh.WorldPosition()))

	assert.Equal(t, TapTarget, res.Kind)
	assert.Same(t, f.mesh, tapped)
	assert.False(t, moved)
}

func TestMapperSeedMatchesAncestorOfHit(t *testing.T) {
	f := newFixture()
	m := f.mapper(MapperConfig{TargetPath: []int{0}})

	res := m.HandleTap(screenAbove(f.mesh.WorldPosition()))
	assert.Equal(t, TapTarget, res.Kind, "hit mesh descends from seed_model")
}

func TestMapperMalformedSeedSkips(t *testing.T) {
	f := newFixture()
	m := f.mapper(MapperConfig{TargetPath: []int{0, 3}})

	fired := false
	m.TargetTapped.AddListener(func(*engine.GameObject) { fired = true })

	var res TapResult
	require.NotPanics(t, func() {
		res = m.HandleTap(screenAbove(f.mesh.WorldPosition()))
	})
	assert.Equal(t, TapNone, res.Kind)
	assert.False(t, fired)
}

func TestMapperNilSeed(t *testing.T) {
	f := newFixture()
	m := NewInputMapper(MapperConfig{}, topDown{}, physics.NewColliders(f.scene), f.scenery, nil, zerolog.Nop())

	res := m.HandleTap(screenAbove(f.mesh.WorldPosition()))
	assert.Equal(t, TapNone, res.Kind)
}

func TestMapperMarkerTapIsNoop(t *testing.T) {
	f := newFixture()
	m := f.mapper(MapperConfig{TargetPath: []int{0, 0}})

	fired := false
	m.Move.AddListener(func(rl.Vector3) { fired = true })

	res := m.HandleTap(screenAbove(f.marker.WorldPosition()))
	assert.Equal(t, TapNone, res.Kind)
	assert.Same(t, f.marker, res.Object)
	assert.False(t, fired)
}

func TestMapperClampsToFootprint(t *testing.T) {
	f := newFixture()
	m := f.mapper(MapperConfig{Footprint: func() rl.Vector2 { return rl.Vector2{X: 0.1, Y: 0.1} }})

	hit := engine.RaycastResult{
		GameObject: f.scenery,
		Point:      f.scenery.ToWorld(rl.Vector3{X: 1.2, Y: 0.1, Z: -1.4}),
	}
	res := m.Classify(hit)

	require.Equal(t, TapScenery, res.Kind)
	assert.InDelta(t, 0.1, res.Local.X, 1e-5)
	assert.InDelta(t, -0.1, res.Local.Z, 1e-5)
	assert.InDelta(t, 0.1, res.Local.Y, 1e-4)
}

func TestMapperFootprintReadPerTap(t *testing.T) {
	f := newFixture()
	fp := rl.Vector2{X: 0.1, Y: 0.1}
	m := f.mapper(MapperConfig{Footprint: func() rl.Vector2 { return fp }})

	hit := engine.RaycastResult{
		GameObject: f.scenery,
		Point:      f.scenery.ToWorld(rl.Vector3{X: 1.2, Y: 0.1, Z: -1.4}),
	}
	res := m.Classify(hit)
	assert.InDelta(t, 0.1, res.Local.X, 1e-5)

	fp = rl.Vector2{X: 2, Y: 2}
	res = m.Classify(hit)
	assert.InDelta(t, 1.2, res.Local.X, 1e-4)
	assert.InDelta(t, -1.4, res.Local.Z, 1e-4)
}
