package input

import (
	"cubeview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// DefaultMaxDistance bounds the tap ray.
const DefaultMaxDistance float32 = 1000

type TapKind int

const (
	TapNone TapKind = iota
	TapScenery
	TapTarget
)

func (k TapKind) String() string {
	switch k {
	case TapScenery:
		return "scenery"
	case TapTarget:
		return "target"
	}
	return "none"
}

// TapResult describes what a tap resolved to.
type TapResult struct {
	Kind   TapKind
	Object *engine.GameObject
	// World is the hit point in world space.
	World rl.Vector3
	// Local is the hit point in the scenery's frame; set for TapScenery.
	Local rl.Vector3
}

// RayCaster builds a world ray through a screen point.
type RayCaster interface {
	ScreenRay(screen rl.Vector2) rl.Ray
}

type MapperConfig struct {
	// TargetPath is the child index chain from the seed root to the node that
	// identifies the seed for classification.
	TargetPath []int
	// Footprint returns the half extents move targets are clamped to on X and
	// Z. It is read on every tap so it follows a refitted scenery collider.
	// Nil, or a zero component, disables clamping on that axis.
	Footprint   func() rl.Vector2
	MaxDistance float32
}

// InputMapper maps taps to scenery-local move requests or seed taps.
type InputMapper struct {
	Move         engine.EventWithArg[rl.Vector3]
	TargetTapped engine.EventWithArg[*engine.GameObject]

	cfg     MapperConfig
	caster  RayCaster
	world   engine.Raycaster
	scenery *engine.GameObject
	seed    *engine.GameObject
	log     zerolog.Logger
}

// NewInputMapper wires the mapper to the scene. seed may be nil when the scene has none.
func NewInputMapper(cfg MapperConfig, caster RayCaster, world engine.Raycaster, scenery, seed *engine.GameObject, log zerolog.Logger) *InputMapper {
	if cfg.MaxDistance <= 0 {
		cfg.MaxDistance = DefaultMaxDistance
	}
	return &InputMapper{
		cfg:     cfg,
		caster:  caster,
		world:   world,
		scenery: scenery,
		seed:    seed,
		log:     log.With().Str("component", "input").Logger(),
	}
}

// HandleTap runs the hit query for a screen point and dispatches the result.
func (m *InputMapper) HandleTap(screen rl.Vector2) TapResult {
	if m.scenery == nil {
		return TapResult{}
	}
	ray := m.caster.ScreenRay(screen)
	hit, ok := m.world.Raycast(ray, m.cfg.MaxDistance)
	if !ok || hit.GameObject == nil {
		return TapResult{}
	}
	return m.Classify(hit)
}

// Classify resolves a hit without casting. Exposed so callers holding a hit
// from elsewhere get the same handling.
func (m *InputMapper) Classify(hit engine.RaycastResult) TapResult {
	touched := hit.GameObject
	res := TapResult{Object: touched, World: hit.Point}

	if touched.Name == m.scenery.Name {
		res.Kind = TapScenery
		res.Local = m.clamp(m.scenery.ToLocal(hit.Point))
		m.log.Debug().
			Str("object", touched.Name).
			Float32("x", res.Local.X).Float32("y", res.Local.Y).Float32("z", res.Local.Z).
			Msg("scenery tapped")
		m.Move.Invoke(res.Local)
		return res
	}

	if target, ok := m.target(); ok && touched.IsOrDescendsFrom(target) {
		res.Kind = TapTarget
		m.log.Info().Str("object", touched.Name).Msg("seed tapped")
		m.TargetTapped.Invoke(touched)
		return res
	}

	return res
}

// target resolves the seed identity, skipping classification if the hierarchy
// does not have the expected shape.
func (m *InputMapper) target() (*engine.GameObject, bool) {
	if m.seed == nil {
		return nil, false
	}
	target, ok := m.seed.ChildAt(m.cfg.TargetPath...)
	if !ok {
		m.log.Debug().Str("seed", m.seed.Name).Ints("path", m.cfg.TargetPath).Msg("seed hierarchy missing expected child, skipping")
		return nil, false
	}
	return target, true
}

func (m *InputMapper) clamp(p rl.Vector3) rl.Vector3 {
	if m.cfg.Footprint == nil {
		return p
	}
	fp := m.cfg.Footprint()
	if fp.X > 0 {
		p.X = rl.Clamp(p.X, -fp.X, fp.X)
	}
	if fp.Y > 0 {
		p.Z = rl.Clamp(p.Z, -fp.Y, fp.Y)
	}
	return p
}
