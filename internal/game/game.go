package game

import (
	"fmt"

	"cubeview/internal/anim"
	"cubeview/internal/camera"
	"cubeview/internal/config"
	"cubeview/internal/engine"
	"cubeview/internal/input"
	"cubeview/internal/physics"
	"cubeview/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

type Game struct {
	World     *world.World
	Camera    *camera.Viewer
	Scheduler *anim.Scheduler
	Angle     *anim.AngleAnimator
	Move      *anim.PositionAnimator
	Pointer   *input.PointerTracker
	Mapper    *input.InputMapper
	Router    *input.GestureRouter
	Contacts  *physics.ContactMonitor

	ShowPhysics bool
	SeedTaps    int
	LastTap     input.TapResult

	cfg *config.Config
	hud *hud
	log zerolog.Logger
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// New builds the scene and wires input, animation and state. No window is
// needed until Run.
func New(cfg *config.Config, log zerolog.Logger) (*Game, error) {
	strategy, err := input.ParseStrategy(cfg.Gesture.Strategy)
	if err != nil {
		return nil, err
	}

	w, err := world.New(cfg, log)
	if err != nil {
		return nil, err
	}

	g := &Game{
		World:       w,
		ShowPhysics: cfg.Debug.ShowPhysics,
		cfg:         cfg,
		hud:         newHUD(),
		log:         log,
	}

	g.Camera = camera.New(vec3(cfg.Camera.Position), vec3(cfg.Camera.Target), cfg.Camera.Fovy)
	g.Camera.Width, g.Camera.Height = cfg.Window.Width, cfg.Window.Height

	g.Scheduler = anim.NewScheduler(log)
	g.Scheduler.MaxTicks = cfg.Anim.MaxTicks

	store := w.Store
	g.Angle = anim.NewAngleAnimator(g.Scheduler, cfg.Anim.AngleStep, store.Rotation)
	g.Angle.ShortestPath = cfg.Anim.ShortestPath
	g.Angle.Changed.AddListener(store.SetRotation)

	g.Move = anim.NewPositionAnimator(g.Scheduler, vec3(cfg.Anim.MoveStep), store.Marker)
	g.Move.Changed.AddListener(store.SetMarker)

	g.Router = input.NewGestureRouter(input.RouterConfig{
		Strategy:    strategy,
		MaxVertical: cfg.Gesture.MaxVertical,
	}, store.Rotation, g.Angle, log)
	g.Router.RotationSet.AddListener(store.SetRotation)

	mapperCfg := input.MapperConfig{TargetPath: cfg.Seed.TargetPath}
	if cfg.Marker.ClampToFloor {
		mapperCfg.Footprint = w.Footprint
	}
	g.Mapper = input.NewInputMapper(mapperCfg, g.Camera, w.Colliders, w.Scenery, w.Seed, log)
	g.Mapper.Move.AddListener(g.Move.StartMove)
	g.Mapper.TargetTapped.AddListener(func(*engine.GameObject) { g.SeedTaps++ })

	g.Pointer = input.NewPointerTracker(cfg.Gesture.TapSlop)
	g.Pointer.Tap.AddListener(func(p rl.Vector2) { g.LastTap = g.Mapper.HandleTap(p) })
	g.Pointer.Drag.AddListener(g.Router.HandleDrag)

	g.Contacts = physics.NewContactMonitor()
	if w.Seed != nil {
		if mesh, ok := w.Seed.FindChild(world.SeedMeshName); ok {
			g.Contacts.Watch(w.Marker, mesh)
		}
	}
	if cfg.Debug.LogContacts {
		clog := log.With().Str("component", "contacts").Logger()
		g.Contacts.Events.AddListener(func(c physics.Contact) {
			ev := clog.Debug()
			if c.Phase != physics.ContactUpdated {
				ev = clog.Info()
			}
			ev.Str("a", c.A.Name).Str("b", c.B.Name).Stringer("phase", c.Phase).
				Float32("penetration", c.Penetration).Msg("contact")
		})
	}

	return g, nil
}

// Step runs one frame of logic: input, animation, transforms, contacts.
func (g *Game) Step(pointer rl.Vector2, down bool) {
	g.Pointer.Update(pointer, down)
	g.Scheduler.Tick()
	g.World.Apply()
	g.Contacts.Update()
}

// Reset puts the rotation and marker back to their configured start values.
// In continuous mode the router is the only writer of the rotation, so the
// angle is set directly instead of animated.
func (g *Game) Reset() {
	if g.Router.Strategy() == input.StrategyContinuous {
		g.World.Store.SetRotation(g.cfg.Scenery.InitialAngle)
	} else {
		g.Angle.StartRotation(g.cfg.Scenery.InitialAngle)
	}
	g.Move.StartMove(vec3(g.cfg.Marker.Position))
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.cfg.Window.Width, g.cfg.Window.Height, g.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.cfg.Window.TargetFPS)

	if err := g.World.LoadRenderers(); err != nil {
		return fmt.Errorf("initialize world: %w", err)
	}
	defer g.World.Unload()

	g.hud.init()
	g.log.Info().
		Stringer("strategy", g.Router.Strategy()).
		Float32("angle", g.World.Store.Rotation()).
		Msg("viewer started")

	for !rl.WindowShouldClose() {
		g.Camera.Width, g.Camera.Height = int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

		pos, down := pollPointer()
		// Presses that start on the HUD belong to raygui.
		if down && !g.Pointer.Pressed() && g.hud.captures(pos) {
			down = false
		}
		g.Step(pos, down)

		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			g.Camera.Zoom(wheel*0.1, 0.3)
		}
		if rl.IsKeyPressed(rl.KeyR) {
			g.Reset()
		}

		g.Draw()
	}
	return nil
}

func pollPointer() (rl.Vector2, bool) {
	if rl.GetTouchPointCount() > 0 {
		return rl.GetTouchPosition(0), true
	}
	return rl.GetMousePosition(), rl.IsMouseButtonDown(rl.MouseButtonLeft)
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(g.Camera.GetRaylibCamera())
	g.World.Draw(g.ShowPhysics)
	rl.EndMode3D()

	g.hud.draw(g)
	rl.EndDrawing()
}
