package input

import (
	"fmt"
	"strings"

	"cubeview/internal/engine"

	"github.com/chewxy/math32"
	"github.com/rs/zerolog"
)

// Strategy selects how a horizontal drag turns into rotation.
type Strategy int

const (
	// StrategySnap requests a quarter turn from the animator when the drag ends.
	StrategySnap Strategy = iota
	// StrategyContinuous rotates directly with the pointer while dragging.
	StrategyContinuous
)

func (s Strategy) String() string {
	switch s {
	case StrategySnap:
		return "snap"
	case StrategyContinuous:
		return "continuous"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "snap":
		return StrategySnap, nil
	case "continuous":
		return StrategyContinuous, nil
	}
	return StrategySnap, fmt.Errorf("unknown gesture strategy %q", name)
}

// QuarterTurn is the rotation requested by one snap gesture.
const QuarterTurn = math32.Pi / 2

// ContinuousDivisor scales pointer pixels (read as degrees) down to radians of rotation.
const ContinuousDivisor float32 = 10

// RotationRequester is satisfied by anim.AngleAnimator.
type RotationRequester interface {
	StartRotation(target float32)
}

type RouterConfig struct {
	Strategy Strategy
	// MaxVertical ignores snap gestures whose vertical travel exceeds it. Zero disables the gate.
	MaxVertical float32
}

// GestureRouter is the single owner of drag-to-rotation behaviour. Exactly one
// strategy drives the rotation for the lifetime of a router.
type GestureRouter struct {
	// RotationSet publishes directly manipulated angles in continuous mode.
	RotationSet engine.EventWithArg[float32]

	cfg     RouterConfig
	current func() float32
	rotator RotationRequester
	last    float32
	log     zerolog.Logger
}

func NewGestureRouter(cfg RouterConfig, current func() float32, rotator RotationRequester, log zerolog.Logger) *GestureRouter {
	return &GestureRouter{
		cfg:     cfg,
		current: current,
		rotator: rotator,
		log:     log.With().Str("component", "gesture").Stringer("strategy", cfg.Strategy).Logger(),
	}
}

func (r *GestureRouter) Strategy() Strategy {
	return r.cfg.Strategy
}

func (r *GestureRouter) HandleDrag(e DragEvent) {
	switch r.cfg.Strategy {
	case StrategyContinuous:
		r.continuous(e)
	default:
		r.snap(e)
	}
}

func (r *GestureRouter) snap(e DragEvent) {
	if e.Phase != PhaseEnded || r.rotator == nil {
		return
	}
	if r.cfg.MaxVertical > 0 && math32.Abs(e.Translation.Y) > r.cfg.MaxVertical {
		r.log.Debug().Float32("dy", e.Translation.Y).Msg("drag too vertical, ignored")
		return
	}

	cur := r.current()
	target := cur - QuarterTurn
	if e.Translation.X > 0 {
		target = cur + QuarterTurn
	}
	r.log.Debug().Float32("dx", e.Translation.X).Float32("target", target).Msg("snap rotation")
	r.rotator.StartRotation(target)
}

func (r *GestureRouter) continuous(e DragEvent) {
	if e.Phase == PhaseEnded {
		r.last = 0
		return
	}
	if e.Phase == PhaseBegan {
		r.last = 0
	}
	dx := e.Translation.X - r.last
	r.last = e.Translation.X
	if dx == 0 {
		return
	}
	delta := dx * math32.Pi / 180 / ContinuousDivisor
	r.RotationSet.Invoke(r.current() + delta)
}
