package anim

import (
	"cubeview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultMoveStep is the per-axis step of the original prototypes. Only its
// length is used: the marker moves along the straight line to the target.
var DefaultMoveStep = rl.Vector3{X: 0.015, Y: 0.015, Z: 0.015}

// PositionAnimator moves a point toward a target at constant speed.
type PositionAnimator struct {
	Changed engine.EventWithArg[rl.Vector3]

	stepLength float32
	current    func() rl.Vector3
	target     rl.Vector3
	hasTarget  bool
	sched      *Scheduler
}

func NewPositionAnimator(sched *Scheduler, step rl.Vector3, current func() rl.Vector3) *PositionAnimator {
	length := rl.Vector3Length(step)
	if length <= 0 {
		length = rl.Vector3Length(DefaultMoveStep)
	}
	return &PositionAnimator{
		stepLength: length,
		current:    current,
		sched:      sched,
	}
}

// StartMove sets the target position. A run already in flight keeps going
// toward the new target.
func (p *PositionAnimator) StartMove(target rl.Vector3) {
	p.target = target
	p.hasTarget = true
	p.sched.Start(p)
}

func (p *PositionAnimator) Target() (rl.Vector3, bool) {
	return p.target, p.hasTarget
}

func (p *PositionAnimator) Running() bool {
	return p.sched.Running(p)
}

// StepLength is the distance covered per tick.
func (p *PositionAnimator) StepLength() float32 {
	return p.stepLength
}

func (p *PositionAnimator) Tick() bool {
	if !p.hasTarget {
		return true
	}

	cur := p.current()
	diff := rl.Vector3Subtract(p.target, cur)
	dist := rl.Vector3Length(diff)

	switch {
	case dist == 0:
		// Already there; nothing to publish and nothing to normalize.
		p.hasTarget = false
	case dist < p.stepLength:
		p.hasTarget = false
		p.Changed.Invoke(p.target)
	default:
		p.Changed.Invoke(rl.Vector3Add(cur, rl.Vector3Scale(diff, p.stepLength/dist)))
	}

	return !p.hasTarget
}

func (p *PositionAnimator) Snap() {
	if !p.hasTarget {
		return
	}
	p.hasTarget = false
	p.Changed.Invoke(p.target)
}
