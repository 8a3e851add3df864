package anim

import (
	"cubeview/internal/engine"

	"github.com/chewxy/math32"
)

// DefaultAngleStep is the per-tick rotation increment in radians.
const DefaultAngleStep float32 = 0.05

// AngleAnimator moves an angle toward a target by a fixed step per tick.
// It never writes state itself: each new value is published on Changed and
// the owner of the angle applies it.
type AngleAnimator struct {
	Changed engine.EventWithArg[float32]

	// ShortestPath wraps the remaining distance into (-π, π] so a request
	// three quarters of a turn away takes the short way round.
	ShortestPath bool

	step      float32
	current   func() float32
	target    float32
	hasTarget bool
	sched     *Scheduler
}

// NewAngleAnimator reads the authoritative angle through current.
func NewAngleAnimator(sched *Scheduler, step float32, current func() float32) *AngleAnimator {
	if step <= 0 {
		step = DefaultAngleStep
	}
	return &AngleAnimator{
		step:    step,
		current: current,
		sched:   sched,
	}
}

// StartRotation sets the target angle. A run already in flight keeps going
// toward the new target.
func (a *AngleAnimator) StartRotation(target float32) {
	a.target = target
	a.hasTarget = true
	a.sched.Start(a)
}

// Target returns the in-flight target, if any.
func (a *AngleAnimator) Target() (float32, bool) {
	return a.target, a.hasTarget
}

func (a *AngleAnimator) Running() bool {
	return a.sched.Running(a)
}

func (a *AngleAnimator) Tick() bool {
	if !a.hasTarget {
		return true
	}

	cur := a.current()
	diff := a.target - cur
	if a.ShortestPath {
		diff = wrapAngle(diff)
	}

	if math32.Abs(diff) < a.step {
		a.hasTarget = false
		if a.ShortestPath {
			a.Changed.Invoke(cur + diff)
		} else {
			a.Changed.Invoke(a.target)
		}
	} else if diff > 0 {
		a.Changed.Invoke(cur + a.step)
	} else {
		a.Changed.Invoke(cur - a.step)
	}

	// A listener may have issued a new target while handling the value.
	return !a.hasTarget
}

func (a *AngleAnimator) Snap() {
	if !a.hasTarget {
		return
	}
	a.hasTarget = false
	a.Changed.Invoke(a.target)
}

// wrapAngle maps d into (-π, π].
func wrapAngle(d float32) float32 {
	d = math32.Mod(d+math32.Pi, 2*math32.Pi)
	if d <= 0 {
		d += 2 * math32.Pi
	}
	return d - math32.Pi
}
