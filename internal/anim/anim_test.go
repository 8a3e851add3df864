package anim

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// angleRig owns the angle the way the world store does and applies published values.
type angleRig struct {
	sched *Scheduler
	anim  *AngleAnimator
	angle float32
	emits int
}

func newAngleRig(start float32) *angleRig {
	r := &angleRig{sched: NewScheduler(zerolog.Nop()), angle: start}
	r.anim = NewAngleAnimator(r.sched, DefaultAngleStep, func() float32 { return r.angle })
	r.anim.Changed.AddListener(func(v float32) {
		r.angle = v
		r.emits++
	})
	return r
}

// run ticks until the scheduler is idle and returns the tick count.
func run(t *testing.T, s *Scheduler, limit int) int {
	t.Helper()
	ticks := 0
	for s.Len() > 0 {
		require.Less(t, ticks, limit, "did not converge")
		s.Tick()
		ticks++
	}
	return ticks
}

func TestAngleAnimatorConvergesWithinBound(t *testing.T) {
	cases := []struct{ from, to float32 }{
		{0, math.Pi / 2},
		{5 * math.Pi / 4, 5*math.Pi/4 - math.Pi/2},
		{0, -3},
		{1, 1.02},
		{-2, 7.5},
	}
	for _, tc := range cases {
		r := newAngleRig(tc.from)
		r.anim.StartRotation(tc.to)

		bound := int(math.Ceil(math.Abs(float64(tc.to-tc.from))/float64(DefaultAngleStep))) + 1
		ticks := run(t, r.sched, bound+1)

		assert.LessOrEqual(t, ticks, bound, "from %v to %v", tc.from, tc.to)
		assert.Equal(t, tc.to, r.angle, "must land exactly on target")

		_, has := r.anim.Target()
		assert.False(t, has)
	}
}

func TestAngleAnimatorTicksAfterConvergenceAreNoops(t *testing.T) {
	r := newAngleRig(0)
	r.anim.StartRotation(0.2)
	run(t, r.sched, 100)
	emits := r.emits

	assert.True(t, r.anim.Tick())
	r.sched.Tick()
	assert.Equal(t, emits, r.emits)
	assert.Equal(t, float32(0.2), r.angle)
}

func TestAngleAnimatorCurrentAngleTerminatesInOneTick(t *testing.T) {
	r := newAngleRig(1.5)
	r.anim.StartRotation(1.5)
	assert.Equal(t, 1, run(t, r.sched, 2))
	assert.Equal(t, float32(1.5), r.angle)
}

func TestAngleAnimatorRestartKeepsSingleRun(t *testing.T) {
	r := newAngleRig(0)
	r.anim.StartRotation(1)
	r.sched.Tick()
	r.anim.StartRotation(-1)

	assert.Equal(t, 1, r.sched.Len())
	run(t, r.sched, 200)
	assert.Equal(t, float32(-1), r.angle, "final state is the second target")
}

func TestAngleAnimatorSequentialQuarterTurns(t *testing.T) {
	r := newAngleRig(math.Pi / 4)

	r.anim.StartRotation(r.angle + math.Pi/2)
	run(t, r.sched, 100)
	assert.InDelta(t, 3*math.Pi/4, r.angle, 1e-6)

	r.anim.StartRotation(r.angle - math.Pi/2)
	run(t, r.sched, 100)
	assert.InDelta(t, math.Pi/4, r.angle, 1e-6)
}

func TestAngleAnimatorShortestPath(t *testing.T) {
	r := newAngleRig(0)
	r.anim.ShortestPath = true
	r.anim.StartRotation(3 * math.Pi / 2)

	r.sched.Tick()
	assert.Less(t, r.angle, float32(0), "should turn backwards")

	ticks := run(t, r.sched, 100)
	assert.Less(t, ticks, 40)
	assert.InDelta(t, -math.Pi/2, r.angle, 1e-4)
}

func TestAngleAnimatorMonotonicByDefault(t *testing.T) {
	r := newAngleRig(0)
	r.anim.StartRotation(3 * math.Pi / 2)
	r.sched.Tick()
	assert.Greater(t, r.angle, float32(0))
}

func TestAngleAnimatorTickWithoutTarget(t *testing.T) {
	r := newAngleRig(0.3)
	assert.True(t, r.anim.Tick())
	assert.Zero(t, r.emits)
	r.anim.Snap()
	assert.Zero(t, r.emits)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, wrapAngle(3*math.Pi/2), 1e-5)
	assert.InDelta(t, math.Pi/2, wrapAngle(-3*math.Pi/2), 1e-5)
	assert.InDelta(t, 0, wrapAngle(4*math.Pi), 1e-5)
	assert.InDelta(t, math.Pi, wrapAngle(math.Pi), 1e-5)
}

type positionRig struct {
	sched *Scheduler
	anim  *PositionAnimator
	pos   rl.Vector3
	emits int
}

func newPositionRig(start rl.Vector3) *positionRig {
	r := &positionRig{sched: NewScheduler(zerolog.Nop()), pos: start}
	r.anim = NewPositionAnimator(r.sched, DefaultMoveStep, func() rl.Vector3 { return r.pos })
	r.anim.Changed.AddListener(func(v rl.Vector3) {
		r.pos = v
		r.emits++
	})
	return r
}

func TestPositionAnimatorConverges(t *testing.T) {
	start := rl.Vector3{X: 0, Y: 0, Z: 0.5}
	target := rl.Vector3{X: 0.2, Y: 0.1, Z: -0.3}
	r := newPositionRig(start)
	r.anim.StartMove(target)

	dist := rl.Vector3Distance(start, target)
	bound := int(math.Ceil(float64(dist/r.anim.StepLength()))) + 1
	ticks := run(t, r.sched, bound+1)

	assert.LessOrEqual(t, ticks, bound)
	assert.Equal(t, target, r.pos)
}

func TestPositionAnimatorMovesAlongStraightLine(t *testing.T) {
	r := newPositionRig(rl.Vector3{})
	r.anim.StartMove(rl.Vector3{X: 1})
	r.sched.Tick()

	assert.InDelta(t, r.anim.StepLength(), r.pos.X, 1e-6)
	assert.Zero(t, r.pos.Y)
	assert.Zero(t, r.pos.Z)
}

func TestPositionAnimatorAlreadyAtTarget(t *testing.T) {
	p := rl.Vector3{X: 0.1, Y: 0.2, Z: 0.3}
	r := newPositionRig(p)
	r.anim.StartMove(p)

	run(t, r.sched, 2)
	assert.Zero(t, r.emits, "no state change when starting at the target")
	assert.Equal(t, p, r.pos)
	assert.False(t, r.anim.Running())
}

func TestPositionAnimatorRedirect(t *testing.T) {
	r := newPositionRig(rl.Vector3{})
	t1 := rl.Vector3{X: 1}
	t2 := rl.Vector3{Z: -0.5}

	r.anim.StartMove(t1)
	for range 10 {
		r.sched.Tick()
	}
	r.anim.StartMove(t2)
	assert.Equal(t, 1, r.sched.Len())

	run(t, r.sched, 500)
	assert.Equal(t, t2, r.pos)
}

func TestPositionAnimatorZeroStepFallsBack(t *testing.T) {
	a := NewPositionAnimator(NewScheduler(zerolog.Nop()), rl.Vector3{}, func() rl.Vector3 { return rl.Vector3{} })
	assert.InDelta(t, rl.Vector3Length(DefaultMoveStep), a.StepLength(), 1e-7)
}

func TestSchedulerStartIsIdempotent(t *testing.T) {
	s := NewScheduler(zerolog.Nop())
	a := &countingAnim{remaining: 3}

	assert.True(t, s.Start(a))
	assert.False(t, s.Start(a))
	assert.Equal(t, 1, s.Len())

	for range 5 {
		s.Tick()
	}
	assert.Equal(t, 3, a.ticks, "one step per frame, removed on convergence")
	assert.False(t, s.Running(a))
}

func TestSchedulerSafetyBound(t *testing.T) {
	s := NewScheduler(zerolog.Nop())
	s.MaxTicks = 5
	a := &countingAnim{remaining: -1}
	s.Start(a)

	for range 10 {
		s.Tick()
	}
	assert.Equal(t, 5, a.ticks)
	assert.True(t, a.snapped)
	assert.Zero(t, s.Len())
}

func TestSchedulerRestartResetsBudget(t *testing.T) {
	s := NewScheduler(zerolog.Nop())
	s.MaxTicks = 5
	a := &countingAnim{remaining: -1}
	s.Start(a)

	for range 4 {
		s.Tick()
	}
	assert.False(t, s.Start(a), "already running")
	for range 4 {
		s.Tick()
	}
	assert.Equal(t, 8, a.ticks)
	assert.False(t, a.snapped, "each run stayed under the bound")
	assert.True(t, s.Running(a))

	s.Tick()
	assert.True(t, a.snapped)
	assert.Zero(t, s.Len())
}

func TestAngleAnimatorRetargetRestartsBudget(t *testing.T) {
	r := newAngleRig(0)
	r.sched.MaxTicks = 10

	// Keep chasing a target that moves away every few frames.
	for i := 1; i <= 5; i++ {
		r.anim.StartRotation(float32(i))
		for range 8 {
			r.sched.Tick()
		}
	}
	assert.True(t, r.anim.Running(), "no run exceeded the bound")
	assert.InDelta(t, 40*DefaultAngleStep, r.angle, 1e-4, "stepped every frame, never snapped")
}

func TestSchedulerStartDuringTick(t *testing.T) {
	s := NewScheduler(zerolog.Nop())
	late := &countingAnim{remaining: 1}
	first := &countingAnim{remaining: 1, onTick: func() { s.Start(late) }}
	s.Start(first)

	s.Tick()
	assert.Equal(t, 0, late.ticks, "started mid-tick waits for the next frame")
	assert.True(t, s.Running(late))

	s.Tick()
	assert.Equal(t, 1, late.ticks)
	assert.Zero(t, s.Len())
}

type countingAnim struct {
	remaining int
	ticks     int
	snapped   bool
	onTick    func()
}

func (c *countingAnim) Tick() bool {
	c.ticks++
	if c.onTick != nil {
		c.onTick()
	}
	if c.remaining < 0 {
		return false
	}
	c.remaining--
	return c.remaining <= 0
}

func (c *countingAnim) Snap() { c.snapped = true }
