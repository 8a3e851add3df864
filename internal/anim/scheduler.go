// Package anim drives values toward targets once per frame.
//
// A single Scheduler owns every running animation. The frame loop calls
// Scheduler.Tick once per frame; each animation steps exactly once and is
// dropped from the active set as soon as it reports convergence.
package anim

import (
	"github.com/rs/zerolog"
)

// DefaultMaxTicks caps a single run of an animation. Each Start begins a new run.
const DefaultMaxTicks = 10000

// Animation is stepped once per frame by the Scheduler.
type Animation interface {
	// Tick advances one step and reports whether the animation has converged.
	Tick() (done bool)
	// Snap jumps straight to the target and clears it.
	Snap()
}

type entry struct {
	anim  Animation
	ticks int
}

// Scheduler is not safe for concurrent use; it belongs to the frame loop.
type Scheduler struct {
	MaxTicks int

	active map[Animation]*entry
	order  []*entry
	log    zerolog.Logger
}

func NewScheduler(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		MaxTicks: DefaultMaxTicks,
		active:   make(map[Animation]*entry),
		log:      log.With().Str("component", "scheduler").Logger(),
	}
}

// Start registers a. It returns false if a was already running, in which case
// only its tick budget starts over.
func (s *Scheduler) Start(a Animation) bool {
	if e, running := s.active[a]; running {
		e.ticks = 0
		return false
	}
	e := &entry{anim: a}
	s.active[a] = e
	s.order = append(s.order, e)
	return true
}

func (s *Scheduler) Running(a Animation) bool {
	_, running := s.active[a]
	return running
}

// Len returns the number of running animations.
func (s *Scheduler) Len() int {
	return len(s.active)
}

// Tick steps each animation that was running when the tick began. Animations
// started by a listener during the tick are first stepped on the next one.
func (s *Scheduler) Tick() {
	if len(s.order) == 0 {
		return
	}
	current := s.order
	s.order = make([]*entry, 0, len(current))

	for _, e := range current {
		e.ticks++
		done := e.anim.Tick()
		if !done && s.MaxTicks > 0 && e.ticks >= s.MaxTicks {
			s.log.Warn().Int("ticks", e.ticks).Msg("animation did not converge, snapping to target")
			e.anim.Snap()
			done = true
		}
		if done {
			delete(s.active, e.anim)
			continue
		}
		s.order = append(s.order, e)
	}
}
