// Package input turns pointer activity into scene intents: taps that move the
// marker or hit the seed, and drags that rotate the scenery.
package input

import (
	"cubeview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultTapSlop is how far, in pixels, a press may wander and still count as a tap.
const DefaultTapSlop float32 = 10

type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// DragEvent carries the translation from the press point to the current pointer.
type DragEvent struct {
	Phase       Phase
	Translation rl.Vector2
}

// PointerTracker recognizes taps and drags from one pointer sampled once per frame.
type PointerTracker struct {
	TapSlop float32

	Tap  engine.EventWithArg[rl.Vector2]
	Drag engine.EventWithArg[DragEvent]

	down     bool
	dragging bool
	origin   rl.Vector2
	last     rl.Vector2
}

func NewPointerTracker(slop float32) *PointerTracker {
	if slop <= 0 {
		slop = DefaultTapSlop
	}
	return &PointerTracker{TapSlop: slop}
}

// Update feeds the pointer position and button state for the current frame.
func (p *PointerTracker) Update(pos rl.Vector2, down bool) {
	switch {
	case down && !p.down:
		p.down = true
		p.dragging = false
		p.origin = pos
		p.last = pos

	case down:
		if !p.dragging {
			if rl.Vector2Distance(pos, p.origin) > p.TapSlop {
				p.dragging = true
				p.Drag.Invoke(DragEvent{Phase: PhaseBegan, Translation: rl.Vector2Subtract(pos, p.origin)})
			}
		} else if pos != p.last {
			p.Drag.Invoke(DragEvent{Phase: PhaseChanged, Translation: rl.Vector2Subtract(pos, p.origin)})
		}
		p.last = pos

	case p.down:
		p.down = false
		if p.dragging {
			p.dragging = false
			p.Drag.Invoke(DragEvent{Phase: PhaseEnded, Translation: rl.Vector2Subtract(pos, p.origin)})
			return
		}
		p.Tap.Invoke(pos)
	}
}

// Dragging reports whether a drag gesture is in progress.
func (p *PointerTracker) Dragging() bool {
	return p.dragging
}

// Pressed reports whether the pointer is currently held down.
func (p *PointerTracker) Pressed() bool {
	return p.down
}
