package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerTrackerTap(t *testing.T) {
	p := NewPointerTracker(0)
	var taps []rl.Vector2
	var drags []DragEvent
	p.Tap.AddListener(func(v rl.Vector2) { taps = append(taps, v) })
	p.Drag.AddListener(func(e DragEvent) { drags = append(drags, e) })

	p.Update(rl.Vector2{X: 100, Y: 100}, false)
	p.Update(rl.Vector2{X: 100, Y: 100}, true)
	p.Update(rl.Vector2{X: 104, Y: 103}, true)
	p.Update(rl.Vector2{X: 104, Y: 103}, false)

	require.Len(t, taps, 1)
	assert.Equal(t, rl.Vector2{X: 104, Y: 103}, taps[0])
	assert.Empty(t, drags)
}

func TestPointerTrackerDrag(t *testing.T) {
	p := NewPointerTracker(10)
	var taps int
	var drags []DragEvent
	p.Tap.AddListener(func(rl.Vector2) { taps++ })
	p.Drag.AddListener(func(e DragEvent) { drags = append(drags, e) })

	p.Update(rl.Vector2{X: 100, Y: 100}, true)
	p.Update(rl.Vector2{X: 120, Y: 101}, true)
	assert.True(t, p.Dragging())
	p.Update(rl.Vector2{X: 120, Y: 101}, true)
	p.Update(rl.Vector2{X: 150, Y: 95}, true)
	p.Update(rl.Vector2{X: 150, Y: 95}, false)

	assert.Zero(t, taps)
	require.Len(t, drags, 3)
	assert.Equal(t, PhaseBegan, drags[0].Phase)
	assert.Equal(t, rl.Vector2{X: 20, Y: 1}, drags[0].Translation)
	assert.Equal(t, PhaseChanged, drags[1].Phase)
	assert.Equal(t, PhaseEnded, drags[2].Phase)
	assert.Equal(t, rl.Vector2{X: 50, Y: -5}, drags[2].Translation)
	assert.False(t, p.Dragging())
}

func TestPointerTrackerReleaseWithoutPress(t *testing.T) {
	p := NewPointerTracker(10)
	fired := false
	p.Tap.AddListener(func(rl.Vector2) { fired = true })
	p.Update(rl.Vector2{}, false)
	p.Update(rl.Vector2{}, false)
	assert.False(t, fired)
}
