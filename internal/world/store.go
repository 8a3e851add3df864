package world

import (
	"cubeview/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Store is the single authoritative copy of the viewer state. Animators and
// gesture handlers publish values; the store applies them.
type Store struct {
	Changed engine.Event

	rotation float32
	marker   rl.Vector3
}

func NewStore(rotation float32, marker rl.Vector3) *Store {
	return &Store{rotation: rotation, marker: marker}
}

// Rotation is the scenery yaw in radians, accumulated without wrapping.
func (s *Store) Rotation() float32 {
	return s.rotation
}

func (s *Store) SetRotation(angle float32) {
	if angle == s.rotation {
		return
	}
	s.rotation = angle
	s.Changed.Invoke()
}

// Marker is the marker position in scenery-local space.
func (s *Store) Marker() rl.Vector3 {
	return s.marker
}

func (s *Store) SetMarker(p rl.Vector3) {
	if p == s.marker {
		return
	}
	s.marker = p
	s.Changed.Invoke()
}
