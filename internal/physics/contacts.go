package physics

import (
	"cubeview/internal/components"
	"cubeview/internal/engine"
)

type ContactPhase int

const (
	ContactBegan ContactPhase = iota
	ContactUpdated
	ContactEnded
)

func (p ContactPhase) String() string {
	switch p {
	case ContactBegan:
		return "began"
	case ContactUpdated:
		return "updated"
	case ContactEnded:
		return "ended"
	}
	return "unknown"
}

// Contact describes the overlap state of a watched pair for one frame.
type Contact struct {
	A, B        *engine.GameObject
	Phase       ContactPhase
	Penetration float32
}

// CollisionPair represents two objects that are watched for overlap
type CollisionPair struct {
	A, B *engine.GameObject
}

// ContactMonitor reports begin/update/end overlap notifications for registered
// pairs. It is diagnostic only and never moves anything.
type ContactMonitor struct {
	Events engine.EventWithArg[Contact]

	pairs  []CollisionPair
	active map[CollisionPair]bool
}

func NewContactMonitor() *ContactMonitor {
	return &ContactMonitor{
		active: make(map[CollisionPair]bool),
	}
}

// Watch registers a pair. Both objects need a BoxCollider to ever report contact.
func (m *ContactMonitor) Watch(a, b *engine.GameObject) {
	if a == nil || b == nil || a == b {
		return
	}
	pair := CollisionPair{A: a, B: b}
	for _, p := range m.pairs {
		if p == pair || p == (CollisionPair{A: b, B: a}) {
			return
		}
	}
	m.pairs = append(m.pairs, pair)
}

// Touching reports whether the pair overlapped on the last Update.
func (m *ContactMonitor) Touching(a, b *engine.GameObject) bool {
	return m.active[CollisionPair{A: a, B: b}] || m.active[CollisionPair{A: b, B: a}]
}

// Update compares the world bounds of each pair and fires phase transitions.
func (m *ContactMonitor) Update() {
	for _, p := range m.pairs {
		depth, overlapping := overlap(p.A, p.B)
		wasActive := m.active[p]

		switch {
		case overlapping && !wasActive:
			m.active[p] = true
			m.Events.Invoke(Contact{A: p.A, B: p.B, Phase: ContactBegan, Penetration: depth})
		case overlapping:
			m.Events.Invoke(Contact{A: p.A, B: p.B, Phase: ContactUpdated, Penetration: depth})
		case wasActive:
			delete(m.active, p)
			m.Events.Invoke(Contact{A: p.A, B: p.B, Phase: ContactEnded})
		}
	}
}

func overlap(a, b *engine.GameObject) (float32, bool) {
	if !a.Active || !b.Active {
		return 0, false
	}
	ca := engine.GetComponent[*components.BoxCollider](a)
	cb := engine.GetComponent[*components.BoxCollider](b)
	if ca == nil || cb == nil {
		return 0, false
	}
	boxA := NewAABBFromBounds(ca.WorldBounds())
	boxB := NewAABBFromBounds(cb.WorldBounds())
	if !boxA.Intersects(boxB) {
		return 0, false
	}
	return boxA.Penetration(boxB), true
}
