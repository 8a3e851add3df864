package engine

import "fmt"

// Scene is the flat registry of every object in the graph, in insertion order.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	known       map[uint64]bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:  name,
		known: make(map[uint64]bool),
	}
}

// AddGameObject registers g and every descendant already attached to it.
// Objects that are already registered are skipped.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.known == nil {
		s.known = make(map[uint64]bool)
	}
	if !s.known[g.UID] {
		g.Scene = s
		s.GameObjects = append(s.GameObjects, g)
		s.known[g.UID] = true
	}
	for _, c := range g.Children {
		s.AddGameObject(c)
	}
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// RequireUnique checks that each name is carried by exactly one object.
// Tap classification compares by name, so a duplicate would make it ambiguous.
func (s *Scene) RequireUnique(names ...string) error {
	for _, name := range names {
		count := 0
		for _, g := range s.GameObjects {
			if g.Name == name {
				count++
			}
		}
		switch count {
		case 0:
			return fmt.Errorf("scene %q: no object named %q", s.Name, name)
		case 1:
		default:
			return fmt.Errorf("scene %q: %d objects named %q", s.Name, count, name)
		}
	}
	return nil
}
