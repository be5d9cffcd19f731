package engine

import "github.com/lixenwraith/space-invaders/core"

// Store holds one component type keyed by entity
// Iteration follows insertion order and removal keeps the order of the rest,
// which fixes draw order and simulation order
// Not safe for concurrent use: only the frame loop touches stores
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates an empty store for T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Add inserts or replaces the component for e; replacing keeps e's position
func (s *Store[T]) Add(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get returns the component for e
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has reports whether e has a component in this store
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes e's component, reporting whether it was present
func (s *Store[T]) Remove(e core.Entity) bool {
	if _, exists := s.components[e]; !exists {
		return false
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
	return true
}

// RemoveBatch deletes several entities in one compaction pass
func (s *Store[T]) RemoveBatch(entities []core.Entity) int {
	if len(entities) == 0 || len(s.components) == 0 {
		return 0
	}

	removed := 0
	for _, e := range entities {
		if _, exists := s.components[e]; exists {
			delete(s.components, e)
			removed++
		}
	}
	if removed == 0 {
		return 0
	}

	kept := s.entities[:0]
	for _, e := range s.entities {
		if _, exists := s.components[e]; exists {
			kept = append(kept, e)
		}
	}
	clear(s.entities[len(kept):])
	s.entities = kept
	return removed
}

// All returns a snapshot of entities in insertion order
// Safe to range over while the store is mutated
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the number of entities in the store
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes every component
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}
