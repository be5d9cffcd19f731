package engine

import "github.com/lixenwraith/space-invaders/core"

// EntityBuilder stages components for a reserved entity id and commits them in Build
// Nothing reaches the stores before Build, so a half-built entity is never observable
//
//	player := engine.With(
//		engine.With(w.NewEntity(), w.Bodies, body),
//		w.Motions, motion,
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	staged []func()
	built  bool
}

// NewEntity reserves an entity id and returns a builder for it
func (w *World) NewEntity() *EntityBuilder {
	w.nextEntity++
	return &EntityBuilder{
		world:  w,
		entity: w.nextEntity,
	}
}

// With stages component for store
// Panics if called after Build
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	e := eb.entity
	eb.staged = append(eb.staged, func() { store.Add(e, component) })
	return eb
}

// Entity returns the reserved id, valid before Build for cross references
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build commits every staged component in the order they were added
// Panics when called twice
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		panic("entity already built - Build() called twice")
	}
	eb.built = true
	for _, commit := range eb.staged {
		commit()
	}
	eb.staged = nil
	eb.world.alive[eb.entity] = struct{}{}
	return eb.entity
}
