package engine

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components.
// It reserves an entity ID upfront; an allocation failure is held and reported by Build().
//
// Example usage:
//
//	entity, err := engine.With(
//	    engine.With(reg.NewEntity(), positions, Position{X: 10, Y: 5}),
//	    drawables, Drawable{Symbol: 'o'},
//	).Build()
type EntityBuilder struct {
	registry *Registry
	entity   Entity
	err      error
	built    bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID.
func (r *Registry) NewEntity() *EntityBuilder {
	e, err := r.CreateEntity()
	return &EntityBuilder{
		registry: r,
		entity:   e,
		err:      err,
	}
}

// With adds a component of type T to the entity being built.
// The store type must match the component type at compile time.
// Does nothing if the ID could not be reserved; panics if called after Build().
//
// Example:
//
//	engine.With(builder, drawables, Drawable{Symbol: 'O'})
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	if eb.err != nil {
		return eb
	}
	store.Set(eb.entity, component)
	return eb
}

// Build finalizes entity construction and returns the entity ID.
// Returns the reservation error, if any, and no entity.
func (eb *EntityBuilder) Build() (Entity, error) {
	eb.built = true
	if eb.err != nil {
		return 0, eb.err
	}
	return eb.entity, nil
}
