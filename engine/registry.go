package engine

import (
	"io"
	"reflect"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
)

// Registry contains all entities and their components using typed stores
// It owns one allocator and one store per registered component type; it has no domain semantics
// Not safe for concurrent use: a single simulation loop owns it
type Registry struct {
	entities *EntityAllocator

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	stores []AnyStore
	byType map[reflect.Type]AnyStore

	log logrus.FieldLogger
}

// Option configures a Registry at construction
type Option func(*Registry)

// WithLogger routes registry diagnostics to l
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates a registry whose stores and allocator are sized by cfg.MaxEntities
// A non-positive MaxEntities falls back to DefaultMaxEntities
func NewRegistry(cfg Config, opts ...Option) *Registry {
	capacity := cfg.MaxEntities
	if capacity <= 0 {
		capacity = DefaultMaxEntities
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	r := &Registry{
		entities: NewEntityAllocator(capacity),
		stores:   make([]AnyStore, 0, 16),
		byType:   make(map[reflect.Type]AnyStore, 16),
		log:      discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register creates the store for component type T, or returns the existing one
// name is used for diagnostics; empty defaults to the type name
func Register[T any](r *Registry, name string) *Store[T] {
	t := reflect.TypeFor[T]()
	if existing, ok := r.byType[t]; ok {
		return existing.(*Store[T])
	}

	s := NewStore[T](name, r.Capacity())
	r.byType[t] = s
	r.stores = append(r.stores, s)
	r.log.WithFields(logrus.Fields{
		"store":    s.Name(),
		"capacity": r.Capacity(),
	}).Debug("component store registered")
	return s
}

// GetStore returns the store registered for T
// Panics if T was never registered
func GetStore[T any](r *Registry) *Store[T] {
	t := reflect.TypeFor[T]()
	s, ok := r.byType[t]
	if !ok {
		panic(eris.Wrapf(ErrNotRegistered, "store for %s", t))
	}
	return s.(*Store[T])
}

// Stores returns a copy of all registered stores in registration order
func (r *Registry) Stores() []AnyStore {
	result := make([]AnyStore, len(r.stores))
	copy(result, r.stores)
	return result
}

// CreateEntity reserves an entity ID without adding any components
// Fails with ErrCapacityExhausted when no identifier is available
func (r *Registry) CreateEntity() (Entity, error) {
	e, err := r.entities.Create()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"live":     r.entities.Live(),
			"capacity": r.Capacity(),
		}).Warn("entity allocation failed")
		return 0, err
	}
	return e, nil
}

// DestroyEntity removes all components associated with an entity, then recycles its ID
// Clearing happens first so a reissued ID never carries a previous occupant's components
// Panics if e is not alive
func (r *Registry) DestroyEntity(e Entity) {
	if !r.entities.Alive(e) {
		violation("destroy entity %d: not alive", e)
	}

	for _, store := range r.stores {
		store.Clear(e)
	}
	r.entities.Destroy(e)
}

// Alive reports whether e is currently issued
func (r *Registry) Alive(e Entity) bool {
	return r.entities.Alive(e)
}

// HasAnyComponent checks if an entity has at least one component
func (r *Registry) HasAnyComponent(e Entity) bool {
	for _, store := range r.stores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Handle captures e together with its current generation
func (r *Registry) Handle(e Entity) Handle {
	return Handle{ID: e, Generation: r.entities.Generation(e)}
}

// Resolve returns the entity behind h if it is still the same logical entity
// A destroyed or reused identifier resolves to absent
func (r *Registry) Resolve(h Handle) (Entity, bool) {
	if !r.entities.Alive(h.ID) || r.entities.Generation(h.ID) != h.Generation {
		return 0, false
	}
	return h.ID, true
}

// EntityCount returns the number of live entities
func (r *Registry) EntityCount() int {
	return r.entities.Live()
}

// Capacity returns the fixed upper bound on entity identifiers
func (r *Registry) Capacity() int {
	return r.entities.Capacity()
}

// Clear removes all entities and components from the registry
// Registered stores are kept
func (r *Registry) Clear() {
	for _, store := range r.stores {
		store.Reset()
	}
	r.entities.Reset()
	r.log.WithField("stores", len(r.stores)).Debug("registry cleared")
}
