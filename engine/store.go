package engine

import (
	"reflect"

	"github.com/bits-and-blooms/bitset"
)

// Store is a generic container for a specific component type T
// Values are indexed directly by entity id; presence is tracked in a parallel bitset
// Both are allocated once at capacity and never resized, so scans stay valid while other stores are read
type Store[T any] struct {
	name    string
	values  []T
	present *bitset.BitSet
}

// NewStore creates a component store for ids in [0, capacity)
// An empty name defaults to the component type's name
func NewStore[T any](name string, capacity int) *Store[T] {
	if capacity <= 0 {
		violation("store capacity %d", capacity)
	}
	if name == "" {
		name = reflect.TypeFor[T]().String()
	}
	return &Store[T]{
		name:    name,
		values:  make([]T, capacity),
		present: bitset.New(uint(capacity)),
	}
}

func (s *Store[T]) check(op string, e Entity) {
	if int(e) >= len(s.values) {
		violation("%s %s entity %d: out of range [0, %d)", s.name, op, e, len(s.values))
	}
}

// Set inserts or overwrites the component for an entity
func (s *Store[T]) Set(e Entity, val T) {
	s.check("set", e)
	s.values[e] = val
	s.present.Set(uint(e))
}

// Get retrieves the component for an entity, false when absent
func (s *Store[T]) Get(e Entity) (T, bool) {
	s.check("get", e)
	if !s.present.Test(uint(e)) {
		var zero T
		return zero, false
	}
	return s.values[e], true
}

// Ptr returns a pointer to the stored component for in-place mutation, nil when absent
// The pointer stays valid until the component is cleared
func (s *Store[T]) Ptr(e Entity) *T {
	s.check("ptr", e)
	if !s.present.Test(uint(e)) {
		return nil
	}
	return &s.values[e]
}

// Has checks if entity has this component
func (s *Store[T]) Has(e Entity) bool {
	s.check("has", e)
	return s.present.Test(uint(e))
}

// Clear removes the component from an entity; clearing an absent component is a no-op
func (s *Store[T]) Clear(e Entity) {
	s.check("clear", e)
	if !s.present.Test(uint(e)) {
		return
	}
	s.present.Clear(uint(e))
	var zero T
	s.values[e] = zero
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return int(s.present.Count())
}

// All returns all entities with this component in ascending order
func (s *Store[T]) All() []Entity {
	result := make([]Entity, 0, s.Count())
	for i, ok := s.present.NextSet(0); ok; i, ok = s.present.NextSet(i + 1) {
		result = append(result, Entity(i))
	}
	return result
}

// Reset removes every component from this store
func (s *Store[T]) Reset() {
	s.present.ClearAll()
	clear(s.values)
}

// Name returns the store's registered name
func (s *Store[T]) Name() string {
	return s.name
}

// Capacity returns the number of addressable entity slots
func (s *Store[T]) Capacity() int {
	return len(s.values)
}

// Bits exposes the presence set for query intersection; callers must not modify it
func (s *Store[T]) Bits() *bitset.BitSet {
	return s.present
}
