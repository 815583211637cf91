package engine

import "github.com/bits-and-blooms/bitset"

// AnyStore provides type-erased operations for lifecycle management
// This interface allows Registry to manage all stores uniformly
// for operations like entity destruction without knowing the concrete type
type AnyStore interface {
	// Name returns the store's registered name
	Name() string

	// Has checks if an entity has this component
	Has(e Entity) bool

	// Clear removes the component from an entity
	Clear(e Entity)

	// Count returns the number of entities with this component
	Count() int

	// Reset removes all components from this store
	Reset()
}

// QueryableStore extends AnyStore with the presence set needed for
// the query builder to intersect component sets
type QueryableStore interface {
	AnyStore

	// Bits returns the read-only presence set indexed by entity id
	Bits() *bitset.BitSet
}

var _ QueryableStore = (*Store[struct{}])(nil)
