package engine

import "iter"

// QueryBuilder provides a fluent interface for querying entities based on component intersection.
// Iteration walks the presence bits of the smallest store and tests the remaining stores,
// so results always come out in ascending entity order regardless of store order.
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
}

// Query creates a new QueryBuilder for finding entities with specific component combinations.
// Use With() to add component filters, then Iter() or Execute() to get the results.
//
// Example:
//
//	for e := range reg.Query().With(positions).With(directions).Iter() {
//	    ...
//	}
func (r *Registry) Query() *QueryBuilder {
	return Query()
}

// Query creates a QueryBuilder over the given stores without going through a Registry
func Query(stores ...QueryableStore) *QueryBuilder {
	qb := &QueryBuilder{
		stores: make([]QueryableStore, 0, max(len(stores), 4)),
	}
	for _, s := range stores {
		qb.With(s)
	}
	return qb
}

// With adds a component store to the query filter.
// The resulting query will only return entities that have components in ALL specified stores.
// Returns the QueryBuilder for method chaining.
//
// Panics if called after Iter() or Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	if store == nil {
		violation("query with nil store")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Iter returns a lazy sequence of matching entities in ascending order.
// The sequence is restartable: every range re-scans current presence state.
// Values may be mutated and the current entity's components cleared while iterating;
// an entity cleared ahead of the cursor is not yielded.
func (qb *QueryBuilder) Iter() iter.Seq[Entity] {
	qb.executed = true
	stores := qb.stores

	return func(yield func(Entity) bool) {
		if len(stores) == 0 {
			return
		}

		// Lead with the smallest store to minimize Test() calls
		lead := 0
		for i := 1; i < len(stores); i++ {
			if stores[i].Count() < stores[lead].Count() {
				lead = i
			}
		}
		leadBits := stores[lead].Bits()

	scan:
		for i, ok := leadBits.NextSet(0); ok; i, ok = leadBits.NextSet(i + 1) {
			for j, s := range stores {
				if j != lead && !s.Bits().Test(i) {
					continue scan
				}
			}
			if !yield(Entity(i)) {
				return
			}
		}
	}
}

// Execute runs the query and returns a snapshot of all matching entities in ascending order.
//
// Returns:
//   - Empty slice if no stores were specified
//   - Slice of entities that exist in ALL specified stores
func (qb *QueryBuilder) Execute() []Entity {
	results := make([]Entity, 0)
	for e := range qb.Iter() {
		results = append(results, e)
	}
	return results
}

// Count returns the number of matching entities without materializing them
func (qb *QueryBuilder) Count() int {
	n := 0
	for range qb.Iter() {
		n++
	}
	return n
}

// Each1 calls fn with a pointer to the A component of every entity holding A, in ascending order
func Each1[A any](a *Store[A], fn func(e Entity, a *A)) {
	for e := range Query(a).Iter() {
		if pa := a.Ptr(e); pa != nil {
			fn(e, pa)
		}
	}
}

// Each2 calls fn for every entity holding both A and B, in ascending order
// Presence is re-checked before each call, so fn may clear components of later entities
func Each2[A, B any](a *Store[A], b *Store[B], fn func(e Entity, a *A, b *B)) {
	for e := range Query(a, b).Iter() {
		pa, pb := a.Ptr(e), b.Ptr(e)
		if pa == nil || pb == nil {
			continue
		}
		fn(e, pa, pb)
	}
}

// Each3 calls fn for every entity holding A, B and C, in ascending order
func Each3[A, B, C any](a *Store[A], b *Store[B], c *Store[C], fn func(e Entity, a *A, b *B, c *C)) {
	for e := range Query(a, b, c).Iter() {
		pa, pb, pc := a.Ptr(e), b.Ptr(e), c.Ptr(e)
		if pa == nil || pb == nil || pc == nil {
			continue
		}
		fn(e, pa, pb, pc)
	}
}
