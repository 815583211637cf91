package engine

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/rotisserie/eris"
)

// Entity is an opaque identifier and the index into every component store
// Identifiers are recycled after destruction; equality is by raw value
type Entity uint32

// Handle pairs an entity with the generation it was issued under
// A handle whose generation no longer matches resolves to absent instead of aliasing the reused id
type Handle struct {
	ID         Entity
	Generation uint32
}

// EntityAllocator issues and recycles entity identifiers below a fixed capacity
type EntityAllocator struct {
	nextID      Entity
	free        []Entity // LIFO stack of destroyed ids
	alive       *bitset.BitSet
	generations []uint32
	capacity    int
}

// NewEntityAllocator creates an allocator for identifiers in [0, capacity)
func NewEntityAllocator(capacity int) *EntityAllocator {
	if capacity <= 0 {
		violation("allocator capacity %d", capacity)
	}
	return &EntityAllocator{
		free:        make([]Entity, 0, capacity),
		alive:       bitset.New(uint(capacity)),
		generations: make([]uint32, capacity),
		capacity:    capacity,
	}
}

// Create pops a recycled identifier, or issues the next never-used one
// Returns ErrCapacityExhausted without touching state when neither is available
func (a *EntityAllocator) Create() (Entity, error) {
	if n := len(a.free); n > 0 {
		e := a.free[n-1]
		a.free = a.free[:n-1]
		a.alive.Set(uint(e))
		return e, nil
	}

	if int(a.nextID) >= a.capacity {
		return 0, eris.Wrapf(ErrCapacityExhausted, "create entity: %d of %d live", a.Live(), a.capacity)
	}

	e := a.nextID
	a.nextID++
	a.alive.Set(uint(e))
	return e, nil
}

// Destroy releases a live identifier to the free list and bumps its generation
// Panics on double destroy or on an identifier that was never issued
func (a *EntityAllocator) Destroy(e Entity) {
	if !a.Alive(e) {
		violation("destroy entity %d: not alive", e)
	}
	a.alive.Clear(uint(e))
	a.generations[e]++
	a.free = append(a.free, e)
}

// Alive reports whether e is currently issued
func (a *EntityAllocator) Alive(e Entity) bool {
	return int(e) < a.capacity && a.alive.Test(uint(e))
}

// Generation returns the number of times e has been destroyed
func (a *EntityAllocator) Generation(e Entity) uint32 {
	if int(e) >= a.capacity {
		violation("generation of entity %d: out of range [0, %d)", e, a.capacity)
	}
	return a.generations[e]
}

// Live returns the number of live identifiers
func (a *EntityAllocator) Live() int {
	return int(a.alive.Count())
}

// Capacity returns the fixed upper bound on identifiers
func (a *EntityAllocator) Capacity() int {
	return a.capacity
}

// Reset forgets every issued identifier; generations are kept so old handles stay stale
func (a *EntityAllocator) Reset() {
	for i, ok := a.alive.NextSet(0); ok; i, ok = a.alive.NextSet(i + 1) {
		a.generations[i]++
	}
	a.nextID = 0
	a.free = a.free[:0]
	a.alive.ClearAll()
}
