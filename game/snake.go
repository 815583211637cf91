package game

import (
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/mecs/engine"
)

// followerMap indexes (Position, Follower) entities by the entity they trail
func (w *World) followerMap() map[engine.Entity]engine.Entity {
	c := w.Component
	next := make(map[engine.Entity]engine.Entity)
	for e := range w.Query().With(c.Position).With(c.Follower).Iter() {
		f, _ := c.Follower.Get(e)
		next[f.Lead] = e
	}
	return next
}

// LastFollower returns the tail of the chain hanging off lead, or lead itself when nothing follows it
// Panics with engine.ErrPreconditionViolation if the chain loops
func (w *World) LastFollower(lead engine.Entity) engine.Entity {
	tail, _ := w.walkChain(lead)
	return tail
}

// walkChain follows lead's chain to its tail and counts the entities on it
func (w *World) walkChain(lead engine.Entity) (engine.Entity, int) {
	next := w.followerMap()

	current := lead
	for n := 1; ; n++ {
		f, ok := next[current]
		if !ok {
			return current, n
		}
		if n > w.Capacity() {
			panic(eris.Wrapf(engine.ErrPreconditionViolation, "follower chain from %d does not terminate", lead))
		}
		current = f
	}
}

// Grow appends a segment on top of the current tail of lead's chain
func (w *World) Grow(lead engine.Entity) error {
	tail := w.LastFollower(lead)
	pos, ok := w.Component.Position.Get(tail)
	if !ok {
		return eris.Errorf("grow: tail %d has no position", tail)
	}
	if _, err := w.CreateSnakeSegment(pos, tail); err != nil {
		return eris.Wrap(err, "grow")
	}
	return nil
}

// Length counts lead plus every entity transitively following it
// Panics like LastFollower if the chain loops
func (w *World) Length(lead engine.Entity) int {
	_, n := w.walkChain(lead)
	return n
}
