package component

import "github.com/lixenwraith/mecs/engine"

// FollowerComponent links a body segment to the entity it trails
// Chains must be acyclic: a segment never (transitively) follows itself
type FollowerComponent struct {
	Lead engine.Entity
}

// EdibleComponent marks food and what consuming it does
type EdibleComponent struct {
	Points int
	Grows  bool // Consumer gains a tail segment
	Resets bool // Food is re-placed instead of destroyed
}
