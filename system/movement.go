// Package system implements the snake rules as game.System values
package system

import (
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/mecs/engine"
	"github.com/lixenwraith/mecs/game"
	"github.com/lixenwraith/mecs/parameter"
)

// MovementSystem advances every directed entity one cell and drags its follower chain behind it
type MovementSystem struct {
	followers map[engine.Entity][]engine.Entity // lead -> entities trailing it, rebuilt each update
}

func NewMovementSystem() game.System {
	return &MovementSystem{
		followers: make(map[engine.Entity][]engine.Entity),
	}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update moves followers onto their leader's old cell, deepest first, then steps each head
func (s *MovementSystem) Update(w *game.World) error {
	c := w.Component

	clear(s.followers)
	for e := range w.Query().With(c.Position).With(c.Follower).Iter() {
		f, _ := c.Follower.Get(e)
		s.followers[f.Lead] = append(s.followers[f.Lead], e)
	}

	for e := range w.Query().With(c.Position).With(c.Direction).Iter() {
		if err := s.dragFollowers(w, e, 0); err != nil {
			return err
		}
		d, _ := c.Direction.Get(e)
		p := c.Position.Ptr(e)
		*p = p.Add(d.Delta())
	}
	return nil
}

func (s *MovementSystem) dragFollowers(w *game.World, leader engine.Entity, depth int) error {
	if depth > w.Capacity() {
		return eris.Wrapf(engine.ErrPreconditionViolation, "follower chain below %d does not terminate", leader)
	}

	c := w.Component
	lp, _ := c.Position.Get(leader)
	for _, e := range s.followers[leader] {
		if err := s.dragFollowers(w, e, depth+1); err != nil {
			return err
		}
		c.Position.Set(e, lp)
	}
	return nil
}
