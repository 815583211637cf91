package system

import (
	"github.com/lixenwraith/mecs/game"
	"github.com/lixenwraith/mecs/parameter"
)

// Game over reasons
const (
	ReasonWall      = "hit wall"
	ReasonCollision = "hit collidable"
	ReasonBoardFull = "board full"
)

// CollisionSystem ends the game when an interactable leaves the board or enters a collidable's cell
type CollisionSystem struct{}

func NewCollisionSystem() game.System {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update(w *game.World) error {
	c := w.Component

	for i := range w.Query().With(c.Position).With(c.Interactable).Iter() {
		ip, _ := c.Position.Get(i)
		if !w.InBounds(ip) {
			w.EndGame(ReasonWall)
			return nil
		}

		for other := range w.Query().With(c.Position).With(c.Collidable).Iter() {
			if other == i {
				continue
			}
			if op, _ := c.Position.Get(other); op.Equal(ip) {
				w.EndGame(ReasonCollision)
				return nil
			}
		}
	}
	return nil
}
