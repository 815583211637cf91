package system

import (
	"github.com/lixenwraith/mecs/component"
	"github.com/lixenwraith/mecs/game"
)

// Steer points every interactable heading toward dir unless that would reverse it in place
func Steer(w *game.World, dir component.DirectionComponent) {
	c := w.Component
	for e := range w.Query().With(c.Interactable).With(c.Direction).Iter() {
		if cur := c.Direction.Ptr(e); *cur != dir.Opposite() {
			*cur = dir
		}
	}
}

// Install adds the movement, eating and collision systems to w
func Install(w *game.World) {
	w.AddSystem(NewMovementSystem())
	w.AddSystem(NewEatingSystem())
	w.AddSystem(NewCollisionSystem())
}
