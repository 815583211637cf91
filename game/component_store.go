package game

import (
	"github.com/lixenwraith/mecs/component"
	"github.com/lixenwraith/mecs/engine"
)

// Components provides cached pointers to the typed component stores
// Populated once per world; pointers remain valid for the world's lifetime
type Components struct {
	// Tags
	Collidable   *engine.Store[component.CollidableComponent]
	Consumer     *engine.Store[component.ConsumerComponent]
	Interactable *engine.Store[component.InteractableComponent]

	// Data
	Direction *engine.Store[component.DirectionComponent]
	Drawable  *engine.Store[component.DrawableComponent]
	Edible    *engine.Store[component.EdibleComponent]
	Follower  *engine.Store[component.FollowerComponent]
	Position  *engine.Store[component.PositionComponent]
}

// registerComponents creates every snake store on r
func registerComponents(r *engine.Registry) Components {
	return Components{
		Collidable:   engine.Register[component.CollidableComponent](r, "collidable"),
		Consumer:     engine.Register[component.ConsumerComponent](r, "consumer"),
		Interactable: engine.Register[component.InteractableComponent](r, "interactable"),

		Direction: engine.Register[component.DirectionComponent](r, "direction"),
		Drawable:  engine.Register[component.DrawableComponent](r, "drawable"),
		Edible:    engine.Register[component.EdibleComponent](r, "edible"),
		Follower:  engine.Register[component.FollowerComponent](r, "follower"),
		Position:  engine.Register[component.PositionComponent](r, "position"),
	}
}
