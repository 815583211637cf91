package component

// CollidableComponent marks entities that end the game when an interactable enters their cell
type CollidableComponent struct{}

// ConsumerComponent marks entities that eat edibles on contact
type ConsumerComponent struct{}

// InteractableComponent marks player-steered entities
type InteractableComponent struct{}
