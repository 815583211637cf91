package game

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mecs/component"
	"github.com/lixenwraith/mecs/engine"
	"github.com/lixenwraith/mecs/parameter"
)

// ErrBoardFull is returned by PlaceEdible when no cell is free
var ErrBoardFull = eris.New("no free cell")

// CreateSnakeHead spawns the steerable, eating head of a snake
func (w *World) CreateSnakeHead(pos component.PositionComponent, dir component.DirectionComponent) (engine.Entity, error) {
	c := w.Component
	eb := w.NewEntity()
	engine.With(eb, c.Interactable, component.InteractableComponent{})
	engine.With(eb, c.Direction, dir)
	engine.With(eb, c.Consumer, component.ConsumerComponent{})
	engine.With(eb, c.Drawable, component.DrawableComponent{Symbol: parameter.GlyphHead, Color: tcell.ColorGreen})
	engine.With(eb, c.Position, pos)
	engine.With(eb, c.Collidable, component.CollidableComponent{})
	return eb.Build()
}

// CreateSnakeSegment spawns a body segment trailing lead
func (w *World) CreateSnakeSegment(pos component.PositionComponent, lead engine.Entity) (engine.Entity, error) {
	c := w.Component
	eb := w.NewEntity()
	engine.With(eb, c.Position, pos)
	engine.With(eb, c.Follower, component.FollowerComponent{Lead: lead})
	engine.With(eb, c.Drawable, component.DrawableComponent{Symbol: parameter.GlyphSegment, Color: tcell.ColorLime})
	engine.With(eb, c.Collidable, component.CollidableComponent{})
	return eb.Build()
}

// InitSnake spawns a snake of length cells heading right, body extending to the left of the head
func (w *World) InitSnake(length int) error {
	if length < 1 {
		return eris.Errorf("snake length %d", length)
	}

	head, err := w.CreateSnakeHead(
		component.PositionComponent{X: parameter.SnakeSpawnX, Y: parameter.SnakeSpawnY},
		component.DirectionRight,
	)
	if err != nil {
		return eris.Wrap(err, "create snake head")
	}

	prev := head
	for i := 1; i < length; i++ {
		pos := component.PositionComponent{X: parameter.SnakeSpawnX - i, Y: parameter.SnakeSpawnY}
		seg, err := w.CreateSnakeSegment(pos, prev)
		if err != nil {
			return eris.Wrapf(err, "create snake segment %d", i)
		}
		prev = seg
	}

	w.log.WithFields(logrus.Fields{"head": head, "length": length}).Debug("snake spawned")
	return nil
}

// CreateApple spawns an apple at the origin; call PlaceEdible to move it somewhere free
func (w *World) CreateApple() (engine.Entity, error) {
	c := w.Component
	eb := w.NewEntity()
	engine.With(eb, c.Drawable, component.DrawableComponent{Symbol: parameter.GlyphApple, Color: tcell.ColorRed})
	engine.With(eb, c.Edible, component.EdibleComponent{
		Points: parameter.ApplePoints,
		Grows:  parameter.AppleGrows,
		Resets: parameter.AppleResets,
	})
	engine.With(eb, c.Position, component.PositionComponent{})
	return eb.Build()
}

// IsOccupied reports whether any positioned entity sits on pos
func (w *World) IsOccupied(pos component.PositionComponent) bool {
	for e := range w.Query().With(w.Component.Position).Iter() {
		if p, _ := w.Component.Position.Get(e); p.Equal(pos) {
			return true
		}
	}
	return false
}

// PlaceEdible moves e to a uniformly random unoccupied cell
// Returns ErrBoardFull, leaving e in place, when every cell is taken
func (w *World) PlaceEdible(e engine.Entity) error {
	occupied := make([]bool, w.Width*w.Height)
	for o := range w.Query().With(w.Component.Position).Iter() {
		if p, _ := w.Component.Position.Get(o); w.InBounds(p) {
			occupied[p.Y*w.Width+p.X] = true
		}
	}

	free := make([]int, 0, len(occupied))
	for i, taken := range occupied {
		if !taken {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return eris.Wrapf(ErrBoardFull, "place edible %d", e)
	}

	cell := free[w.rng.IntN(len(free))]
	w.Component.Position.Set(e, component.PositionComponent{X: cell % w.Width, Y: cell / w.Width})
	return nil
}
