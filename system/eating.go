package system

import (
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mecs/game"
	"github.com/lixenwraith/mecs/parameter"
)

// EatingSystem lets consumers eat the edibles sharing their cell
type EatingSystem struct{}

func NewEatingSystem() game.System {
	return &EatingSystem{}
}

func (s *EatingSystem) Name() string {
	return "eating"
}

func (s *EatingSystem) Priority() int {
	return parameter.PriorityEating
}

// Update scores, grows and re-places or destroys every edible a consumer stands on
// A board with no room left for a resetting edible ends the game
func (s *EatingSystem) Update(w *game.World) error {
	c := w.Component

	for mouth := range w.Query().With(c.Position).With(c.Consumer).Iter() {
		for food := range w.Query().With(c.Position).With(c.Edible).Iter() {
			mp, _ := c.Position.Get(mouth)
			fp, _ := c.Position.Get(food)
			if !mp.Equal(fp) {
				continue
			}

			ed, _ := c.Edible.Get(food)
			if ed.Grows {
				if err := w.Grow(mouth); err != nil {
					return err
				}
			}
			w.RecordEat(ed.Points, ed.Grows)
			w.Logger().WithFields(logrus.Fields{
				"consumer": mouth,
				"edible":   food,
				"score":    w.Score,
			}).Debug("edible consumed")

			if !ed.Resets {
				w.DestroyEntity(food)
				continue
			}
			if err := w.PlaceEdible(food); err != nil {
				if eris.Is(err, game.ErrBoardFull) {
					w.EndGame(ReasonBoardFull)
					return nil
				}
				return err
			}
		}
	}
	return nil
}
