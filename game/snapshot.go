package game

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/mecs/engine"
)

// EntitySnapshot is the serialized form of one live entity
// Absent components are omitted
type EntitySnapshot struct {
	ID           engine.Entity  `json:"id"`
	Position     *Cell          `json:"position,omitempty"`
	Direction    string         `json:"direction,omitempty"`
	Symbol       string         `json:"symbol,omitempty"`
	Edible       *EdibleState   `json:"edible,omitempty"`
	Follows      *engine.Entity `json:"follows,omitempty"`
	Collidable   bool           `json:"collidable,omitempty"`
	Consumer     bool           `json:"consumer,omitempty"`
	Interactable bool           `json:"interactable,omitempty"`
}

// Cell is a board coordinate
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// EdibleState mirrors component.EdibleComponent
type EdibleState struct {
	Points int  `json:"points"`
	Grows  bool `json:"grows"`
	Resets bool `json:"resets"`
}

// Snapshot is a point-in-time view of the whole world
type Snapshot struct {
	Score    int              `json:"score"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	GameOver bool             `json:"game_over"`
	Reason   string           `json:"reason,omitempty"`
	Entities []EntitySnapshot `json:"entities"`
}

// Snapshot captures every entity holding at least one component, in ascending id order
func (w *World) Snapshot() Snapshot {
	c := w.Component
	snap := Snapshot{
		Score:    w.Score,
		Width:    w.Width,
		Height:   w.Height,
		GameOver: w.result.GameOver,
		Reason:   w.result.Reason,
		Entities: make([]EntitySnapshot, 0, w.EntityCount()),
	}

	for id := 0; id < w.Capacity(); id++ {
		e := engine.Entity(id)
		if !w.Alive(e) || !w.HasAnyComponent(e) {
			continue
		}

		es := EntitySnapshot{
			ID:           e,
			Collidable:   c.Collidable.Has(e),
			Consumer:     c.Consumer.Has(e),
			Interactable: c.Interactable.Has(e),
		}
		if p, ok := c.Position.Get(e); ok {
			es.Position = &Cell{X: p.X, Y: p.Y}
		}
		if d, ok := c.Direction.Get(e); ok {
			es.Direction = d.String()
		}
		if d, ok := c.Drawable.Get(e); ok {
			es.Symbol = string(d.Symbol)
		}
		if ed, ok := c.Edible.Get(e); ok {
			es.Edible = &EdibleState{Points: ed.Points, Grows: ed.Grows, Resets: ed.Resets}
		}
		if f, ok := c.Follower.Get(e); ok {
			lead := f.Lead
			es.Follows = &lead
		}
		snap.Entities = append(snap.Entities, es)
	}
	return snap
}

// WriteSnapshot encodes the current snapshot as indented JSON
func (w *World) WriteSnapshot(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w.Snapshot()); err != nil {
		return eris.Wrap(err, "encode snapshot")
	}
	return nil
}
