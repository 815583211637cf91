package game

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"gotest.tools/v3/assert"

	"github.com/lixenwraith/mecs/component"
	"github.com/lixenwraith/mecs/config"
	"github.com/lixenwraith/mecs/engine"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	w, err := NewWorld(cfg)
	assert.NilError(t, err)
	return w
}

func pos(x, y int) component.PositionComponent {
	return component.PositionComponent{X: x, Y: y}
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Width = 0
	_, err := NewWorld(cfg)
	assert.Assert(t, eris.Is(err, config.ErrInvalid))
}

func TestStartSpawnsSnakeAndApple(t *testing.T) {
	w := newTestWorld(t)
	assert.NilError(t, w.Start())
	c := w.Component

	assert.Equal(t, w.EntityCount(), 4)

	heads := w.Query().With(c.Interactable).With(c.Direction).Execute()
	assert.DeepEqual(t, heads, []engine.Entity{0})
	head := heads[0]

	p, _ := c.Position.Get(head)
	assert.Equal(t, p, pos(5, 5))
	d, _ := c.Direction.Get(head)
	assert.Equal(t, d, component.DirectionRight)

	p1, _ := c.Position.Get(1)
	p2, _ := c.Position.Get(2)
	assert.Equal(t, p1, pos(4, 5))
	assert.Equal(t, p2, pos(3, 5))
	assert.Equal(t, w.LastFollower(head), engine.Entity(2))
	assert.Equal(t, w.Length(head), 3)

	apples := w.Query().With(c.Edible).With(c.Position).Execute()
	assert.Equal(t, len(apples), 1)
	ap, _ := c.Position.Get(apples[0])
	assert.Assert(t, w.InBounds(ap))
	for _, e := range []engine.Entity{0, 1, 2} {
		sp, _ := c.Position.Get(e)
		assert.Assert(t, !sp.Equal(ap), "apple placed on snake entity %d", e)
	}
}

func TestLastFollowerWithoutFollowers(t *testing.T) {
	w := newTestWorld(t)
	head, err := w.CreateSnakeHead(pos(1, 1), component.DirectionUp)
	assert.NilError(t, err)
	assert.Equal(t, w.LastFollower(head), head)
	assert.Equal(t, w.Length(head), 1)
}

func requireViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		assert.Assert(t, r != nil)
		err, ok := r.(error)
		assert.Assert(t, ok)
		assert.Assert(t, eris.Is(err, engine.ErrPreconditionViolation))
	}()
	fn()
}

func TestLastFollowerCyclePanics(t *testing.T) {
	w := newTestWorld(t)
	a, _ := w.CreateSnakeSegment(pos(1, 1), 1)
	_, _ = w.CreateSnakeSegment(pos(1, 2), a)

	requireViolation(t, func() { w.LastFollower(a) })
	requireViolation(t, func() { w.Length(a) })
}

func TestGrowAppendsAtTail(t *testing.T) {
	w := newTestWorld(t)
	assert.NilError(t, w.InitSnake(3))

	assert.NilError(t, w.Grow(0))
	tail := w.LastFollower(0)
	assert.Equal(t, tail, engine.Entity(3))

	tp, _ := w.Component.Position.Get(tail)
	assert.Equal(t, tp, pos(3, 5), "new segment stacks on the old tail")
	f, _ := w.Component.Follower.Get(tail)
	assert.Equal(t, f.Lead, engine.Entity(2))
	assert.Equal(t, w.Length(0), 4)
}

func TestIsOccupied(t *testing.T) {
	w := newTestWorld(t)
	assert.NilError(t, w.InitSnake(2))

	assert.Assert(t, w.IsOccupied(pos(5, 5)))
	assert.Assert(t, w.IsOccupied(pos(4, 5)))
	assert.Assert(t, !w.IsOccupied(pos(3, 5)))
}

func fillBoardExcept(t *testing.T, w *World, keep component.PositionComponent) {
	t.Helper()
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if p := pos(x, y); !p.Equal(keep) {
				e, err := w.CreateEntity()
				assert.NilError(t, err)
				w.Component.Position.Set(e, p)
			}
		}
	}
}

func TestPlaceEdibleChoosesFreeCell(t *testing.T) {
	w := newTestWorld(t)
	apple, err := w.CreateApple()
	assert.NilError(t, err)
	// Park the apple off-board so it does not reserve a cell itself
	w.Component.Position.Set(apple, pos(-1, -1))

	fillBoardExcept(t, w, pos(7, 3))
	assert.NilError(t, w.PlaceEdible(apple))

	got, _ := w.Component.Position.Get(apple)
	assert.Equal(t, got, pos(7, 3))
}

func TestPlaceEdibleBoardFull(t *testing.T) {
	w := newTestWorld(t)
	apple, err := w.CreateApple()
	assert.NilError(t, err)
	w.Component.Position.Set(apple, pos(-1, -1))

	fillBoardExcept(t, w, pos(-1, -1))
	err = w.PlaceEdible(apple)
	assert.Assert(t, eris.Is(err, ErrBoardFull))

	got, _ := w.Component.Position.Get(apple)
	assert.Equal(t, got, pos(-1, -1), "apple stays put")
}

func TestDestroyEntityClearsComponents(t *testing.T) {
	w := newTestWorld(t)
	apple, err := w.CreateApple()
	assert.NilError(t, err)

	w.DestroyEntity(apple)
	assert.Assert(t, !w.Alive(apple))
	assert.Assert(t, !w.Component.Edible.Has(apple))
	assert.Assert(t, !w.Component.Drawable.Has(apple))
	assert.Assert(t, !w.IsOccupied(pos(0, 0)))
}

type stubSystem struct {
	name     string
	priority int
	calls    *[]string
	end      bool
}

func (s stubSystem) Name() string  { return s.name }
func (s stubSystem) Priority() int { return s.priority }
func (s stubSystem) Update(w *World) error {
	*s.calls = append(*s.calls, s.name)
	if s.end {
		w.EndGame(s.name)
	}
	return nil
}

func TestAddSystemSortsByPriority(t *testing.T) {
	w := newTestWorld(t)
	var calls []string
	w.AddSystem(stubSystem{name: "c", priority: 30, calls: &calls})
	w.AddSystem(stubSystem{name: "a", priority: 10, calls: &calls})
	w.AddSystem(stubSystem{name: "b", priority: 20, calls: &calls})

	_, err := w.Step()
	assert.NilError(t, err)
	assert.DeepEqual(t, calls, []string{"a", "b", "c"})
	assert.Equal(t, len(w.Systems()), 3)
}

func TestStepStopsAtGameOver(t *testing.T) {
	w := newTestWorld(t)
	var calls []string
	w.AddSystem(stubSystem{name: "first", priority: 1, calls: &calls, end: true})
	w.AddSystem(stubSystem{name: "second", priority: 2, calls: &calls})

	res, err := w.Step()
	assert.NilError(t, err)
	assert.Assert(t, res.GameOver)
	assert.Equal(t, res.Reason, "first")
	assert.DeepEqual(t, calls, []string{"first"})

	// Finished game does not run systems again
	res, err = w.Step()
	assert.NilError(t, err)
	assert.Assert(t, res.GameOver)
	assert.Equal(t, len(calls), 1)
	assert.Assert(t, w.Over())
}

func TestRecordEatAccumulates(t *testing.T) {
	w := newTestWorld(t)
	w.RecordEat(1, false)
	w.RecordEat(2, true)
	assert.Equal(t, w.Score, 3)
}

func TestWriteSnapshot(t *testing.T) {
	w := newTestWorld(t)
	assert.NilError(t, w.Start())
	w.Score = 7

	var buf bytes.Buffer
	assert.NilError(t, w.WriteSnapshot(&buf))

	var snap Snapshot
	assert.NilError(t, json.Unmarshal(buf.Bytes(), &snap))
	assert.Equal(t, snap.Score, 7)
	assert.Equal(t, snap.Width, w.Width)
	assert.Equal(t, len(snap.Entities), 4)

	head := snap.Entities[0]
	assert.Equal(t, head.ID, engine.Entity(0))
	assert.Equal(t, head.Direction, "right")
	assert.Equal(t, head.Symbol, "O")
	assert.Assert(t, head.Interactable && head.Consumer && head.Collidable)
	assert.DeepEqual(t, *head.Position, Cell{X: 5, Y: 5})

	seg := snap.Entities[1]
	assert.Assert(t, seg.Follows != nil)
	assert.Equal(t, *seg.Follows, engine.Entity(0))
	assert.Assert(t, seg.Edible == nil)

	apple := snap.Entities[3]
	assert.Equal(t, apple.Symbol, "@")
	assert.DeepEqual(t, *apple.Edible, EdibleState{Points: 1, Grows: true, Resets: true})
}
