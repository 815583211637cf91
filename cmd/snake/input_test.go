package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mecs/component"
	"github.com/lixenwraith/mecs/config"
	"github.com/lixenwraith/mecs/game"
	"github.com/lixenwraith/mecs/system"
)

func TestDirectionFor(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		ch   rune
		want component.DirectionComponent
	}{
		{tcell.KeyRune, 'w', component.DirectionUp},
		{tcell.KeyRune, 'a', component.DirectionLeft},
		{tcell.KeyRune, 's', component.DirectionDown},
		{tcell.KeyRune, 'd', component.DirectionRight},
		{tcell.KeyUp, 0, component.DirectionUp},
		{tcell.KeyLeft, 0, component.DirectionLeft},
		{tcell.KeyDown, 0, component.DirectionDown},
		{tcell.KeyRight, 0, component.DirectionRight},
	}
	for _, tc := range cases {
		got, ok := directionFor(tc.key, tc.ch)
		if !ok || got != tc.want {
			t.Errorf("key %d %q: got %s (ok=%v), want %s", tc.key, tc.ch, got, ok, tc.want)
		}
	}

	if _, ok := directionFor(tcell.KeyRune, 'x'); ok {
		t.Error("Expected no direction for 'x'")
	}
}

func TestIsQuit(t *testing.T) {
	if !isQuit(tcell.KeyRune, 'q') || !isQuit(tcell.KeyEscape, 0) || !isQuit(tcell.KeyCtrlC, 0) {
		t.Error("Expected q, Esc and Ctrl-C to quit")
	}
	if isQuit(tcell.KeyRune, 'w') || isQuit(tcell.KeyUp, 0) {
		t.Error("Expected movement keys not to quit")
	}
}

func newTestWorld(t *testing.T) *game.World {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	w, err := game.NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	system.Install(w)
	if err := w.InitSnake(3); err != nil {
		t.Fatalf("InitSnake: %v", err)
	}
	return w
}

// Two turns typed within one tick must not reverse the snake into its body
func TestQuickTurnsApplyOnePerTick(t *testing.T) {
	w := newTestWorld(t)
	var turns turnQueue
	turns.push(component.DirectionUp)
	turns.push(component.DirectionLeft)

	wantHeads := []component.PositionComponent{{X: 5, Y: 4}, {X: 4, Y: 4}}
	for i, want := range wantHeads {
		res, err := tick(w, &turns)
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if res.GameOver {
			t.Fatalf("tick %d: unexpected game over: %s", i, res.Reason)
		}
		if got, _ := w.Component.Position.Get(0); got != want {
			t.Errorf("tick %d: head at %+v, want %+v", i, got, want)
		}
	}

	if d, _ := w.Component.Direction.Get(0); d != component.DirectionLeft {
		t.Errorf("Expected heading left, got %s", d)
	}
}

func TestTurnQueueBounds(t *testing.T) {
	var q turnQueue
	q.push(component.DirectionUp)
	q.push(component.DirectionUp)
	if len(q.dirs) != 1 {
		t.Errorf("Expected repeated heading to be dropped, queue has %d", len(q.dirs))
	}

	for _, d := range []component.DirectionComponent{
		component.DirectionLeft, component.DirectionDown, component.DirectionRight,
	} {
		q.push(d)
	}
	if len(q.dirs) != maxQueuedTurns {
		t.Errorf("Expected queue capped at %d, got %d", maxQueuedTurns, len(q.dirs))
	}

	for _, want := range []component.DirectionComponent{
		component.DirectionUp, component.DirectionLeft, component.DirectionDown,
	} {
		got, ok := q.pop()
		if !ok || got != want {
			t.Errorf("pop: got %s (ok=%v), want %s", got, ok, want)
		}
	}
	if _, ok := q.pop(); ok {
		t.Error("Expected empty queue")
	}
}

func TestDrainEventsLeavesNothingBuffered(t *testing.T) {
	events := make(chan tcell.Event, 8)
	for range 5 {
		events <- tcell.NewEventInterrupt(nil)
	}

	drainEvents(events)
	if len(events) != 0 {
		t.Errorf("Expected drained channel, %d events left", len(events))
	}

	close(events)
	drainEvents(events)
}
