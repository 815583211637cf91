package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mecs/component"
	"github.com/lixenwraith/mecs/game"
	"github.com/lixenwraith/mecs/system"
)

// isQuit reports whether the key ends the game: q, Esc or Ctrl-C
func isQuit(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ch == 'q'
	}
	return false
}

// directionFor maps wasd and the arrow keys to headings
func directionFor(key tcell.Key, ch rune) (component.DirectionComponent, bool) {
	switch key {
	case tcell.KeyUp:
		return component.DirectionUp, true
	case tcell.KeyDown:
		return component.DirectionDown, true
	case tcell.KeyLeft:
		return component.DirectionLeft, true
	case tcell.KeyRight:
		return component.DirectionRight, true
	case tcell.KeyRune:
		switch ch {
		case 'w':
			return component.DirectionUp, true
		case 's':
			return component.DirectionDown, true
		case 'a':
			return component.DirectionLeft, true
		case 'd':
			return component.DirectionRight, true
		}
	}
	return 0, false
}

// maxQueuedTurns bounds how far ahead the player can type turns
const maxQueuedTurns = 3

// turnQueue buffers headings so at most one is applied per tick
type turnQueue struct {
	dirs []component.DirectionComponent
}

// push queues dir, dropping it when the queue is full or it repeats the last queued heading
func (q *turnQueue) push(dir component.DirectionComponent) {
	if len(q.dirs) >= maxQueuedTurns {
		return
	}
	if n := len(q.dirs); n > 0 && q.dirs[n-1] == dir {
		return
	}
	q.dirs = append(q.dirs, dir)
}

func (q *turnQueue) pop() (component.DirectionComponent, bool) {
	if len(q.dirs) == 0 {
		return 0, false
	}
	dir := q.dirs[0]
	q.dirs = q.dirs[1:]
	return dir, true
}

// tick applies one queued turn, then steps the world
func tick(w *game.World, q *turnQueue) (game.StepResult, error) {
	if dir, ok := q.pop(); ok {
		system.Steer(w, dir)
	}
	return w.Step()
}

// drainEvents discards events buffered during play without blocking
func drainEvents(events <-chan tcell.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
