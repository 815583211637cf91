// Package game holds the snake world: the registry, its component stores, the systems and the score
package game

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mecs/component"
	"github.com/lixenwraith/mecs/config"
	"github.com/lixenwraith/mecs/engine"
)

// System is one rule applied once per step
type System interface {
	// Name identifies the system in logs
	Name() string
	// Priority orders systems; lower runs first
	Priority() int
	// Update applies the rule to the world
	Update(w *World) error
}

// StepResult summarizes what happened during one Step
type StepResult struct {
	Ate      int  // Points scored
	Grew     bool // A segment was appended
	GameOver bool
	Reason   string
}

// World is the snake game state
// Not safe for concurrent use: the game loop owns it
type World struct {
	*engine.Registry
	Component Components

	Width  int
	Height int
	Score  int

	cfg     config.Game
	rng     *rand.Rand
	systems []System
	result  StepResult
	log     logrus.FieldLogger
}

// Option configures a World at construction
type Option func(*World)

// WithLogger routes world and registry diagnostics to l
func WithLogger(l logrus.FieldLogger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// NewWorld creates an empty world sized by cfg
// Call Start to spawn the snake and the apple
func NewWorld(cfg config.Game, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	w := &World{
		Width:  cfg.Width,
		Height: cfg.Height,
		cfg:    cfg,
		log:    discard,
	}
	for _, opt := range opts {
		opt(w)
	}

	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	w.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	w.Registry = engine.NewRegistry(engine.Config{MaxEntities: cfg.MaxEntities}, engine.WithLogger(w.log))
	w.Component = registerComponents(w.Registry)

	w.log.WithFields(logrus.Fields{
		"width":  w.Width,
		"height": w.Height,
		"seed":   seed,
	}).Info("world created")
	return w, nil
}

// Start spawns the snake and places the first apple
func (w *World) Start() error {
	if err := w.InitSnake(w.cfg.SnakeLength); err != nil {
		return err
	}
	apple, err := w.CreateApple()
	if err != nil {
		return err
	}
	return w.PlaceEdible(apple)
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Step runs every system once in priority order
// Systems after the one that ended the game are skipped; a finished game is not stepped again
func (w *World) Step() (StepResult, error) {
	if w.result.GameOver {
		return w.result, nil
	}
	w.result = StepResult{}

	for _, s := range w.systems {
		if err := s.Update(w); err != nil {
			return w.result, eris.Wrapf(err, "system %s", s.Name())
		}
		if w.result.GameOver {
			w.log.WithFields(logrus.Fields{
				"system": s.Name(),
				"reason": w.result.Reason,
				"score":  w.Score,
			}).Info("game over")
			break
		}
	}
	return w.result, nil
}

// RecordEat credits points scored during the current step
func (w *World) RecordEat(points int, grew bool) {
	w.Score += points
	w.result.Ate += points
	w.result.Grew = w.result.Grew || grew
}

// EndGame marks the current step as final
func (w *World) EndGame(reason string) {
	w.result.GameOver = true
	w.result.Reason = reason
}

// Over reports whether the game has ended
func (w *World) Over() bool {
	return w.result.GameOver
}

// InBounds reports whether p lies on the board
func (w *World) InBounds(p component.PositionComponent) bool {
	return p.X >= 0 && p.X < w.Width && p.Y >= 0 && p.Y < w.Height
}

// DestroyEntity removes e and every component it holds
func (w *World) DestroyEntity(e engine.Entity) {
	w.Registry.DestroyEntity(e)
	w.log.WithField("entity", e).Debug("entity destroyed")
}

// Logger returns the world's logger
func (w *World) Logger() logrus.FieldLogger {
	return w.log
}
