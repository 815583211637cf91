// Package config loads snake runtime settings from the environment
package config

import (
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/mecs/engine"
	"github.com/lixenwraith/mecs/parameter"
)

// ErrInvalid reports a setting outside its allowed range
var ErrInvalid = eris.New("invalid game config")

// Game holds the snake runtime settings
type Game struct {
	Width       int    `config:"SNAKE_WIDTH"`
	Height      int    `config:"SNAKE_HEIGHT"`
	TickMS      int    `config:"SNAKE_TICK_MS"`
	SnakeLength int    `config:"SNAKE_LENGTH"`
	MaxEntities int    `config:"SNAKE_MAX_ENTITIES"`
	Audio       bool   `config:"SNAKE_AUDIO"`
	Debug       bool   `config:"SNAKE_DEBUG"`
	Seed        int64  `config:"SNAKE_SEED"` // 0 seeds from the clock
	LogFile     string `config:"SNAKE_LOG_FILE"`
}

// Default returns the built-in settings
func Default() Game {
	return Game{
		Width:       parameter.BoardWidth,
		Height:      parameter.BoardHeight,
		TickMS:      int(parameter.TickInterval / time.Millisecond),
		SnakeLength: parameter.SnakeDefaultLength,
		MaxEntities: parameter.MaxEntities,
		Audio:       true,
		LogFile:     parameter.LogFile,
	}
}

// Load starts from Default and overrides with any SNAKE_* variables present
func Load() (Game, error) {
	cfg := Default()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return Game{}, eris.Wrap(err, "load game config")
	}
	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

// Tick returns the interval between simulation steps
func (g Game) Tick() time.Duration {
	return time.Duration(g.TickMS) * time.Millisecond
}

// Validate checks board, timing and capacity bounds
func (g Game) Validate() error {
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return eris.Wrapf(ErrInvalid, "board %dx%d", g.Width, g.Height)
	case g.Tick() < parameter.MinTick:
		return eris.Wrapf(ErrInvalid, "tick %s below %s", g.Tick(), parameter.MinTick)
	case g.SnakeLength < 1:
		return eris.Wrapf(ErrInvalid, "snake length %d", g.SnakeLength)
	case parameter.SnakeSpawnX-(g.SnakeLength-1) < 0 ||
		parameter.SnakeSpawnX >= g.Width || parameter.SnakeSpawnY >= g.Height:
		return eris.Wrapf(ErrInvalid, "snake of length %d does not fit a %dx%d board", g.SnakeLength, g.Width, g.Height)
	case g.MaxEntities < g.SnakeLength+1:
		// head, segments and one apple
		return eris.Wrapf(ErrInvalid, "max entities %d below %d", g.MaxEntities, g.SnakeLength+1)
	}
	if err := (engine.Config{MaxEntities: g.MaxEntities}).Validate(); err != nil {
		return eris.Wrap(ErrInvalid, err.Error())
	}
	return nil
}
