package engine

import (
	"math"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// DefaultMaxEntities is the capacity used when none is configured
const DefaultMaxEntities = 1024

// Config holds the build-time sizing of a Registry
type Config struct {
	// MaxEntities bounds live entities and sizes every store and the free list
	MaxEntities int `config:"MECS_MAX_ENTITIES"`
}

// DefaultConfig returns a Config with DefaultMaxEntities
func DefaultConfig() Config {
	return Config{MaxEntities: DefaultMaxEntities}
}

// LoadConfig reads MECS_MAX_ENTITIES from the environment over the defaults
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "load ecs config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that MaxEntities is addressable by Entity
func (c Config) Validate() error {
	if c.MaxEntities <= 0 {
		return eris.Wrapf(ErrInvalidConfig, "max entities %d must be positive", c.MaxEntities)
	}
	if uint64(c.MaxEntities) > math.MaxUint32 {
		return eris.Wrapf(ErrInvalidConfig, "max entities %d exceeds entity id range", c.MaxEntities)
	}
	return nil
}
