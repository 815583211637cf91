package parameter

import "time"

// Board dimensions in cells
const (
	BoardWidth  = 20
	BoardHeight = 10
)

// Tick pacing
const (
	TickInterval = 200 * time.Millisecond
	MinTick      = 20 * time.Millisecond
)

// MaxEntities bounds live entities in one game
const MaxEntities = 1024

// LogFile is the debug log path relative to the working directory
const LogFile = "logs/snake.log"

// Snake spawn parameters
const (
	SnakeDefaultLength = 3
	SnakeSpawnX        = 5 // Head column; segments extend to the left
	SnakeSpawnY        = 5
)

// Edible defaults for the apple
const (
	ApplePoints = 1
	AppleGrows  = true
	AppleResets = true
)

// Glyphs drawn on the board
const (
	GlyphHead    = 'O'
	GlyphSegment = 'o'
	GlyphApple   = '@'
	GlyphEmpty   = '.'
)
