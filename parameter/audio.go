package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Sound
const (
	EatSoundFreq     = 880.0
	EatSoundDuration = 60 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatSoundRelease  = 30 * time.Millisecond
)

// Game Over Sound
const (
	GameOverSoundFreq     = 110.0
	GameOverSoundDuration = 500 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 300 * time.Millisecond
)

// MasterVolume scales every effect, 0.0-1.0
const MasterVolume = 0.5
