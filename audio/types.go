package audio

// SoundType identifies a sound effect
type SoundType int

const (
	SoundEat SoundType = iota
	SoundGameOver
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
