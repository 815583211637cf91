package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/mecs/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player plays sound effects through the system speaker
// A disabled or closed player ignores Play
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer opens the speaker when enabled
// On failure the returned player is muted and the error reports why
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: parameter.MasterVolume,
	}
	if !enabled {
		return p, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return p, eris.Wrap(err, "init speaker")
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// Enabled reports whether sounds reach the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a sound effect; overlapping sounds are mixed
func (p *Player) Play(sound SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := GetSoundEffect(sound, sampleRate, p.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending sounds and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
