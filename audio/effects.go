package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/mecs/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack, flat sustain and linear release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.attackSamples + e.sustainSamples; e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear factor; zero or less is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateEatSound generates a bright two-partial blip
func CreateEatSound(rate beep.SampleRate, master float64) beep.Streamer {
	fund := NewOscillator(parameter.EatSoundFreq, parameter.EatSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.EatSoundDuration, parameter.EatSoundAttack, parameter.EatSoundRelease, rate)

	over := NewOscillator(parameter.EatSoundFreq*2, parameter.EatSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.EatSoundDuration, parameter.EatSoundAttack, parameter.EatSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, master)
}

// CreateGameOverSound generates a low falling buzz: the base note then a fifth below
func CreateGameOverSound(rate beep.SampleRate, master float64) beep.Streamer {
	half := parameter.GameOverSoundDuration / 2

	n1 := NewOscillator(parameter.GameOverSoundFreq, half, WaveSaw, rate)
	n1Shaped := NewEnvelope(n1, half, parameter.GameOverSoundAttack, half/4, rate)

	n2 := NewOscillator(parameter.GameOverSoundFreq*2/3, half, WaveSaw, rate)
	n2Shaped := NewEnvelope(n2, half, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), master)
}

// GetSoundEffect returns a fresh streamer for the given sound, nil for unknown types
func GetSoundEffect(sound SoundType, rate beep.SampleRate, master float64) beep.Streamer {
	switch sound {
	case SoundEat:
		return CreateEatSound(rate, master)
	case SoundGameOver:
		return CreateGameOverSound(rate, master)
	default:
		return nil
	}
}
