package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-pong/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// tone is a fixed-length oscillator with a linear attack/release envelope
type tone struct {
	freq    float64
	wave    WaveType
	rate    beep.SampleRate
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

// NewTone creates a shaped tone streamer
// Attack and release are clamped so they never overlap
func NewTone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &tone{
		freq:    freq,
		wave:    wave,
		rate:    rate,
		total:   total,
		attack:  att,
		release: rel,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		val := t.sample() * t.gain()
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	switch t.wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveTriangle:
		return 1.0 - 4.0*math.Abs(t.phase-0.5)
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

// gain returns the envelope value at the current position
func (t *tone) gain() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	releaseStart := t.total - t.release
	if t.release > 0 && t.pos >= releaseStart {
		return float64(t.total-t.pos) / float64(t.release)
	}
	return 1.0
}

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, zero gain is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateHitSound generates a short high blip for paddle contact
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	blip := NewTone(parameter.HitSoundFrequency, WaveSquare, parameter.HitSoundDuration,
		parameter.HitSoundAttack, parameter.HitSoundRelease, rate)

	return newVolume(blip, 0.5*cfg.EffectVolumes[SoundHit]*cfg.MasterVolume)
}

// CreateScoreSound generates a falling two-tone for a point
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	step := parameter.ScoreSoundStepDuration

	high := NewTone(parameter.ScoreSoundHighFrequency, WaveTriangle, step,
		parameter.ScoreSoundAttack, parameter.ScoreSoundRelease, rate)
	low := NewTone(parameter.ScoreSoundLowFrequency, WaveTriangle, step,
		parameter.ScoreSoundAttack, parameter.ScoreSoundRelease, rate)

	return newVolume(beep.Seq(high, low), cfg.EffectVolumes[SoundScore]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for the given type, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundScore:
		return CreateScoreSound(cfg)
	default:
		return nil
	}
}
