package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit   SoundType = iota // Ball struck by a paddle
	SoundScore                  // Point scored
	soundTypeCount
)

// Player is the audio surface the game drives
// Calls are fire-and-forget and never block the caller
type Player interface {
	PlayHit()
	PlayScore()
}

// Silent discards every cue
type Silent struct{}

func (Silent) PlayHit()   {}
func (Silent) PlayScore() {}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrBadSampleRate = errors.New("sample rate must be positive")
)
