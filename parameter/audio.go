package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Audio Voices
const (
	// AudioMaxVoices caps simultaneously playing cues, new cues are dropped above it
	AudioMaxVoices = 4

	// DefaultAudioVolume is the master gain in [0,1]
	DefaultAudioVolume = 0.6
)

// Hit Sound
const (
	HitSoundFrequency = 880.0
	HitSoundDuration  = 45 * time.Millisecond
	HitSoundAttack    = 2 * time.Millisecond
	HitSoundRelease   = 30 * time.Millisecond
)

// Score Sound
const (
	ScoreSoundHighFrequency = 660.0
	ScoreSoundLowFrequency  = 440.0
	ScoreSoundStepDuration  = 90 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundRelease       = 40 * time.Millisecond
)
