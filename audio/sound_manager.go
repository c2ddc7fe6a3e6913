package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// SoundManager plays synthesized cues through the system speaker
// Every Play call is non-blocking; cues above MaxVoices are dropped
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	active atomic.Int32

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewSoundManager creates a sound manager, reg may be nil
func NewSoundManager(cfg *AudioConfig, reg *status.Registry) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()

	if reg == nil {
		reg = status.NewRegistry()
	}

	return &SoundManager{
		cfg:         cfg,
		mixer:       &beep.Mixer{},
		statPlayed:  reg.Ints.Get(status.KeyAudioPlayed),
		statDropped: reg.Ints.Get(status.KeyAudioDrops),
	}
}

// Initialize opens the speaker
// On error the manager stays usable and silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if rate <= 0 {
		return ErrBadSampleRate
	}
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// The speaker stays open for the process, only queued streamers go
	speaker.Clear()
	sm.active.Store(0)
	sm.initialized = false
}

// PlayHit plays the paddle contact cue
func (sm *SoundManager) PlayHit() {
	sm.play(SoundHit)
}

// PlayScore plays the point cue
func (sm *SoundManager) PlayScore() {
	sm.play(SoundScore)
}

// Active returns the number of cues currently playing
func (sm *SoundManager) Active() int {
	return int(sm.active.Load())
}

func (sm *SoundManager) play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if !sm.reserveVoice() {
		sm.statDropped.Add(1)
		return
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		sm.active.Add(-1)
		log.Printf("audio: unknown sound type %d", st)
		return
	}

	done := beep.Callback(func() { sm.active.Add(-1) })

	speaker.Lock()
	sm.mixer.Add(beep.Seq(streamer, done))
	speaker.Unlock()
	sm.statPlayed.Add(1)
}

// reserveVoice claims a voice slot, false when MaxVoices are playing
func (sm *SoundManager) reserveVoice() bool {
	for {
		cur := sm.active.Load()
		if int(cur) >= sm.cfg.MaxVoices {
			return false
		}
		if sm.active.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}
