package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
)

// Command mutates the game state on the scheduler goroutine and returns any notifications
type Command func(gs *GameState) []event.GameEvent

// commandQueueSize bounds pending input commands
const commandQueueSize = 64

// ClockScheduler drives the GameState on a fixed tick
// It is the single owner of the state: timer ticks, immediate tick requests and
// input commands are serialized on one goroutine, so no tick ever runs concurrently
type ClockScheduler struct {
	state *GameState
	queue *event.Queue
	clock TimeProvider

	// Tick configuration
	tickInterval time.Duration
	frameGuard   time.Duration
	lastTick     time.Time

	// Presentation hold (win announcement), independent of the paused flag
	held atomic.Bool

	tickCount atomic.Uint64

	// Latest published snapshot
	mu     sync.RWMutex
	latest component.Snapshot

	// Single-slot request channel collapses overlapping immediate tick requests
	requests chan struct{}
	commands chan Command
	frames   chan struct{}

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statTicks     *atomic.Int64
	statSkipped   *atomic.Int64
	statCoalesced *atomic.Int64
	statHits      *atomic.Int64
	statPoints    *atomic.Int64
	statMatches   *atomic.Int64
	statPeakSpeed *status.AtomicFloat
}

// NewClockScheduler creates a scheduler for the given state
// Engine events are pushed to queue; frameGuard is the minimum spacing between two executed ticks
func NewClockScheduler(
	state *GameState,
	queue *event.Queue,
	clock TimeProvider,
	tickInterval time.Duration,
	frameGuard time.Duration,
	reg *status.Registry,
) *ClockScheduler {
	cs := &ClockScheduler{
		state:         state,
		queue:         queue,
		clock:         clock,
		tickInterval:  tickInterval,
		frameGuard:    frameGuard,
		requests:      make(chan struct{}, 1),
		commands:      make(chan Command, commandQueueSize),
		frames:        make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
		statTicks:     reg.Ints.Get(status.KeyTicks),
		statSkipped:   reg.Ints.Get(status.KeySkipped),
		statCoalesced: reg.Ints.Get(status.KeyCoalesced),
		statHits:      reg.Ints.Get(status.KeyHits),
		statPoints:    reg.Ints.Get(status.KeyPoints),
		statMatches:   reg.Ints.Get(status.KeyMatches),
		statPeakSpeed: reg.Floats.Get(status.KeyPeakSpeed),
	}

	// Initial frame so the court is drawn before the first tick
	cs.publish(nil)
	return cs
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// RequestTick asks for an immediate tick outside the timer cadence
// Returns false when a request is already pending and this one was collapsed into it
func (cs *ClockScheduler) RequestTick() bool {
	select {
	case cs.requests <- struct{}{}:
		return true
	default:
		cs.statCoalesced.Add(1)
		return false
	}
}

// Submit queues a command for the scheduler goroutine
// Returns false once the scheduler is stopped
func (cs *ClockScheduler) Submit(cmd Command) bool {
	select {
	case <-cs.stopChan:
		return false
	default:
	}

	select {
	case cs.commands <- cmd:
		return true
	case <-cs.stopChan:
		return false
	}
}

// SetHold suspends or resumes ticking for presentation purposes (modal announcement)
func (cs *ClockScheduler) SetHold(held bool) {
	cs.held.Store(held)
}

// Frames signals after every published snapshot, signals coalesce when the reader lags
func (cs *ClockScheduler) Frames() <-chan struct{} {
	return cs.frames
}

// Snapshot returns the latest published snapshot
func (cs *ClockScheduler) Snapshot() component.Snapshot {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.latest
}

// TickCount returns the number of executed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop serializes timer pulses, tick requests and commands
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case cmd := <-cs.commands:
			cs.execute(cmd)
		case <-ticker.C:
			cs.step()
		case <-cs.requests:
			cs.step()
		}
	}
}

// step runs one engine tick unless paused, held, or inside the frame guard of the previous tick
func (cs *ClockScheduler) step() bool {
	if cs.state.Match.Paused || cs.held.Load() {
		cs.statSkipped.Add(1)
		return false
	}

	now := cs.clock.Now()
	if !cs.lastTick.IsZero() && now.Sub(cs.lastTick) < cs.frameGuard {
		cs.statCoalesced.Add(1)
		return false
	}
	cs.lastTick = now

	evs := cs.state.Tick()
	cs.tickCount.Add(1)
	cs.statTicks.Add(1)
	cs.record(evs)
	cs.publish(evs)
	return true
}

// execute runs a command and republishes so paused or held screens still reflect it
func (cs *ClockScheduler) execute(cmd Command) {
	cs.publish(cmd(cs.state))
}

func (cs *ClockScheduler) record(evs []event.GameEvent) {
	for _, ev := range evs {
		switch ev.Type {
		case event.EventPaddleHit:
			cs.statHits.Add(1)
		case event.EventPointScored:
			cs.statPoints.Add(1)
		case event.EventMatchWon:
			cs.statMatches.Add(1)
		}
	}
	cs.statPeakSpeed.Max(cs.state.Ball.Speed)
}

// publish pushes events, stores the snapshot, then signals readers
// Events always land before the frame signal so a reader sees both together
func (cs *ClockScheduler) publish(evs []event.GameEvent) {
	cs.queue.PushAll(evs)

	snap := cs.state.Snapshot()
	cs.mu.Lock()
	cs.latest = snap
	cs.mu.Unlock()

	select {
	case cs.frames <- struct{}{}:
	default:
	}
}
