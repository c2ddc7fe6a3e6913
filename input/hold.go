package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-pong/engine"
)

// HoldTracker emulates key release for terminals, which report only presses
// A fresh press stays held for delay, long enough for the first auto-repeat;
// once repeats arrive, the direction stays held while they keep coming within window
type HoldTracker struct {
	mu        sync.Mutex
	delay     time.Duration
	window    time.Duration
	held      [2]bool
	repeating [2]bool
	lastSeen  [2]time.Time
}

// NewHoldTracker creates a tracker; a delay shorter than window is raised to window
func NewHoldTracker(delay, window time.Duration) *HoldTracker {
	return &HoldTracker{delay: max(delay, window), window: window}
}

// Press records a press or repeat of dir at now
// Pressing one direction releases the other; the released directions are returned
func (h *HoldTracker) Press(dir engine.Direction, now time.Time) []engine.Direction {
	h.mu.Lock()
	defer h.mu.Unlock()

	var released []engine.Direction
	other := opposite(dir)
	if h.held[other] {
		h.held[other] = false
		released = append(released, other)
	}

	h.repeating[dir] = h.held[dir]
	h.held[dir] = true
	h.lastSeen[dir] = now
	return released
}

// Expire releases every direction whose last press or repeat is too old
// A press without repeats yet gets the repeat delay, later repeats get the window
func (h *HoldTracker) Expire(now time.Time) []engine.Direction {
	h.mu.Lock()
	defer h.mu.Unlock()

	var released []engine.Direction
	for _, dir := range []engine.Direction{engine.DirectionUp, engine.DirectionDown} {
		limit := h.delay
		if h.repeating[dir] {
			limit = h.window
		}
		if h.held[dir] && now.Sub(h.lastSeen[dir]) >= limit {
			h.held[dir] = false
			released = append(released, dir)
		}
	}
	return released
}

// Held reports whether dir is currently held
func (h *HoldTracker) Held(dir engine.Direction) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.held[dir]
}

// Reset releases all directions
func (h *HoldTracker) Reset() {
	h.mu.Lock()
	h.held = [2]bool{}
	h.repeating = [2]bool{}
	h.mu.Unlock()
}

// Window returns the release window between repeats
func (h *HoldTracker) Window() time.Duration {
	return h.window
}

func opposite(dir engine.Direction) engine.Direction {
	if dir == engine.DirectionUp {
		return engine.DirectionDown
	}
	return engine.DirectionUp
}
