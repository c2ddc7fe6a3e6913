package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the simulation step interval (~28.6 Hz)
	TickInterval = 35 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Input
const (
	// RepeatDelay is how long a fresh press stays held before the first key repeat arrives
	// Covers the usual OS auto-repeat delay of 250-660ms
	RepeatDelay = 600 * time.Millisecond

	// HoldWindow is how long a direction stays held between key repeats
	// Terminals report presses and repeats only, never releases
	HoldWindow = 120 * time.Millisecond
)
