package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Scheduler is the slice of engine.ClockScheduler the controller drives
type Scheduler interface {
	Submit(cmd engine.Command) bool
	RequestTick() bool
}

// Announcer is a modal presentation that any key dismisses
type Announcer interface {
	// Dismiss closes the modal and reports whether one was showing
	Dismiss() bool
}

// Controller turns key events into scheduler commands
type Controller struct {
	keys      *KeyTable
	hold      *HoldTracker
	sched     Scheduler
	clock     engine.TimeProvider
	announcer Announcer
}

// NewController creates a controller; announcer may be nil
func NewController(keys *KeyTable, hold *HoldTracker, sched Scheduler, clock engine.TimeProvider, announcer Announcer) *Controller {
	return &Controller{
		keys:      keys,
		hold:      hold,
		sched:     sched,
		clock:     clock,
		announcer: announcer,
	}
}

// HandleKey processes one key event, returns true when the user asked to quit
func (c *Controller) HandleKey(ev *tcell.EventKey) bool {
	action, ok := c.keys.Lookup(ev)
	if ok && action.Intent == IntentQuit {
		return true
	}

	// Acknowledging the announcement consumes the key
	if c.announcer != nil && c.announcer.Dismiss() {
		c.hold.Reset()
		c.sched.Submit(releaseAll)
		return false
	}

	if !ok {
		return false
	}
	return c.Apply(action)
}

// Apply executes a resolved action, returns true for quit
func (c *Controller) Apply(action Action) bool {
	switch action.Intent {
	case IntentUp:
		c.press(engine.DirectionUp)
	case IntentDown:
		c.press(engine.DirectionDown)
	case IntentPause:
		c.sched.Submit(func(gs *engine.GameState) []event.GameEvent {
			return []event.GameEvent{gs.TogglePause()}
		})
	case IntentMute:
		c.sched.Submit(func(gs *engine.GameState) []event.GameEvent {
			return []event.GameEvent{gs.ToggleMute()}
		})
	case IntentRestart:
		c.sched.Submit(func(gs *engine.GameState) []event.GameEvent {
			return []event.GameEvent{gs.Restart()}
		})
	case IntentWinTarget:
		n := action.Value
		c.sched.Submit(func(gs *engine.GameState) []event.GameEvent {
			return []event.GameEvent{gs.SetWinTarget(n)}
		})
	case IntentCycleWinTarget:
		c.sched.Submit(func(gs *engine.GameState) []event.GameEvent {
			return []event.GameEvent{gs.SetWinTarget(NextWinTarget(gs.Match.WinTarget))}
		})
	case IntentQuit:
		return true
	}
	return false
}

// press holds dir and asks for an immediate tick when the intent turns on
func (c *Controller) press(dir engine.Direction) {
	released := c.hold.Press(dir, c.clock.Now())
	sched := c.sched
	sched.Submit(func(gs *engine.GameState) []event.GameEvent {
		for _, r := range released {
			gs.SetIntent(r, false)
		}
		if gs.SetIntent(dir, true) {
			sched.RequestTick()
		}
		return nil
	})
}

// ExpireHolds releases directions whose key repeats stopped, returns how many were released
func (c *Controller) ExpireHolds() int {
	released := c.hold.Expire(c.clock.Now())
	if len(released) == 0 {
		return 0
	}
	c.sched.Submit(func(gs *engine.GameState) []event.GameEvent {
		for _, r := range released {
			gs.SetIntent(r, false)
		}
		return nil
	})
	return len(released)
}

// RunHoldExpiry polls for released keys until stop is closed
func (c *Controller) RunHoldExpiry(stop <-chan struct{}) {
	interval := c.hold.Window() / 4
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.ExpireHolds()
		}
	}
}

// NextWinTarget returns the option following current, wrapping around
// Targets outside the option list restart the cycle at the first option
func NextWinTarget(current int) int {
	opts := parameter.WinTargetOptions
	for i, n := range opts {
		if n == current {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

func releaseAll(gs *engine.GameState) []event.GameEvent {
	gs.SetIntent(engine.DirectionUp, false)
	gs.SetIntent(engine.DirectionDown, false)
	return nil
}
