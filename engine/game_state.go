package engine

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
)

// Direction is a held movement intent of the user paddle
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}
	return "up"
}

// GameState owns every mutable piece of the simulation
// Not safe for concurrent use: the ClockScheduler goroutine is the single owner,
// other goroutines reach it through ClockScheduler.Submit
type GameState struct {
	// ===== ENTITIES =====
	User component.Paddle
	AI   component.Paddle
	Ball component.Ball
	Net  component.Net

	// ===== MATCH =====
	Match component.Match

	// ===== INTENTS =====
	up, down bool

	// Tick counter, advanced by every executed Tick
	tick uint64
}

// NewGameState creates a fresh match with the given win target, clamped to >= 1
func NewGameState(winTarget int) *GameState {
	gs := &GameState{
		User: component.NewUserPaddle(),
		AI:   component.NewAIPaddle(),
		Ball: component.NewBall(),
		Net:  component.NewNet(),
	}
	gs.Match.WinTarget = clampWinTarget(winTarget)
	return gs
}

func clampWinTarget(n int) int {
	if n < parameter.MinWinTarget {
		return parameter.MinWinTarget
	}
	return n
}

// Tick advances the world by one fixed step and returns the events it produced, in order
// Both position integrations are intentional: the ball travels twice its velocity per tick
func (gs *GameState) Tick() []event.GameEvent {
	gs.tick++
	var evs []event.GameEvent

	// 1. Position update (pre)
	gs.Ball.Integrate()

	// 2. Win check, scores landed on a previous tick
	if winner, ok := gs.winner(); ok {
		final := gs.Snapshot()
		evs = append(evs, event.GameEvent{
			Type:  event.EventMatchWon,
			Side:  winner,
			Tick:  gs.tick,
			Final: &final,
		})
		gs.rematch()
	}

	// 3. User paddle
	physics.StepPaddle(&gs.User, gs.up, gs.down, parameter.CourtHeight)

	// 4. Wall bounce, no position correction
	if physics.HitsWall(gs.Ball, parameter.CourtHeight) {
		gs.Ball.VelocityY = -gs.Ball.VelocityY
	}

	// 5. Scoring
	if scorer, ok := physics.Scorer(gs.Ball, parameter.CourtWidth); ok {
		gs.paddle(scorer).Score++
		gs.Ball.Reset()
		evs = append(evs, event.GameEvent{
			Type: event.EventPointScored,
			Side: scorer,
			Tick: gs.tick,
		})
	}

	// 6. Position update (post)
	gs.Ball.Integrate()

	// 7. AI tracking, unclamped
	physics.Track(&gs.AI, gs.Ball.Y, parameter.AITrackingGain)

	// 8. Collision against the paddle on the ball's half
	active := gs.ActiveSide()
	paddle := gs.paddle(active)
	if physics.Overlaps(*paddle, gs.Ball) {
		physics.Reflect(&gs.Ball, active, physics.BounceAngle(*paddle, gs.Ball))
		evs = append(evs, event.GameEvent{
			Type: event.EventPaddleHit,
			Side: active,
			Tick: gs.tick,
		})
	}

	return evs
}

// ActiveSide returns the side whose half of the court the ball occupies
func (gs *GameState) ActiveSide() component.Side {
	if gs.Ball.X < parameter.CourtWidth/2 {
		return component.SideUser
	}
	return component.SideAI
}

func (gs *GameState) winner() (component.Side, bool) {
	if gs.User.Score == gs.Match.WinTarget {
		return component.SideUser, true
	}
	if gs.AI.Score == gs.Match.WinTarget {
		return component.SideAI, true
	}
	return component.SideUser, false
}

func (gs *GameState) paddle(side component.Side) *component.Paddle {
	if side == component.SideAI {
		return &gs.AI
	}
	return &gs.User
}

// rematch starts the next match after a win
// The ball goes through the point reset, so the serve reverses the last rally direction
func (gs *GameState) rematch() {
	gs.User.Reset()
	gs.AI.Reset()
	gs.Ball.Reset()
}

// restart zeroes scores, homes both paddles and serves a fresh ball
// The serve does not depend on the previous ball, so repeated restarts converge
func (gs *GameState) restart() {
	gs.User.Reset()
	gs.AI.Reset()
	gs.Ball = component.NewBall()
}

// ===== COMMANDS =====

// Restart begins a new match with the current win target
func (gs *GameState) Restart() event.GameEvent {
	gs.restart()
	return event.GameEvent{Type: event.EventRestart, Tick: gs.tick}
}

// SetWinTarget applies a new "game of N" target and restarts
// Targets below 1 are clamped to 1
func (gs *GameState) SetWinTarget(n int) event.GameEvent {
	gs.Match.WinTarget = clampWinTarget(n)
	gs.restart()
	return event.GameEvent{Type: event.EventWinTargetChanged, Tick: gs.tick, Value: gs.Match.WinTarget}
}

// TogglePause flips the paused flag
func (gs *GameState) TogglePause() event.GameEvent {
	gs.Match.Paused = !gs.Match.Paused
	return event.GameEvent{Type: event.EventPauseToggled, Tick: gs.tick, Value: boolValue(gs.Match.Paused)}
}

// ToggleMute flips the muted flag
func (gs *GameState) ToggleMute() event.GameEvent {
	gs.Match.Muted = !gs.Match.Muted
	return event.GameEvent{Type: event.EventMuteToggled, Tick: gs.tick, Value: boolValue(gs.Match.Muted)}
}

// SetIntent records a held or released direction
// Returns true when the intent turned on, the caller may then request an immediate tick
func (gs *GameState) SetIntent(dir Direction, active bool) bool {
	flag := &gs.up
	if dir == DirectionDown {
		flag = &gs.down
	}
	turnedOn := active && !*flag
	*flag = active
	return turnedOn
}

// Intents returns the currently held directions
func (gs *GameState) Intents() (up, down bool) {
	return gs.up, gs.down
}

// TickCount returns the number of executed ticks
func (gs *GameState) TickCount() uint64 {
	return gs.tick
}

// Snapshot returns a value copy for readers outside the owning goroutine
func (gs *GameState) Snapshot() component.Snapshot {
	return component.Snapshot{
		Tick:  gs.tick,
		User:  gs.User,
		AI:    gs.AI,
		Ball:  gs.Ball,
		Net:   gs.Net,
		Match: gs.Match,
	}
}

func boolValue(b bool) int {
	if b {
		return 1
	}
	return 0
}
