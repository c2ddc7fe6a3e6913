package event

import (
	"github.com/lixenwraith/vi-pong/component"
)

// EventType represents the type of game event
type EventType int

const (
	// === Simulation Event ===

	// EventPaddleHit signals the active paddle returned the ball
	// Trigger: GameState.Tick collision step
	// Consumer: Presenter (hit cue) | Side: hitting paddle
	EventPaddleHit EventType = iota

	// EventPointScored signals the ball crossed a vertical boundary
	// Trigger: GameState.Tick scoring step, ball already reset
	// Consumer: Presenter (score cue) | Side: scoring paddle
	EventPointScored

	// EventMatchWon signals a score reached the win target
	// Trigger: GameState.Tick win check, match already restarted
	// Consumer: Presenter (announcement) | Side: winner, Final: state before restart
	EventMatchWon

	// === Command Notification ===

	// EventPauseToggled signals the paused flag flipped
	// Trigger: GameState.TogglePause | Value: 1 paused, 0 running
	EventPauseToggled

	// EventMuteToggled signals the muted flag flipped
	// Trigger: GameState.ToggleMute | Value: 1 muted, 0 audible
	EventMuteToggled

	// EventRestart signals scores and positions were reset
	// Trigger: GameState.Restart
	EventRestart

	// EventWinTargetChanged signals a new "game of N" target
	// Trigger: GameState.SetWinTarget | Value: applied target
	EventWinTargetChanged
)

var eventNames = map[EventType]string{
	EventPaddleHit:        "PaddleHit",
	EventPointScored:      "PointScored",
	EventMatchWon:         "MatchWon",
	EventPauseToggled:     "PauseToggled",
	EventMuteToggled:      "MuteToggled",
	EventRestart:          "Restart",
	EventWinTargetChanged: "WinTargetChanged",
}

// String returns the event name used in logs and on the spectator feed
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single engine or command notification
type GameEvent struct {
	Type  EventType
	Side  component.Side
	Tick  uint64
	Value int

	// Final is only set on EventMatchWon
	Final *component.Snapshot
}
