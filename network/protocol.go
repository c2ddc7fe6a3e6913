package network

import (
	"encoding/json"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/parameter"
)

// MessageType identifies the semantic meaning of a message
type MessageType string

const (
	MsgHello MessageType = "hello" // First message, court geometry
	MsgFrame MessageType = "frame" // Snapshot after a tick or command
)

// Court describes the coordinate space of snapshots
type Court struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Message is the JSON envelope sent to spectators
type Message struct {
	Type   MessageType         `json:"type"`
	Tick   uint64              `json:"tick"`
	Banner string              `json:"banner,omitempty"`
	State  *component.Snapshot `json:"state,omitempty"`
	Court  *Court              `json:"court,omitempty"`
}

// HelloMessage returns the greeting carrying court geometry
func HelloMessage() Message {
	return Message{
		Type:  MsgHello,
		Court: &Court{Width: parameter.CourtWidth, Height: parameter.CourtHeight},
	}
}

// FrameMessage wraps a snapshot
func FrameMessage(snap component.Snapshot, banner string) Message {
	return Message{
		Type:   MsgFrame,
		Tick:   snap.Tick,
		Banner: banner,
		State:  &snap,
	}
}

// Encode serializes a message
func Encode(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// Decode parses a message
func Decode(data []byte) (Message, error) {
	var msg Message
	err := json.Unmarshal(data, &msg)
	return msg, err
}
