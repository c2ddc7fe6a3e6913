package render

import "github.com/lixenwraith/vi-pong/component"

// Frame is what a sink draws: a snapshot plus an optional announcement
type Frame struct {
	Snapshot component.Snapshot
	Banner   string
}

// FrameSink is a render surface
// Draw must not retain the frame beyond the call
type FrameSink interface {
	Draw(f Frame)
}
