package render

import (
	"fmt"
	"log"
	"sync"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/event"
)

// FrameSource publishes snapshots and can be held while an announcement is open
type FrameSource interface {
	Frames() <-chan struct{}
	Snapshot() component.Snapshot
	SetHold(held bool)
}

// Presenter reacts to engine events and feeds frames to every sink
// It owns the win announcement: the source is held until input dismisses it
type Presenter struct {
	source FrameSource
	router *event.Router
	player audio.Player
	sinks  []FrameSink

	// muted follows EventMuteToggled in event order, so cues emitted before a toggle still play
	muted bool

	mu     sync.Mutex
	banner string
	final  *component.Snapshot

	redraw chan struct{}
}

// NewPresenter creates a presenter and registers it on router
// player may be nil for silent operation
func NewPresenter(source FrameSource, router *event.Router, player audio.Player, sinks ...FrameSink) *Presenter {
	if player == nil {
		player = audio.Silent{}
	}
	p := &Presenter{
		source: source,
		router: router,
		player: player,
		sinks:  sinks,
		muted:  source.Snapshot().Match.Muted,
		redraw: make(chan struct{}, 1),
	}
	router.Register(p)
	return p
}

// AddSink attaches another render surface, call before Run
func (p *Presenter) AddSink(s FrameSink) {
	p.sinks = append(p.sinks, s)
}

// EventTypes implements event.Handler
func (p *Presenter) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPaddleHit,
		event.EventPointScored,
		event.EventMatchWon,
		event.EventMuteToggled,
	}
}

// HandleEvent implements event.Handler
func (p *Presenter) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPaddleHit:
		if !p.muted {
			p.player.PlayHit()
		}
	case event.EventPointScored:
		if !p.muted {
			p.player.PlayScore()
		}
	case event.EventMuteToggled:
		p.muted = ev.Value != 0
	case event.EventMatchWon:
		p.announce(ev)
	}
}

// announce opens the win announcement over the final score
func (p *Presenter) announce(ev event.GameEvent) {
	p.mu.Lock()
	p.banner = WinMessage(ev.Side)
	p.final = ev.Final
	p.mu.Unlock()

	p.source.SetHold(true)
	log.Printf("match won by %s", ev.Side)
}

// Dismiss closes the announcement and resumes the source
// Returns false when no announcement was open
func (p *Presenter) Dismiss() bool {
	p.mu.Lock()
	open := p.banner != ""
	p.banner = ""
	p.final = nil
	p.mu.Unlock()

	if !open {
		return false
	}
	p.source.SetHold(false)
	p.Redraw()
	return true
}

// Announcing reports whether an announcement is open
func (p *Presenter) Announcing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.banner != ""
}

// Redraw asks for a repaint without a new frame, e.g. after a resize
func (p *Presenter) Redraw() {
	select {
	case p.redraw <- struct{}{}:
	default:
	}
}

// Present dispatches pending events then draws the current frame on every sink
func (p *Presenter) Present() {
	p.router.DispatchAll()
	f := p.currentFrame()
	for _, s := range p.sinks {
		s.Draw(f)
	}
}

// currentFrame returns the frozen final snapshot while announcing, the latest otherwise
func (p *Presenter) currentFrame() Frame {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.final != nil {
		return Frame{Snapshot: *p.final, Banner: p.banner}
	}
	return Frame{Snapshot: p.source.Snapshot(), Banner: p.banner}
}

// Run presents on every frame signal until stop is closed
func (p *Presenter) Run(stop <-chan struct{}) {
	p.Present()
	for {
		select {
		case <-stop:
			return
		case <-p.source.Frames():
			p.Present()
		case <-p.redraw:
			p.Present()
		}
	}
}

// WinMessage is the announcement text for a winner
func WinMessage(side component.Side) string {
	return fmt.Sprintf("%s won the game.", side)
}
