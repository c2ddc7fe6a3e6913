package network

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
)

// PeerID uniquely identifies a connected spectator
type PeerID uint32

// ErrPeerClosed is returned by the write loop after Close
var ErrPeerClosed = errors.New("peer closed")

// Peer is a connected spectator
type Peer struct {
	ID   PeerID
	Addr string

	conn *websocket.Conn

	// Send queue, oldest frame is dropped when full
	sendCh  chan []byte
	dropped atomic.Uint64

	// Lifecycle
	closeCh   chan struct{}
	closeOnce sync.Once
}

// newPeer wraps an accepted websocket connection
func newPeer(id PeerID, addr string, conn *websocket.Conn, sendQueueSize int) *Peer {
	return &Peer{
		ID:      id,
		Addr:    addr,
		conn:    conn,
		sendCh:  make(chan []byte, max(sendQueueSize, 1)),
		closeCh: make(chan struct{}),
	}
}

// Send queues data without blocking
// Returns false when an older frame had to be dropped to make room
func (p *Peer) Send(data []byte) bool {
	select {
	case p.sendCh <- data:
		return true
	default:
	}

	// Full: spectators only care about the newest state
	select {
	case <-p.sendCh:
		p.dropped.Add(1)
	default:
	}
	select {
	case p.sendCh <- data:
	default:
		p.dropped.Add(1)
	}
	return false
}

// Dropped returns the number of frames discarded for this peer
func (p *Peer) Dropped() uint64 {
	return p.dropped.Load()
}

// writeLoop drains the send queue until the peer or ctx closes
func (p *Peer) writeLoop(ctx context.Context, timeout time.Duration) error {
	for {
		select {
		case data := <-p.sendCh:
			wctx, cancel := context.WithTimeout(ctx, timeout)
			err := p.conn.Write(wctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				return err
			}
		case <-p.closeCh:
			return ErrPeerClosed
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close ends the connection with a normal closure
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.conn.Close(websocket.StatusNormalClosure, "")
	})
}

// Done is closed when the peer is closed
func (p *Peer) Done() <-chan struct{} {
	return p.closeCh
}
