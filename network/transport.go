package network

import (
	"context"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/coder/websocket"

	"github.com/lixenwraith/vi-pong/status"
)

// Hub tracks spectator connections and fans frames out to them
type Hub struct {
	config *Config

	mu     sync.RWMutex
	peers  map[PeerID]*Peer
	nextID atomic.Uint32

	// latest encoded frame, sent to spectators on join
	latestMu sync.RWMutex
	latest   []byte

	statPeers   *atomic.Int64
	statDropped *atomic.Int64
}

// NewHub creates a hub, reg may be nil
func NewHub(cfg *Config, reg *status.Registry) *Hub {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Hub{
		config:      cfg,
		peers:       make(map[PeerID]*Peer),
		statPeers:   reg.Ints.Get(status.KeySpectators),
		statDropped: reg.Ints.Get(status.KeyFramesDrop),
	}
}

// HandleWS upgrades a spectator connection and serves it until it closes
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	if h.PeerCount() >= h.config.MaxPeers {
		http.Error(w, "too many spectators", http.StatusServiceUnavailable)
		return
	}

	opts := &websocket.AcceptOptions{}
	if len(h.config.OriginPatterns) > 0 {
		opts.OriginPatterns = h.config.OriginPatterns
	}

	conn, err := websocket.Accept(w, r, opts)
	if err != nil {
		log.Printf("spectator accept error: %v", err)
		return
	}

	// Spectators never send, any data message closes the connection
	ctx := conn.CloseRead(context.Background())

	peer := newPeer(PeerID(h.nextID.Add(1)), r.RemoteAddr, conn, h.config.SendQueueSize)
	h.add(peer)
	defer h.remove(peer)

	if hello, err := Encode(HelloMessage()); err == nil {
		peer.Send(hello)
	}
	if latest := h.latestFrame(); latest != nil {
		peer.Send(latest)
	}

	log.Printf("spectator %d connected from %s", peer.ID, peer.Addr)
	err = peer.writeLoop(ctx, h.config.WriteTimeout)
	log.Printf("spectator %d disconnected: %v", peer.ID, err)
}

// Broadcast stores data as the latest frame and queues it for every spectator
func (h *Hub) Broadcast(data []byte) {
	h.latestMu.Lock()
	h.latest = data
	h.latestMu.Unlock()

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, p := range h.peers {
		if !p.Send(data) {
			h.statDropped.Add(1)
		}
	}
}

// PeerCount returns connected spectator count
func (h *Hub) PeerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// CloseAll disconnects every spectator
func (h *Hub) CloseAll() {
	h.mu.RLock()
	peers := make([]*Peer, 0, len(h.peers))
	for _, p := range h.peers {
		peers = append(peers, p)
	}
	h.mu.RUnlock()

	for _, p := range peers {
		p.Close()
	}
}

func (h *Hub) latestFrame() []byte {
	h.latestMu.RLock()
	defer h.latestMu.RUnlock()
	return h.latest
}

func (h *Hub) add(p *Peer) {
	h.mu.Lock()
	h.peers[p.ID] = p
	h.mu.Unlock()
	h.statPeers.Add(1)
}

func (h *Hub) remove(p *Peer) {
	p.Close()
	h.mu.Lock()
	delete(h.peers, p.ID)
	h.mu.Unlock()
	h.statPeers.Add(-1)
}
