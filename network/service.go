package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
)

// Service runs the read-only spectator feed over HTTP
// It is a render.FrameSink: every presented frame is broadcast to spectators
type Service struct {
	config *Config
	hub    *Hub
	reg    *status.Registry

	server   *http.Server
	listener net.Listener

	running atomic.Bool
	wg      sync.WaitGroup
}

// Health is the /health response body
type Health struct {
	Spectators int                `json:"spectators"`
	Metrics    map[string]float64 `json:"metrics"`
}

// NewService creates a spectator service, cfg nil means DefaultConfig
func NewService(cfg *Config, reg *status.Registry) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Service{
		config: cfg,
		hub:    NewHub(cfg, reg),
		reg:    reg,
	}
}

// Handler returns the HTTP routes: /ws for spectators, /health for counters
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.hub.HandleWS)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Health{
		Spectators: s.hub.PeerCount(),
		Metrics:    s.reg.Export(),
	}); err != nil {
		log.Printf("health encode error: %v", err)
	}
}

// Start binds the configured address and serves in the background
// A disabled config is a no-op
func (s *Service) Start() error {
	if !s.config.Enabled() {
		return nil
	}
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("spectator listen %s: %w", s.config.Address, err)
	}
	s.listener = ln
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.wg.Add(1)
	core.Go(func() {
		defer s.wg.Done()
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectator server error: %v", err)
		}
	})

	log.Printf("spectator feed listening on %s", ln.Addr())
	return nil
}

// Stop disconnects spectators and shuts the server down
func (s *Service) Stop() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	s.hub.CloseAll()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	err := s.server.Shutdown(ctx)
	s.wg.Wait()
	return err
}

// Addr returns the bound address, empty when not listening
func (s *Service) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// PeerCount returns connected spectator count
func (s *Service) PeerCount() int {
	return s.hub.PeerCount()
}

// Draw implements render.FrameSink
func (s *Service) Draw(f render.Frame) {
	data, err := Encode(FrameMessage(f.Snapshot, f.Banner))
	if err != nil {
		log.Printf("spectator encode error: %v", err)
		return
	}
	s.hub.Broadcast(data)
}
