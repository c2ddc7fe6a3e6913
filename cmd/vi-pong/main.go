package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/network"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
)

// ErrNotTerminal is returned when stdin or stdout is redirected
var ErrNotTerminal = errors.New("vi-pong needs an interactive terminal")

// options are the command-line flags
type options struct {
	configPath string
	win        int
	tick       time.Duration
	spectate   string
	mute       bool
	noAudio    bool
	debug      bool
}

// parseFlags registers and parses flags on fs
func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "Path to TOML config file (default: $VI_PONG_CONFIG or the user config dir)")
	fs.IntVar(&o.win, "win", 0, "Points needed to win the game (game of N)")
	fs.DurationVar(&o.tick, "tick", 0, "Simulation tick interval")
	fs.StringVar(&o.spectate, "spectate", "", "Serve a read-only spectator feed on this address, e.g. :8080")
	fs.BoolVar(&o.mute, "mute", false, "Start with sound muted")
	fs.BoolVar(&o.noAudio, "no-audio", false, "Do not open the audio device")
	fs.BoolVar(&o.debug, "debug", false, "Write logs to logs/vi-pong.log")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

// apply overrides cfg with the flags that were set explicitly
func (o *options) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "win":
			cfg.WinTarget = o.win
		case "tick":
			cfg.TickInterval = config.Duration{Duration: o.tick}
		case "spectate":
			cfg.Spectator.Address = o.spectate
		case "no-audio":
			cfg.Audio.Enabled = !o.noAudio
		case "debug":
			cfg.Debug = o.debug
		}
	})
}

func main() {
	fs := flag.NewFlagSet("vi-pong", flag.ExitOnError)
	opts, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(2)
	}
	opts.apply(fs, cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, opts.mute); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		log.Printf("exit with error: %v", err)
		os.Exit(1)
	}
}

// run wires the game and blocks until the player quits
func run(cfg *config.Config, startMuted bool) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	keys, err := input.ApplyBindings(input.DefaultKeyTable(), cfg.Keys)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	core.SetCrashTerminal(screen)
	screen.HideCursor()

	reg := status.NewRegistry()

	// Simulation
	state := engine.NewGameState(cfg.WinTarget)
	if startMuted {
		state.ToggleMute()
	}
	queue := event.NewQueue()
	defer func() { log.Printf("session metrics: %v, undelivered events: %d", reg.Export(), queue.Len()) }()
	router := event.NewRouter(queue)
	clock := engine.NewMonotonicTimeProvider()
	sched := engine.NewClockScheduler(state, queue, clock, cfg.TickInterval.Duration, cfg.FrameGuard(), reg)

	// Audio, optional
	var player audio.Player = audio.Silent{}
	sound := audio.NewSoundManager(cfg.Audio, reg)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable: %v (continuing without audio)", err)
	} else {
		player = sound
		defer sound.Cleanup()
	}

	// Presentation
	presenter := render.NewPresenter(sched, router, player, render.NewTerminalRenderer(screen))

	if cfg.Spectator.Enabled() {
		spectators := network.NewService(cfg.Spectator, reg)
		if err := spectators.Start(); err != nil {
			return err
		}
		defer spectators.Stop()
		presenter.AddSink(spectators)
	}

	controller := input.NewController(keys, input.NewHoldTracker(cfg.RepeatDelay.Duration, cfg.HoldWindow.Duration), sched, clock, presenter)

	// Background loops stop before the screen is finalized
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	core.Go(func() {
		defer wg.Done()
		presenter.Run(stop)
	})
	core.Go(func() {
		defer wg.Done()
		controller.RunHoldExpiry(stop)
	})
	defer func() {
		close(stop)
		wg.Wait()
	}()

	sched.Start()
	defer sched.Stop()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			presenter.Redraw()
		case *tcell.EventKey:
			if controller.HandleKey(ev) {
				return nil
			}
		}
	}
}
