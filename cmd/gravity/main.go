// cmd/gravity/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/EngoEngine/engo"
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-gravity/pkg/audio"
	"github.com/opd-ai/go-gravity/pkg/config"
	"github.com/opd-ai/go-gravity/pkg/engine"
	"github.com/opd-ai/go-gravity/pkg/event"
	"github.com/opd-ai/go-gravity/pkg/logging"
	"github.com/opd-ai/go-gravity/pkg/render"
	engorender "github.com/opd-ai/go-gravity/pkg/render/engo"
)

type options struct {
	configPath string
	scenario   string
	renderer   string
	width      int
	height     int
	fullscreen bool
	mute       bool
	logPath    string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "config.json", "Path to configuration file (.json, .yaml or .yml)")
	flag.StringVar(&opts.scenario, "scenario", "", "Built-in scenario to load over the configuration")
	flag.StringVar(&opts.renderer, "renderer", "terminal", "Renderer type: 'terminal', 'engo' or 'headless'")
	flag.IntVar(&opts.width, "width", 0, "Window width (Engo only, overrides config)")
	flag.IntVar(&opts.height, "height", 0, "Window height (Engo only, overrides config)")
	flag.BoolVar(&opts.fullscreen, "fullscreen", false, "Run in fullscreen mode (Engo only)")
	flag.BoolVar(&opts.mute, "mute", false, "Disable the engine hum")
	flag.StringVar(&opts.logPath, "log", "", "Write logs to this file instead of stdout")
	list := flag.Bool("list-scenarios", false, "Print the built-in scenarios and exit")
	flag.Parse()

	if *list {
		for _, key := range config.ListScenarios() {
			s := config.GetScenario(key)
			fmt.Printf("%-10s %s\n", key, s.Description)
		}
		return
	}

	if err := run(opts); err != nil {
		log.Fatalf("gravity: %v", err)
	}
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithRunID(ctx, logging.GenerateRunID())

	bus := event.NewEventBus()
	sim, err := engine.NewSimulation(cfg, bus, logger)
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}

	if cfg.Audio.Enabled && !opts.mute {
		hum, err := audio.NewEngineHum(cfg.Audio, logger)
		if err != nil {
			logger.Warn(ctx, "engine hum disabled", "error", err.Error())
		} else {
			if err := hum.Initialize(); err != nil {
				// Non-fatal, the simulation runs without sound
				logger.Warn(ctx, "audio initialization failed", "error", err.Error())
			}
			hum.Attach(bus)
			defer hum.Close()
		}
	}

	switch opts.renderer {
	case "engo":
		runEngo(ctx, cfg, sim, logger)
		return nil
	case "headless":
		return sim.Run(ctx, engine.InputFunc(func() engine.Input { return engine.Input{} }),
			render.NewNullRenderer(logger))
	case "terminal":
		return runTerminal(ctx, cfg, sim)
	default:
		return fmt.Errorf("unknown renderer %q", opts.renderer)
	}
}

func loadConfig(opts options) (*config.SimulationConfig, error) {
	var cfg *config.SimulationConfig
	if _, err := os.Stat(opts.configPath); errors.Is(err, os.ErrNotExist) {
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	if opts.scenario != "" {
		if err := config.ApplyScenario(cfg, opts.scenario); err != nil {
			return nil, err
		}
	}
	if opts.width > 0 {
		cfg.Window.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Window.Height = opts.height
	}
	if opts.fullscreen {
		cfg.Window.Fullscreen = true
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger picks the log destination. The terminal renderer owns stdout,
// so without -log its logs are dropped.
func newLogger(opts options) (*logging.Logger, func(), error) {
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return logging.NewLoggerWithWriter(f), func() { f.Close() }, nil
	}
	if opts.renderer == "terminal" {
		return logging.NewLoggerWithWriter(io.Discard), func() {}, nil
	}
	return logging.NewLogger(), func() {}, nil
}

// runEngo blocks until the window is closed or ctx ends
func runEngo(ctx context.Context, cfg *config.SimulationConfig, sim *engine.Simulation, logger *logging.Logger) {
	done := make(chan struct{})
	defer close(done)
	go exitOnCancel(ctx, done, engo.Exit)

	scene := engorender.NewGameScene(ctx, sim, logger)
	engo.Run(engo.RunOptions{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      true,
	}, scene)
}

// exitOnCancel calls exit when ctx ends before done is closed.
func exitOnCancel(ctx context.Context, done <-chan struct{}, exit func()) {
	select {
	case <-ctx.Done():
		exit()
	case <-done:
	}
}

func runTerminal(ctx context.Context, cfg *config.SimulationConfig, sim *engine.Simulation) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	input := render.NewTerminalInput(cfg.HoldWindow())
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !input.HandleEvent(ev) {
				cancel()
				return
			}
		}
	}()

	return sim.Run(ctx, input, render.NewTerminalRenderer(screen, cfg.Terminal.Scale))
}
