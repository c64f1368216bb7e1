// cmd/asteroids/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/assets"
	"github.com/opd-ai/go-asteroids/pkg/audio"
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
	engorender "github.com/opd-ai/go-asteroids/pkg/render/engo"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	assetsPath := flag.String("assets", "", "Hazard sprite directory or YAML manifest")
	rendererType := flag.String("renderer", "engo", "Renderer type: 'engo', 'terminal' or 'headless'")
	frames := flag.Int("frames", 600, "Frames to simulate in headless mode")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	cfg, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		os.Exit(1)
	}
	if *assetsPath != "" {
		cfg.Hazards.Assets = *assetsPath
	}

	logger = configureLogger(logger, cfg, *rendererType)

	if err := run(ctx, logger, cfg, *rendererType, *frames, *mute); err != nil {
		logger.Error(ctx, "Game exited with error", err,
			"renderer", *rendererType,
		)
		os.Exit(1)
	}
}

func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.GameConfig, error) {
	var cfg *config.GameConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, logging.WrapError(err, "apply environment overrides")
	}
	return cfg, nil
}

// configureLogger rebuilds the logger from the config file settings unless
// the environment already chose them. The terminal renderer owns the tty, so
// its logs go to a file or nowhere.
func configureLogger(logger *logging.Logger, cfg *config.GameConfig, rendererType string) *logging.Logger {
	if os.Getenv(logging.EnvLogLevel) != "" && rendererType != "terminal" {
		return logger
	}

	var outputs []string
	if cfg.Logging.Output != "" {
		outputs = append(outputs, cfg.Logging.Output)
	} else if rendererType == "terminal" {
		return logging.NewNopLogger()
	}

	l, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, outputs...)
	if err != nil {
		logger.Warn(context.Background(), "Falling back to default logger",
			"error", err.Error(),
		)
		return logger
	}
	return l
}

func loadCatalog(cfg *config.GameConfig) (*assets.Catalog, error) {
	if cfg.Hazards.Assets == "" {
		return assets.Default(), nil
	}
	return assets.Load(cfg.Hazards.Assets)
}

func run(ctx context.Context, logger *logging.Logger, cfg *config.GameConfig, rendererType string, frames int, mute bool) error {
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return logging.WrapError(err, "load hazard catalog %q", cfg.Hazards.Assets)
	}

	game, err := engine.NewGame(cfg,
		engine.WithCatalog(catalog),
		engine.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if !mute && rendererType != "headless" {
		sound := audio.NewSoundManager(logger, nil)
		if err := sound.Initialize(); err != nil {
			logger.Warn(ctx, "Sound disabled", "error", err.Error())
		}
		sound.Attach(game.EventBus)
		defer sound.Cleanup()
	}

	logger.Info(ctx, "Starting game",
		"renderer", rendererType,
		"variants", catalog.Len(),
		"tick_rate", cfg.Simulation.TickRate,
	)

	switch rendererType {
	case "engo":
		engorender.Run(engorender.NewGameScene(game, catalog, logger), cfg)
		return nil
	case "terminal":
		return runTerminal(game, cfg)
	case "headless":
		return runHeadless(ctx, logger, game, cfg, frames)
	default:
		return fmt.Errorf("unknown renderer %q", rendererType)
	}
}

func runTerminal(game *engine.Game, cfg *config.GameConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "initialize terminal screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	tr := render.NewTerminalRenderer(screen, game.Bounds())
	input := render.NewTerminalInput(cfg.Simulation.DilationSlow, cfg.Simulation.DilationFast)

	done := make(chan struct{})
	defer close(done)
	events := pumpEvents(screen.PollEvent, done)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	clock := engine.NewFrameClock(engine.MaxFrameTime)
	var meter fpsMeter

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			input.HandleEvent(ev)
		case <-ticker.C:
			dt := clock.Elapsed()
			if game.Advance(dt, input.Commands()) {
				return nil
			}
			tr.Frame(game, meter.Tick(dt))
		}
	}
}

// pumpEvents forwards polled events until poll returns nil or done is
// closed. The returned channel is closed when the pump stops.
func pumpEvents(poll func() tcell.Event, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := poll()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// runHeadless starts a run immediately and steps it with a fixed frame time.
func runHeadless(ctx context.Context, logger *logging.Logger, game *engine.Game, cfg *config.GameConfig, frames int) error {
	if frames <= 0 {
		return errors.New("headless mode needs a positive frame count")
	}

	nr := render.NewNullRenderer(logger)
	frameTime := cfg.TickDuration()

	game.Start()
	for i := 0; i < frames && game.Started; i++ {
		if game.Advance(frameTime, engine.Commands{}) {
			break
		}
		render.Draw(nr, game)
	}

	state := game.GetGameState()
	logger.Info(ctx, "Headless run finished",
		"frames", nr.Frames(),
		"ticks", state.Tick,
		"score", state.Score,
		"lives", state.Lives,
		"hazards", state.Population,
		"won", state.Won,
	)
	return nil
}

// fpsMeter reports the frame count of the last whole second.
type fpsMeter struct {
	elapsed float64
	frames  int
	fps     int
}

func (m *fpsMeter) Tick(dt float64) int {
	m.elapsed += dt
	m.frames++
	if m.elapsed >= 1 {
		m.fps = m.frames
		m.frames = 0
		m.elapsed = 0
	}
	return m.fps
}
