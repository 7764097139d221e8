package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-astar/ai"
	"snake-astar/config"
	"snake-astar/game"
	"snake-astar/ui"
)

type options struct {
	cfg      config.Config
	manual   bool
	headless bool
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := parseLogLevel(opts.cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if opts.headless {
		runHeadless(opts.cfg, logger)
		return
	}
	runWindowed(opts, logger)
}

// parseFlags loads the optional config file and applies explicitly set
// flags on top of it.
func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")
	speed := fs.Int("speed", 0, "Tick interval in milliseconds (lower = faster)")
	width := fs.Int("width", 0, "Grid width in cells")
	height := fs.Int("height", 0, "Grid height in cells")
	manual := fs.Bool("manual", false, "Start with keyboard control instead of the autopilot")
	headless := fs.Bool("headless", false, "Run autopilot episodes without a window")
	episodes := fs.Int("episodes", 0, "Episodes to play in headless mode")
	seed := fs.Uint64("seed", 0, "Random seed (0 = time based)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return options{}, err
		}
		cfg = loaded
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["speed"] {
		cfg.Tick = time.Duration(*speed) * time.Millisecond
	}
	if set["width"] {
		cfg.Width = *width
	}
	if set["height"] {
		cfg.Height = *height
	}
	if set["manual"] {
		cfg.Autopilot.Enabled = !*manual
	}
	if set["episodes"] {
		cfg.Headless.Episodes = *episodes
	}
	if set["seed"] {
		cfg.Seed = *seed
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return options{}, fmt.Errorf("flags: %w", err)
	}

	return options{cfg: cfg, manual: !cfg.Autopilot.Enabled, headless: *headless}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}

func newAutopilot(cfg config.Config, logger *slog.Logger) *ai.Autopilot {
	// Validate already rejected unknown policies.
	policy, _ := ai.ParseNoPathPolicy(cfg.Autopilot.NoPathPolicy)
	return ai.NewAutopilot(policy, logger, cfg.SearchOptions()...)
}

func runHeadless(cfg config.Config, logger *slog.Logger) {
	summary := game.Simulate(cfg.Grid(), cfg.Seed, cfg.Headless.Episodes, cfg.Headless.MaxTicks,
		newAutopilot(cfg, logger), logger)
	logger.Info("simulation finished",
		"episodes", summary.Episodes,
		"wins", summary.Wins,
		"best", summary.Best,
		"average", summary.Average,
		"steps", summary.Steps,
		"causes", summary.Causes,
		"elapsed", summary.Elapsed.Round(time.Millisecond))
}

func runWindowed(opts options, logger *slog.Logger) {
	cfg := opts.cfg
	manual := ai.NewManual()
	pilot := newAutopilot(cfg, logger)

	autopilot := !opts.manual
	var controller ai.Controller = pilot
	if !autopilot {
		controller = manual
	}
	g := game.NewGame(cfg.Grid(), cfg.Seed, controller, logger)

	renderer := ui.NewRenderer(cfg.Grid(), cfg.CellSize)
	w, h := renderer.WindowSize()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(w, h, "Snake - A* autopilot")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	paused := false
	lastUpdate := time.Now()
	for !rl.WindowShouldClose() {
		input := ui.PollInput()
		if input.Has(ui.ActionQuit) {
			break
		}
		if input.Has(ui.ActionToggleAutopilot) {
			autopilot = !autopilot
			if autopilot {
				g.SetController(pilot)
			} else {
				manual.Reset()
				g.SetController(manual)
			}
			logger.Info("controller switched", "autopilot", autopilot)
		}
		if input.Has(ui.ActionPause) {
			paused = !paused
		}
		if input.Has(ui.ActionRestart) {
			g.Restart()
			paused = false
		}
		for _, dir := range input.Directions {
			manual.Press(dir)
		}

		if !paused && time.Since(lastUpdate) >= cfg.Tick {
			g.Update()
			lastUpdate = time.Now()
		}

		frame := ui.Frame{Autopilot: autopilot, Paused: paused}
		if autopilot {
			frame.Path = pilot.LastPath()
		}
		renderer.Draw(g, frame)
	}
}
