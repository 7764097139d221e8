package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"snake-astar/ai"
	"snake-astar/game/types"
	"snake-astar/pathfinding"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	CellSize int           `yaml:"cell_size"`
	Tick     time.Duration `yaml:"tick"`
	Seed     uint64        `yaml:"seed"`
	LogLevel string        `yaml:"log_level"`

	Autopilot AutopilotConfig `yaml:"autopilot"`
	Headless  HeadlessConfig  `yaml:"headless"`
}

type AutopilotConfig struct {
	Enabled       bool   `yaml:"enabled"`
	NoPathPolicy  string `yaml:"no_path_policy"`
	Heuristic     string `yaml:"heuristic"`
	MaxExpansions int    `yaml:"max_expansions"`
}

type HeadlessConfig struct {
	Episodes int `yaml:"episodes"`
	MaxTicks int `yaml:"max_ticks"`
}

// Default mirrors the classic board: 900x700 pixels of 15 pixel cells at
// five moves per second.
func Default() Config {
	return Config{
		Width:    60,
		Height:   46,
		CellSize: 15,
		Tick:     200 * time.Millisecond,
		LogLevel: "info",
		Autopilot: AutopilotConfig{
			Enabled:      true,
			NoPathPolicy: "hold",
			Heuristic:    "euclidean",
		},
		Headless: HeadlessConfig{
			Episodes: 10,
			MaxTicks: 100000,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Width, c.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, c.CellSize)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalid, c.Tick)
	case c.Autopilot.MaxExpansions < 0:
		return fmt.Errorf("%w: max_expansions must not be negative", ErrInvalid)
	case c.Headless.Episodes < 0 || c.Headless.MaxTicks <= 0:
		return fmt.Errorf("%w: headless needs episodes >= 0 and max_ticks > 0", ErrInvalid)
	}
	if _, err := ai.ParseNoPathPolicy(c.Autopilot.NoPathPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.HeuristicFunc(); err != nil {
		return err
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

// HeuristicFunc maps the heuristic name onto the pathfinding function.
func (c Config) HeuristicFunc() (pathfinding.Heuristic, error) {
	switch c.Autopilot.Heuristic {
	case "euclidean", "":
		return pathfinding.Euclidean, nil
	case "manhattan":
		return pathfinding.Manhattan, nil
	default:
		return nil, fmt.Errorf("%w: unknown heuristic %q", ErrInvalid, c.Autopilot.Heuristic)
	}
}

// SearchOptions returns the pathfinding options the autopilot should use.
func (c Config) SearchOptions() []pathfinding.Option {
	h, err := c.HeuristicFunc()
	if err != nil {
		h = pathfinding.Euclidean
	}
	opts := []pathfinding.Option{pathfinding.WithHeuristic(h)}
	if c.Autopilot.MaxExpansions > 0 {
		opts = append(opts, pathfinding.WithMaxExpansions(c.Autopilot.MaxExpansions))
	}
	return opts
}
