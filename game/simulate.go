package game

import (
	"log/slog"
	"time"

	"snake-astar/ai"
	"snake-astar/game/types"
)

// Summary aggregates a batch of headless episodes.
type Summary struct {
	Episodes int
	Wins     int
	Best     int
	Average  float64
	Steps    int
	Causes   map[string]int
	Elapsed  time.Duration
}

// Simulate plays episodes games back to back on one session, each capped at
// maxTicks, and logs progress every tenth episode.
func Simulate(grid types.Grid, seed uint64, episodes, maxTicks int, controller ai.Controller, logger *slog.Logger) Summary {
	if logger == nil {
		logger = slog.Default()
	}
	summary := Summary{Causes: make(map[string]int)}
	if episodes <= 0 {
		return summary
	}

	start := time.Now()
	g := NewGame(grid, seed, controller, logger)
	for episode := 0; episode < episodes; episode++ {
		if episode > 0 {
			g.Restart()
		}
		g.Run(maxTicks)

		summary.Steps += g.Steps
		summary.Causes[g.Cause]++
		if g.Won {
			summary.Wins++
		}

		if (episode+1)%10 == 0 {
			logger.Info("episodes played",
				"episodes", episode+1,
				"high_score", g.Stats().HighScore(),
				"average", g.Stats().Average())
		}
	}

	summary.Episodes = g.Stats().GamesPlayed()
	summary.Best = g.Stats().HighScore()
	summary.Average = g.Stats().Average()
	summary.Elapsed = time.Since(start)
	return summary
}
