package main

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

const historySize = 5

// hashHistory stores recent grid hashes for cycle detection
type hashHistory struct {
	hashes []string
}

// push adds a hash, keeping only the last historySize entries
func (h *hashHistory) push(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// isStagnant reports whether hash matches one of the last three recorded states,
// which catches still lifes and period-2 and period-3 oscillators
func (h *hashHistory) isStagnant(hash string) bool {
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == hash {
			return true
		}
	}
	return false
}

func (h *hashHistory) reset() {
	h.hashes = nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Grid, *model.TerminalRenderer, *rand.Rand, error) {
	var pool *model.CellPool
	if config.UseMemoryPool {
		pool = model.NewCellPool()
	}

	rng := rand.New(rand.NewSource(config.Seed))
	grid, err := model.NewGrid(config.Width, config.Height, model.DeadSeed, &model.Options{
		Workers:            config.Workers,
		Pool:               pool,
		GenerationsPerStep: config.GenerationsPerStep,
	})
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create grid")
	}
	if err = seedGrid(grid, config, rng); err != nil {
		return nil, nil, nil, err
	}

	return grid, model.NewTerminalRenderer(nil, config.Colors), rng, nil
}

// seedGrid reseeds the grid randomly, or stamps a named pattern at the centre
func seedGrid(grid *model.Grid, config utils.Config, rng *rand.Rand) error {
	if config.Pattern == "" {
		grid.Reset(model.RandomSeed(rng, config.RandomDensity))
		return nil
	}

	pattern, ok := model.Patterns[config.Pattern]
	if !ok {
		return errors.Errorf("[seedGrid] unknown pattern %q", config.Pattern)
	}
	grid.Reset(model.DeadSeed)
	return grid.SetCells(pattern.At(grid, grid.Height()/2, grid.Width()/2))
}

// stepGrid advances the grid and records timing in stats
func stepGrid(grid *model.Grid, stats *utils.Stats, log *zap.Logger) {
	defer utils.StartTimer(log, "Grid.Step")()

	start := time.Now()
	grid.Step()
	stats.Update(grid.GenerationsPerStep(), grid.CountLivingCells(), time.Since(start))
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// displayGameStatus shows the current game status
func displayGameStatus(renderer *model.TerminalRenderer, grid *model.Grid, stats *utils.Stats, status string) {
	living := grid.CountLivingCells()
	density := float64(living) / float64(grid.Width()*grid.Height()) * 100

	renderer.Status("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		stats.TotalGenerations, living, density, status)
	renderer.Status("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
}
