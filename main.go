package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"go.uber.org/zap"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

// cliOptions holds flag values; zero values leave the file configuration untouched
type cliOptions struct {
	configPath         string
	width              int
	height             int
	generationsPerStep int
	workers            int
	maxGenerations     int
	density            float64
	seed               int64
	interval           time.Duration
	pattern            string
	verbose            bool
	noColor            bool
}

func parseFlags(args []string) cliOptions {
	o := cliOptions{configPath: "config.json"}

	parser := flaggy.NewParser("torus-life")
	parser.Description = "Conway's Game of Life on a toroidal grid"
	parser.ShowHelpOnUnexpected = true
	parser.String(&o.configPath, "c", "config", "Path to a JSON configuration file")
	parser.Int(&o.width, "x", "width", "Width of the grid")
	parser.Int(&o.height, "y", "height", "Height of the grid")
	parser.Int(&o.generationsPerStep, "g", "generations", "Generations computed per frame")
	parser.Int(&o.workers, "w", "workers", "Worker goroutines per generation (1 = serial)")
	parser.Int(&o.maxGenerations, "s", "maxSteps", "Stop after this many generations")
	parser.Float64(&o.density, "d", "density", "Probability that a randomly seeded cell is alive")
	parser.Int64(&o.seed, "", "seed", "Random seed (defaults to the current time)")
	parser.Duration(&o.interval, "i", "interval", "Interval between frames, for example 150ms")
	parser.String(&o.pattern, "p", "pattern", "Seed with a named pattern [glider|blinker|block] instead of random cells")
	parser.Bool(&o.verbose, "v", "verbose", "Enable debug logging")
	parser.Bool(&o.noColor, "", "no-color", "Disable coloured output")

	if err := parser.ParseArgs(args); err != nil {
		parser.ShowHelpAndExit(err.Error())
	}
	return o
}

// applyFlags overlays explicitly set flags onto the configuration
func applyFlags(config utils.Config, o cliOptions) utils.Config {
	if o.width > 0 {
		config.Width = o.width
	}
	if o.height > 0 {
		config.Height = o.height
	}
	if o.generationsPerStep > 0 {
		config.GenerationsPerStep = o.generationsPerStep
	}
	if o.workers > 0 {
		config.Workers = o.workers
	}
	if o.maxGenerations > 0 {
		config.MaxGenerations = o.maxGenerations
	}
	if o.density > 0 {
		config.RandomDensity = o.density
	}
	if o.seed != 0 {
		config.Seed = o.seed
	}
	if o.interval > 0 {
		config.FrameRate = o.interval
	}
	if o.pattern != "" {
		config.Pattern = o.pattern
	}
	if o.verbose {
		config.Verbose = true
	}
	if o.noColor {
		config.Colors = false
	}
	return config
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	opts := parseFlags(os.Args[1:])

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		config = utils.DefaultConfig()
	}
	config = applyFlags(config, opts)
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	log, logErr := newLogger(config.Verbose)
	if logErr != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", logErr)
		os.Exit(1)
	}
	defer log.Sync()
	model.SetLogger(log)
	if err != nil {
		log.Info("using default configuration", zap.String("path", opts.configPath), zap.Error(err))
	}

	if err = config.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	if err = run(config, log); err != nil {
		log.Fatal("game stopped", zap.Error(err))
	}
}

func run(config utils.Config, log *zap.Logger) error {
	grid, renderer, rng, err := initializeGame(config)
	if err != nil {
		return err
	}
	stats := utils.NewStats()
	log.Info("game started",
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
		zap.Int("living", grid.CountLivingCells()),
		zap.Int64("seed", config.Seed),
	)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var (
		history       hashHistory
		stagnantCount int
		ticker        = time.NewTicker(config.FrameRate)
	)
	defer ticker.Stop()

	for {
		if err = renderer.Clear(); err != nil {
			log.Debug("failed to clear terminal", zap.Error(err))
		}

		hash := grid.Hash()
		status := "Active"
		if history.isStagnant(hash) {
			stagnantCount++
			status = fmt.Sprintf("Stagnant (%d)", stagnantCount)
		} else {
			stagnantCount = 0
		}
		history.push(hash)

		displayGameStatus(renderer, grid, stats, status)
		if err = renderer.Display(grid); err != nil {
			return err
		}

		if config.MaxGenerations > 0 && stats.TotalGenerations >= config.MaxGenerations {
			log.Info("reached maximum generations", zap.Int("generations", stats.TotalGenerations))
			return nil
		}

		if restart, reason := checkRestartConditions(grid.CountLivingCells(), stagnantCount, config); restart && config.AutoRestart {
			log.Info("restarting", zap.String("reason", reason), zap.Int("generation", stats.TotalGenerations))
			if err = seedGrid(grid, config, rng); err != nil {
				return err
			}
			history.reset()
			stagnantCount = 0
		}

		stepGrid(grid, stats, log)

		select {
		case <-sigChan:
			log.Info("shutting down",
				zap.Int("generations", stats.TotalGenerations),
				zap.Duration("runtime", time.Since(stats.StartTime)),
				zap.Float64("avg_population", stats.AveragePopulation),
			)
			return nil
		case <-ticker.C:
		}
	}
}
