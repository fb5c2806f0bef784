package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

func TestHashHistory(t *testing.T) {
	var h hashHistory
	assert.False(t, h.isStagnant("a"))

	for _, hash := range []string{"a", "b", "c", "d", "e", "f"} {
		h.push(hash)
	}
	assert.Len(t, h.hashes, historySize)
	assert.True(t, h.isStagnant("f"))
	assert.True(t, h.isStagnant("d"))
	assert.False(t, h.isStagnant("c"))
	assert.False(t, h.isStagnant("a"))

	h.reset()
	assert.False(t, h.isStagnant("f"))
}

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()

	tests := []struct {
		name          string
		living        int
		stagnantCount int
		restart       bool
		reason        string
	}{
		{"extinct", 0, 0, true, "extinction"},
		{"stagnant", 10, config.StagnationThreshold, true, "stagnation detected"},
		{"active", 10, config.StagnationThreshold - 1, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restart, reason := checkRestartConditions(tt.living, tt.stagnantCount, config)
			assert.Equal(t, tt.restart, restart)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestApplyFlags(t *testing.T) {
	config := applyFlags(utils.DefaultConfig(), cliOptions{
		width:    12,
		workers:  3,
		interval: time.Second,
		pattern:  "glider",
		noColor:  true,
	})

	assert.Equal(t, 12, config.Width)
	assert.Equal(t, utils.DefaultConfig().Height, config.Height)
	assert.Equal(t, 3, config.Workers)
	assert.Equal(t, time.Second, config.FrameRate)
	assert.Equal(t, "glider", config.Pattern)
	assert.False(t, config.Colors)
}

func TestInitializeGame_Pattern(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 9, 9
	config.Pattern = "blinker"

	grid, renderer, rng, err := initializeGame(config)
	require.NoError(t, err)
	require.NotNil(t, renderer)
	require.NotNil(t, rng)

	assert.Equal(t, 3, grid.CountLivingCells())
	for column := 4; column < 7; column++ {
		c, err := grid.Cell(4, column)
		require.NoError(t, err)
		assert.Equal(t, model.Alive, c)
	}

	stats := utils.NewStats()
	stepGrid(grid, stats, zap.NewNop())
	assert.Equal(t, 1, stats.TotalGenerations)
	assert.Equal(t, 3, grid.CountLivingCells())
}

func TestInitializeGame_Errors(t *testing.T) {
	config := utils.DefaultConfig()
	config.Pattern = "spaceship"
	_, _, _, err := initializeGame(config)
	assert.ErrorContains(t, err, "unknown pattern")

	config = utils.DefaultConfig()
	config.Width = 0
	_, _, _, err = initializeGame(config)
	assert.ErrorIs(t, err, model.ErrInvalidDimensions)
}

func TestInitializeGame_RandomIsDeterministicPerSeed(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 16, 16
	config.Seed = 99

	a, _, _, err := initializeGame(config)
	require.NoError(t, err)
	b, _, _, err := initializeGame(config)
	require.NoError(t, err)

	assert.Equal(t, a.Hash(), b.Hash())
}
