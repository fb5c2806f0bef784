package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStats_Update(t *testing.T) {
	s := NewStats()

	s.Update(2, 100, 500*time.Millisecond)
	assert.Equal(t, 2, s.TotalGenerations)
	assert.InDelta(t, 4.0, s.GenerationsPerSecond, 1e-9)
	assert.InDelta(t, 100.0, s.AveragePopulation, 1e-9)

	s.Update(1, 200, 0)
	assert.Equal(t, 3, s.TotalGenerations)
	assert.InDelta(t, 4.0, s.GenerationsPerSecond, 1e-9)
	assert.InDelta(t, 110.0, s.AveragePopulation, 1e-9)
}

func TestStartTimer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	stop := StartTimer(zap.New(core), "step")
	assert.Zero(t, logs.Len())
	stop()

	entries := logs.FilterField(zap.String("name", "step")).All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "timer", entries[0].Message)
	}
}
