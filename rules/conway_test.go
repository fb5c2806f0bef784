package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		aliveNext := neighbors == 2 || neighbors == 3
		deadNext := neighbors == 3

		assert.Equal(t, aliveNext, ApplyConwayRules(neighbors, true), "alive cell with %d neighbors", neighbors)
		assert.Equal(t, deadNext, ApplyConwayRules(neighbors, false), "dead cell with %d neighbors", neighbors)
	}
}
