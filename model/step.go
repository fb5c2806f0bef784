package model

import (
	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"

	"github.com/sheikhrachel/torus-life/rules"
)

// Step advances the grid by GenerationsPerStep generations. Each generation is
// computed entirely from the previous one into the spare buffer before the
// buffers are swapped.
func (g *Grid) Step() {
	for i := 0; i < g.generationsPerStep; i++ {
		if g.workers > 1 {
			g.nextGenerationParallel()
		} else {
			g.computeRows(0, g.height)
		}
		g.cells, g.next = g.next, g.cells
		g.generation++
	}
}

// computeRows writes the next state of rows [startRow, endRow) into g.next
func (g *Grid) computeRows(startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for column := 0; column < g.width; column++ {
			i := g.Index(row, column)
			alive := rules.ApplyConwayRules(g.LiveNeighborCount(row, column), g.cells[i].IsAlive())
			g.next[i] = cellOf(alive)
		}
	}
}

// nextGenerationParallel splits the rows between workers
func (g *Grid) nextGenerationParallel() {
	var (
		eg            errgroup.Group
		numWorkers    = min(g.workers, g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.computeRows(startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		Logger().Error("parallel generation failed", zap.Error(err))
	}
}
