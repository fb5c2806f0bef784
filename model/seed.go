package model

import "math/rand"

// SeedFunc supplies the initial state of one cell. It is called exactly once per
// cell, in row-major order, for every seeding operation.
type SeedFunc func() bool

// DeadSeed seeds every cell Dead
func DeadSeed() bool { return false }

// AliveSeed seeds every cell Alive
func AliveSeed() bool { return true }

// RandomSeed returns a SeedFunc drawing from r; each cell is Alive with the given probability.
func RandomSeed(r *rand.Rand, density float64) SeedFunc {
	return func() bool {
		return r.Float64() < density
	}
}

// SequenceSeed replays values in order and seeds Dead once they run out.
func SequenceSeed(values ...bool) SeedFunc {
	var i int
	return func() bool {
		if i >= len(values) {
			return false
		}
		v := values[i]
		i++
		return v
	}
}
