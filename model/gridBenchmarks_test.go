package model

import (
	"math/rand"
	"sort"
	"testing"
)

const (
	benchWidth  = 200
	benchHeight = 200
)

var engines = map[string]*Options{
	"serial":        {Workers: 1},
	"parallel":      {Workers: 8},
	"parallelPool":  {Workers: 8, Pool: NewCellPool()},
	"batchedSerial": {Workers: 1, GenerationsPerStep: 10},
}

func engineNames() (names []string) {
	names = make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

func Benchmark_Step(b *testing.B) {
	for _, e := range engineNames() {
		b.Run(e, func(b *testing.B) {
			g, err := NewGrid(benchWidth, benchHeight, RandomSeed(rand.New(rand.NewSource(1)), 0.3), engines[e])
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.Step()
			}
		})
	}
}
