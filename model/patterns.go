package model

// Pattern is a set of live cells relative to an anchor at (0, 0)
type Pattern []Coordinate

var (
	// Glider travels one cell diagonally every four generations
	Glider = Pattern{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	// Blinker is a period-2 oscillator, horizontal at rest
	Blinker = Pattern{{0, 0}, {0, 1}, {0, 2}}
	// Block is the 2x2 still life
	Block = Pattern{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
)

// Patterns maps pattern names accepted on the command line
var Patterns = map[string]Pattern{
	"glider":  Glider,
	"blinker": Blinker,
	"block":   Block,
}

// At anchors the pattern at (row, column) of g, wrapping offsets around the torus
func (p Pattern) At(g *Grid, row, column int) []Coordinate {
	coords := make([]Coordinate, 0, len(p))
	for _, c := range p {
		coords = append(coords, Coordinate{
			Row:    wrap(row+c.Row, g.height),
			Column: wrap(column+c.Column, g.width),
		})
	}
	return coords
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
