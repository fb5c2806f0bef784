package model

// Cell is the state of a single grid position. It is stored as a byte so that
// additional states can be introduced without reinterpreting existing buffers.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

const (
	glyphDead  = "◻"
	glyphAlive = "◼"
)

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

// Toggle returns the opposite state
func (c Cell) Toggle() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c Cell) String() string {
	if c == Alive {
		return glyphAlive
	}
	return glyphDead
}

func cellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}
