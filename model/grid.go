package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Coordinate addresses a cell by row and column
type Coordinate struct {
	Row    int
	Column int
}

// Options configures a Grid at construction
type Options struct {
	// Workers above 1 select the row-striped parallel stepper.
	Workers int
	// Pool, when set, supplies and recycles cell buffers.
	Pool *CellPool
	// GenerationsPerStep is the number of rule applications per Step; zero selects 1.
	GenerationsPerStep int
}

// DefaultOptions is used when NewGrid receives nil options
var DefaultOptions = Options{
	Workers:            1,
	GenerationsPerStep: 1,
}

// Grid is a fixed-size toroidal Game of Life board stored row-major.
//
// A Grid is not safe for concurrent use; callers must serialise mutation and
// must not read the buffer while a mutation is in flight.
type Grid struct {
	width  int
	height int
	cells  []Cell
	next   []Cell // write side of the double buffer

	generationsPerStep int
	generation         int
	workers            int
	pool               *CellPool
}

// NewGrid creates a width x height grid, seeding each cell in row-major order.
// A nil seed leaves every cell Dead.
func NewGrid(width, height int, seed SeedFunc, opts *Options) (*Grid, error) {
	n, err := checkDimensions("NewGrid", width, height)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions
	if opts != nil {
		o = *opts
	}
	if o.GenerationsPerStep < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "[NewGrid] generations per step %d", o.GenerationsPerStep)
	}
	if o.GenerationsPerStep == 0 {
		o.GenerationsPerStep = 1
	}

	g := &Grid{
		width:              width,
		height:             height,
		cells:              o.Pool.Get(n),
		next:               o.Pool.Get(n),
		generationsPerStep: o.GenerationsPerStep,
		workers:            max(1, o.Workers),
		pool:               o.Pool,
	}
	g.seed(seed)

	Logger().Debug("grid created",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("workers", g.workers),
		zap.Int("generations_per_step", g.generationsPerStep),
	)
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// GenerationsPerStep returns how many generations a Step advances
func (g *Grid) GenerationsPerStep() int {
	return g.generationsPerStep
}

// Generation returns the number of generations computed since the last reseed or resize
func (g *Grid) Generation() int {
	return g.generation
}

// Cells returns the live cell buffer. The slice is only valid until the next
// mutating call; copy it (or use Snapshot) to retain it across a Step.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Snapshot returns a copy of the cell buffer
func (g *Grid) Snapshot() []Cell {
	snap := g.pool.Get(len(g.cells))
	copy(snap, g.cells)
	return snap
}

// Release hands a buffer obtained from Snapshot back to the grid's pool
func (g *Grid) Release(buf []Cell) {
	g.pool.Put(buf)
}

// Reset reseeds every cell in row-major order, keeping the dimensions
func (g *Grid) Reset(seed SeedFunc) {
	g.seed(seed)
	Logger().Debug("grid reset", zap.Int("width", g.width), zap.Int("height", g.height))
}

func (g *Grid) seed(seed SeedFunc) {
	if seed == nil {
		seed = DeadSeed
	}
	for i := range g.cells {
		g.cells[i] = cellOf(seed())
	}
	g.generation = 0
}

// Index maps (row, column) to a buffer offset without bounds checking
func (g *Grid) Index(row, column int) int {
	return row*g.width + column
}

// SafeIndex is Index with bounds checking
func (g *Grid) SafeIndex(row, column int) (int, error) {
	return g.index("SafeIndex", row, column)
}

func (g *Grid) index(op string, row, column int) (int, error) {
	if row < 0 || row >= g.height || column < 0 || column >= g.width {
		return 0, errors.Wrapf(ErrOutOfRange, "[%s] (%d,%d) outside %dx%d", op, row, column, g.width, g.height)
	}
	return g.Index(row, column), nil
}

// Cell returns the state at (row, column)
func (g *Grid) Cell(row, column int) (Cell, error) {
	i, err := g.index("Cell", row, column)
	if err != nil {
		return Dead, err
	}
	return g.cells[i], nil
}

// LiveNeighborCount counts Alive cells among the eight neighbours of
// (row, column), wrapping at every edge. The coordinate is not bounds checked.
func (g *Grid) LiveNeighborCount(row, column int) int {
	north := row - 1
	if row == 0 {
		north = g.height - 1
	}
	south := row + 1
	if row == g.height-1 {
		south = 0
	}
	west := column - 1
	if column == 0 {
		west = g.width - 1
	}
	east := column + 1
	if column == g.width-1 {
		east = 0
	}

	c := g.cells
	return int(c[g.Index(north, west)] + c[g.Index(north, column)] + c[g.Index(north, east)] +
		c[g.Index(row, west)] + c[g.Index(row, east)] +
		c[g.Index(south, west)] + c[g.Index(south, column)] + c[g.Index(south, east)])
}

// SetGenerationsPerStep sets how many generations Step advances. Zero makes Step a no-op.
func (g *Grid) SetGenerationsPerStep(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidArgument, "[SetGenerationsPerStep] %d", n)
	}
	g.generationsPerStep = n
	return nil
}

// ToggleCell flips the cell at (row, column)
func (g *Grid) ToggleCell(row, column int) error {
	i, err := g.index("ToggleCell", row, column)
	if err != nil {
		return err
	}
	g.cells[i] = g.cells[i].Toggle()
	return nil
}

// SetCells stamps every listed coordinate Alive and leaves other cells untouched.
// All coordinates are validated first: if any is out of range the grid is not
// modified and ErrOutOfRange is returned. Duplicates are allowed.
func (g *Grid) SetCells(coords []Coordinate) error {
	for _, c := range coords {
		if _, err := g.index("SetCells", c.Row, c.Column); err != nil {
			return err
		}
	}
	for _, c := range coords {
		g.cells[g.Index(c.Row, c.Column)] = Alive
	}
	return nil
}

// SetWidth changes the number of columns. This is a hard reset: every cell becomes Dead.
func (g *Grid) SetWidth(width int) error {
	return g.resize("SetWidth", width, g.height)
}

// SetHeight changes the number of rows. This is a hard reset: every cell becomes Dead.
func (g *Grid) SetHeight(height int) error {
	return g.resize("SetHeight", g.width, height)
}

func (g *Grid) resize(op string, width, height int) error {
	n, err := checkDimensions(op, width, height)
	if err != nil {
		return err
	}

	g.pool.Put(g.cells)
	g.pool.Put(g.next)
	g.width, g.height = width, height
	g.cells = g.pool.Get(n)
	g.next = g.pool.Get(n)
	g.generation = 0

	Logger().Debug("grid resized", zap.String("op", op), zap.Int("width", width), zap.Int("height", height))
	return nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the dimensions and cell buffer
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
