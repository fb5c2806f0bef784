package model

import "sync"

// CellPool reuses cell buffers between resizes, snapshots and restarts
type CellPool struct {
	pool sync.Pool
}

func NewCellPool() *CellPool {
	return &CellPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]Cell)
			},
		},
	}
}

// Get retrieves a zeroed buffer of length n from the pool.
// A nil pool allocates a fresh buffer.
func (p *CellPool) Get(n int) []Cell {
	if p == nil {
		return make([]Cell, n)
	}
	buf := *p.pool.Get().(*[]Cell)
	if cap(buf) < n {
		return make([]Cell, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}

// Put returns a buffer to the pool
func (p *CellPool) Put(buf []Cell) {
	if p == nil || buf == nil {
		return
	}
	p.pool.Put(&buf)
}
