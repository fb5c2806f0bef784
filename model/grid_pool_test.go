package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellPool_GetIsZeroed(t *testing.T) {
	pool := NewCellPool()

	buf := pool.Get(16)
	require.Len(t, buf, 16)
	for i := range buf {
		buf[i] = Alive
	}
	pool.Put(buf)

	again := pool.Get(9)
	require.Len(t, again, 9)
	for _, c := range again {
		assert.Equal(t, Dead, c)
	}
}

func TestCellPool_Nil(t *testing.T) {
	var pool *CellPool

	buf := pool.Get(4)
	assert.Len(t, buf, 4)
	pool.Put(buf)
}
