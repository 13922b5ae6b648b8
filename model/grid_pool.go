package model

import "sync"

// BoardPool recycles cell storage between generations.
// A nil *BoardPool is valid and simply allocates.
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]uint8)
			},
		},
	}
}

// Get retrieves a board of exactly size cells. Contents are unspecified.
func (p *BoardPool) Get(size int) []uint8 {
	if p == nil {
		return make([]uint8, size)
	}
	b := p.pool.Get().(*[]uint8)
	if *b == nil || cap(*b) < size {
		return make([]uint8, size)
	}
	return (*b)[:size]
}

// Put returns a board to the pool, clearing its state
func (p *BoardPool) Put(board []uint8) {
	if p == nil || board == nil {
		return
	}
	clear(board)
	p.pool.Put(&board)
}
