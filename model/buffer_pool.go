package model

import "sync"

// bufferToPool returns a cell buffer to the pool for reuse
func bufferToPool(buf []Cell, pool *BufferPool) {
	if pool == nil {
		return
	}

	pool.Put(buf)
}

// BufferPool recycles the scratch cell buffers used by synchronous updates
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]Cell)
			},
		},
	}
}

// Get retrieves a zeroed buffer of exactly size cells
func (p *BufferPool) Get(size int) []Cell {
	bp := p.pool.Get().(*[]Cell)
	buf := *bp
	if cap(buf) < size {
		return make([]Cell, size)
	}
	buf = buf[:size]
	clear(buf)
	return buf
}

// Put returns a buffer to the pool
func (p *BufferPool) Put(buf []Cell) {
	if buf == nil {
		return
	}
	buf = buf[:0]
	p.pool.Put(&buf)
}
