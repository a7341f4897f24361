package md2docx

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one converter is available.
	MinPoolSize = 1

	// MaxPoolSize caps converters; conversion is CPU-bound so more than
	// this buys nothing on typical machines.
	MaxPoolSize = 8
)

// ErrPoolClosed is returned when acquiring from a closed pool.
var ErrPoolClosed = errors.New("converter pool is closed")

// ConverterPool manages converters for parallel batch processing. Each
// converter runs independent assembly passes, so pooled conversions never
// share registry state. Converters are created lazily on first acquire.
type ConverterPool struct {
	size    int
	opts    []Option
	sem     chan *Converter
	mu      sync.Mutex
	created int
	closed  bool
}

// NewConverterPool creates a pool with capacity for n converters built with
// the given options. Converters are created lazily when acquired.
func NewConverterPool(n int, opts ...Option) *ConverterPool {
	if n < MinPoolSize {
		n = MinPoolSize
	}
	return &ConverterPool{
		size: n,
		opts: opts,
		sem:  make(chan *Converter, n),
	}
}

// Acquire gets a converter from the pool, creating one if capacity allows.
// Blocks if all converters are in use.
func (p *ConverterPool) Acquire() (*Converter, error) {
	// Try to get an existing converter (non-blocking). A receive from the
	// closed semaphore also lands here, yielding nil.
	select {
	case c, ok := <-p.sem:
		if ok {
			return c, nil
		}
		return nil, ErrPoolClosed
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		c, err := NewConverter(p.opts...)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}
		return c, nil
	}
	p.mu.Unlock()

	// All converters created, wait for one to be released.
	c, ok := <-p.sem
	if !ok {
		return nil, ErrPoolClosed
	}
	return c, nil
}

// Release returns a converter to the pool. Releasing to a closed pool
// discards the converter.
func (p *ConverterPool) Release(c *Converter) {
	if c == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	select {
	case p.sem <- c:
	default:
		// Pool full: converter was not acquired from here.
	}
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// Close marks the pool closed and releases waiting acquirers.
func (p *ConverterPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.sem)
}

// ResolvePoolSize picks a worker count: an explicit positive request is
// clamped to MaxPoolSize, otherwise half the CPUs with a floor of one.
func ResolvePoolSize(requested int) int {
	if requested > 0 {
		if requested > MaxPoolSize {
			return MaxPoolSize
		}
		return requested
	}
	n := runtime.NumCPU() / 2
	if n < MinPoolSize {
		n = MinPoolSize
	}
	if n > MaxPoolSize {
		n = MaxPoolSize
	}
	return n
}
