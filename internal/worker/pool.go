// Package worker runs SGF file loads on a fixed set of goroutines and hands
// the results back in input order.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/sgf-extract-go/internal/goban"
)

// WorkItem names one input file.
type WorkItem struct {
	Path  string
	Index int // position on the command line
}

// ProcessResult holds the games read from one input file.
type ProcessResult struct {
	Path  string
	Index int
	Games []*goban.Game
	Err   error
}

// ProcessFunc turns a work item into its result.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed number of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with numWorkers workers and channels of bufferSize.
// Values below one are raised to one.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(max(bufferSize, 1)))
}

// NewPoolWithOptions creates a pool with 1 worker and a buffer of 10 unless
// the options say otherwise.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues a work item without blocking. It reports false when the
// buffer is full or the pool has been stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers drain the remaining items without processing them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// InOrder reads results until the channel closes and calls fn with them
// sorted by Index, starting from zero. Results that arrive early are held
// back until their predecessors have been delivered. Iteration stops at the
// first error returned by fn; the channel is still drained.
func InOrder(results <-chan ProcessResult, fn func(ProcessResult) error) error {
	pending := make(map[int]ProcessResult)
	next := 0
	var err error
	for r := range results {
		if err != nil {
			continue
		}
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err = fn(ready); err != nil {
				break
			}
		}
	}
	return err
}
