package worker

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/sgf-extract-go/internal/config"
	"github.com/lgbarn/sgf-extract-go/internal/engine"
	"github.com/lgbarn/sgf-extract-go/internal/testutil"
)

// noopProcessFunc returns a process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Path: item.Path, Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Path: item.Path, Index: item.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func item(i int) WorkItem {
	return WorkItem{Path: fmt.Sprintf("game%d.sgf", i), Index: i}
}

func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(4, 10, countingProcessFunc(&processed))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(item(i))
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolSingleWorker(t *testing.T) {
	pool := NewPool(1, 5, noopProcessFunc())
	pool.Start()

	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(item(i))
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(it WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Path: it.Path, Index: it.Index}
	}

	pool := NewPool(2, 100, slowProcessFunc)
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(item(i))
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(2, 10, noopProcessFunc())
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

func TestPoolTrySubmit(t *testing.T) {
	slowProcessFunc := func(it WorkItem) ProcessResult {
		time.Sleep(100 * time.Millisecond)
		return ProcessResult{Index: it.Index}
	}

	// one worker, room for two queued items
	pool := NewPool(1, 2, slowProcessFunc)
	pool.Start()

	if !pool.TrySubmit(item(0)) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(item(1)) {
		t.Error("second TrySubmit should succeed")
	}

	// timing dependent; only check it does not panic
	pool.TrySubmit(item(2))

	pool.Stop()
	if pool.TrySubmit(item(3)) {
		t.Error("TrySubmit after Stop should return false")
	}

	go pool.Close()
	collectResults(pool)
}

func TestPoolNumWorkers(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid workers", 4, 4},
		{"minimum workers", 1, 1},
		{"zero defaults to 1", 0, 1},
		{"negative defaults to 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.input, 10, noopProcessFunc())
			if got := pool.NumWorkers(); got != tt.expected {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.expected)
			}
		})
	}
}

func TestPoolBufferSizeFloor(t *testing.T) {
	pool := NewPool(1, 0, noopProcessFunc())
	if pool.bufferSize != 1 {
		t.Errorf("bufferSize = %d; want 1", pool.bufferSize)
	}
}

func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(it WorkItem) ProcessResult {
		if it.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return ProcessResult{Path: it.Path, Index: it.Index}
	}

	pool := NewPool(4, 20, variableDelayFunc)
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(item(i))
	}

	go pool.Close()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}

	if len(seen) != numItems {
		t.Errorf("received %d results; want %d", len(seen), numItems)
	}
	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(8, 50, countingProcessFunc(&counter))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(item(i))
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestNewPoolWithOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc())
		if pool.NumWorkers() != 1 {
			t.Errorf("default workers = %d; want 1", pool.NumWorkers())
		}
		if pool.bufferSize != 10 {
			t.Errorf("default bufferSize = %d; want 10", pool.bufferSize)
		}
	})

	t.Run("with multiple options", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(8), WithBufferSize(100))
		if pool.NumWorkers() != 8 {
			t.Errorf("NumWorkers() = %d; want 8", pool.NumWorkers())
		}
		if pool.bufferSize != 100 {
			t.Errorf("bufferSize = %d; want 100", pool.bufferSize)
		}
	})

	t.Run("invalid values ignored", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(0), WithBufferSize(-5))
		if pool.NumWorkers() != 1 {
			t.Errorf("NumWorkers() = %d; want 1 (default)", pool.NumWorkers())
		}
		if pool.bufferSize != 10 {
			t.Errorf("bufferSize = %d; want 10 (default)", pool.bufferSize)
		}
	})
}

func TestInOrder(t *testing.T) {
	results := make(chan ProcessResult, 5)
	for _, i := range []int{3, 0, 4, 2, 1} {
		results <- ProcessResult{Index: i}
	}
	close(results)

	var got []int
	err := InOrder(results, func(r ProcessResult) error {
		got = append(got, r.Index)
		return nil
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, []int{0, 1, 2, 3, 4})
}

func TestInOrderStopsAtError(t *testing.T) {
	results := make(chan ProcessResult, 4)
	for i := 0; i < 4; i++ {
		results <- ProcessResult{Index: i}
	}
	close(results)

	boom := errors.New("boom")
	calls := 0
	err := InOrder(results, func(r ProcessResult) error {
		calls++
		if r.Index == 1 {
			return boom
		}
		return nil
	})
	testutil.AssertErrorIs(t, err, boom)
	testutil.AssertEqual(t, calls, 2)
	if len(results) != 0 {
		t.Errorf("%d results left undrained", len(results))
	}
}

func TestPoolLoadsFiles(t *testing.T) {
	files := []string{"variations.sgf", "two_games.sgf", "broken.sgf", "handicap.sgf"}
	cfg := config.NewConfig()

	pool := NewPool(3, len(files), func(it WorkItem) ProcessResult {
		games, err := engine.LoadFile(it.Path, cfg, nil)
		return ProcessResult{Path: it.Path, Index: it.Index, Games: games, Err: err}
	})
	pool.Start()
	for i, name := range files {
		pool.Submit(WorkItem{Path: testutil.Infile(t, name), Index: i})
	}
	go pool.Close()

	var counts []int
	var failed []int
	err := InOrder(pool.Results(), func(r ProcessResult) error {
		if r.Err != nil {
			failed = append(failed, r.Index)
		}
		counts = append(counts, len(r.Games))
		return nil
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, []int{2})
	testutil.AssertEqual(t, counts[0], 1)
	testutil.AssertEqual(t, counts[1], 2)
	testutil.AssertEqual(t, counts[3], 1)
}
