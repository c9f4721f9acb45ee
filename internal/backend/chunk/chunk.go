// Package chunk implements the grain-aware goroutine backend: work is split
// into contiguous chunks sized for the worker count and every chunk runs on
// its own goroutine.
package chunk

import (
	"runtime"

	"github.com/parfor-go/parfor/internal/backend/group"
)

// Backend splits n items into at most one chunk per worker and executes the
// chunks concurrently. Reduction trusts the caller's divisibility gate and
// applies no size threshold of its own.
type Backend struct {
	workers int
}

// New creates a chunk backend with one worker per CPU.
func New() *Backend {
	return &Backend{workers: runtime.NumCPU()}
}

// NewWithWorkers creates a chunk backend with an explicit worker count.
// It panics if workers is not positive.
func NewWithWorkers(workers int) *Backend {
	if workers < 1 {
		panic("chunk: workers must be positive")
	}
	return &Backend{workers: workers}
}

// Name returns the backend name.
func (b *Backend) Name() string { return "chunk" }

// chunkSize returns the span length used for n items.
func (b *Backend) chunkSize(n int) int {
	return max((n+b.workers-1)/b.workers, 1)
}

// For runs body over disjoint [lo, hi) chunks of [0, n) concurrently and
// waits for all of them. Chunks execute in no guaranteed relative order.
func (b *Backend) For(n int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	size := b.chunkSize(n)
	var g group.Group
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() {
			body(lo, hi)
		})
	}
	g.Wait()
}

// Reduce folds every chunk with body seeded from init, then merges the chunk
// partials with combine in chunk order. combine must be associative and init
// an identity for the result to match a sequential left fold.
func (b *Backend) Reduce(n int, init any, combine func(a, b any) any, body func(lo, hi int, acc any) any) any {
	if n <= 0 {
		return init
	}
	size := b.chunkSize(n)
	chunks := (n + size - 1) / size
	partials := make([]any, chunks)
	var g group.Group
	for k := 0; k < chunks; k++ {
		lo := k * size
		hi := min(lo+size, n)
		g.Go(func() {
			partials[k] = body(lo, hi, init)
		})
	}
	g.Wait()

	acc := partials[0]
	for _, p := range partials[1:] {
		acc = combine(acc, p)
	}
	return acc
}
