// Package fixed implements the fixed-partition backend: n items are split
// into a fixed number of contiguous spans regardless of n, and reductions at
// or below an absolute size threshold run sequentially on the caller.
package fixed

import (
	"runtime"

	"github.com/parfor-go/parfor/internal/backend/group"
)

// DefaultReduceThreshold is the element count at or below which Reduce runs
// sequentially on the calling goroutine, even for a divisible range.
const DefaultReduceThreshold = 128

// Backend partitions work into a fixed number of spans. Unlike the chunk
// backend it second-guesses the divisibility gate for reductions, requiring
// the work to exceed an absolute size threshold before going parallel.
type Backend struct {
	spans           int
	reduceThreshold int
}

// New creates a fixed backend with one span per available P and the default
// reduction threshold.
func New() *Backend {
	return &Backend{
		spans:           runtime.GOMAXPROCS(0),
		reduceThreshold: DefaultReduceThreshold,
	}
}

// NewWithSpans creates a fixed backend with an explicit span count and
// reduction threshold. It panics if spans is not positive or the threshold
// is negative.
func NewWithSpans(spans, reduceThreshold int) *Backend {
	if spans < 1 {
		panic("fixed: spans must be positive")
	}
	if reduceThreshold < 0 {
		panic("fixed: reduce threshold must be non-negative")
	}
	return &Backend{spans: spans, reduceThreshold: reduceThreshold}
}

// Name returns the backend name.
func (b *Backend) Name() string { return "fixed" }

// For runs body over the fixed partition of [0, n) concurrently and waits
// for all spans. Spans execute in no guaranteed relative order.
func (b *Backend) For(n int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	spans := min(b.spans, n)
	var g group.Group
	for k := 0; k < spans; k++ {
		lo := k * n / spans
		hi := (k + 1) * n / spans
		g.Go(func() {
			body(lo, hi)
		})
	}
	g.Wait()
}

// Reduce folds the fixed spans with body seeded from init and merges the
// span partials with combine in span order. Work at or below the reduction
// threshold is folded in one sequential pass on the calling goroutine.
func (b *Backend) Reduce(n int, init any, combine func(a, b any) any, body func(lo, hi int, acc any) any) any {
	if n <= 0 {
		return init
	}
	if n <= b.reduceThreshold {
		return body(0, n, init)
	}
	spans := min(b.spans, n)
	partials := make([]any, spans)
	var g group.Group
	for k := 0; k < spans; k++ {
		lo := k * n / spans
		hi := (k + 1) * n / spans
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
