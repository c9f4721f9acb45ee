// Copyright 2026 The parfor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package parallel provides shape-adaptive parallel iteration and reduction
// over ranges, with pluggable execution backends.
//
// # Overview
//
// The package exposes two operations:
//   - For applies an operator to every element of a range.
//   - Reduce folds the operator's per-element results into one value.
//
// Both evaluate a single dynamic gate per call: when the range reports
// itself divisible, the work is handed to a backend that processes disjoint
// spans concurrently; otherwise the whole range is traversed sequentially,
// in order, on the calling goroutine. The sequential loop is also the unit
// of work inside every parallel span, so order is always preserved within a
// span.
//
// # Basic Usage
//
//	import (
//	    "github.com/parfor-go/parfor/parallel"
//	)
//
//	func main() {
//	    r := parallel.NewBlock(0, 1_000_000)
//
//	    sum, err := parallel.Reduce(r,
//	        func(i int) int { return i },
//	        func(a, b int) int { return a + b },
//	        0)
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(sum)
//	}
//
// # Element Shapes
//
// The operator's calling convention adapts to the structural category of
// the element it receives:
//   - A value implementing [Tuple] is unpacked: its fields become separate
//     positional arguments, in declared order.
//   - A value implementing [Ref] is dereferenced exactly once; the inner
//     value is then either unpacked (if it is a Tuple) or passed directly.
//   - Any other value is passed as the single argument.
//
// [IndexedRange] uses this to hand (index, element) pairs to two-argument
// operators:
//
//	weights := []float64{1, 2, 3}
//	out := make([]float64, len(weights))
//	parallel.For(parallel.NewIndexed(weights), func(i int, w float64) {
//	    out[i] = 2 * w // disjoint slots, safe across spans
//	})
//
// A non-function operator is reported as [ErrNotFunc]. An operator whose
// parameter list does not match the unpacked element is a caller contract
// violation and panics at the first invocation; nothing is coerced
// silently.
//
// # Backends
//
// Exactly one backend is active per call, selected with [WithBackend]
// (default: backend/chunk):
//   - backend/chunk: grain-aware chunking across CPU workers; reduction is
//     gated purely by the range's divisibility.
//   - backend/fixed: a fixed partition count; reductions at or below an
//     absolute size threshold run sequentially even for divisible ranges.
//
// WithBackend(nil) disables parallel execution entirely, which is the
// explicit fallback when no backend is wanted.
//
// # Reduction Semantics
//
// The sequential path is a strict left fold in traversal order. The
// parallel path seeds every span from the initial value and merges span
// partials in backend-determined order, so the combining function must be
// associative and the initial value a true identity for both paths to
// produce the same result. With a non-associative combiner the two paths
// may legitimately diverge.
//
// # Concurrency
//
// The range, operator, and combiner are borrowed for the duration of one
// call and never stored. The package takes no locks on the caller's behalf:
// mutable state touched by the operator across spans is the caller's
// responsibility to make safe. A panic raised by the operator propagates to
// the caller on both paths; on the parallel path it surfaces as a
// *group.PanicError carrying the original value and stack.
package parallel
