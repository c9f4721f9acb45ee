// Copyright 2026 The parfor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package fixed

import (
	internalfixed "github.com/parfor-go/parfor/internal/backend/fixed"
	"github.com/parfor-go/parfor/parallel"
)

// Backend is the fixed-partition backend: n items are split into a fixed
// number of contiguous spans regardless of n, and reductions at or below an
// absolute size threshold run sequentially on the caller.
type Backend = internalfixed.Backend

// Compile-time check that Backend implements parallel.Backend.
var _ parallel.Backend = (*Backend)(nil)

// DefaultReduceThreshold is the element count at or below which Reduce runs
// sequentially on the calling goroutine, even for a divisible range.
const DefaultReduceThreshold = internalfixed.DefaultReduceThreshold

// New creates a fixed backend with one span per available P and the default
// reduction threshold.
//
// Example:
//
//	import (
//	    "github.com/parfor-go/parfor/backend/fixed"
//	    "github.com/parfor-go/parfor/parallel"
//	)
//
//	parallel.For(r, op, parallel.WithBackend(fixed.New()))
func New() *Backend {
	return internalfixed.New()
}

// NewWithSpans creates a fixed backend with an explicit span count and
// reduction threshold. It panics if spans is not positive or the threshold
// is negative.
func NewWithSpans(spans, reduceThreshold int) *Backend {
	return internalfixed.NewWithSpans(spans, reduceThreshold)
}
