// Copyright 2026 The parfor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fixed provides the fixed-partition execution backend.
//
// # Overview
//
// The backend always splits n items into the same number of contiguous
// spans (one per available P by default), however large n is. Iteration is
// gated only by the range's divisibility, like the chunk backend.
//
// # Reduction Threshold
//
// Reduction applies one extra policy: work at or below an absolute element
// count ([DefaultReduceThreshold], 128) is folded in a single sequential
// pass on the calling goroutine, even when the range reported itself
// divisible. The two gates are not numerically interchangeable for
// non-associative combiners — a range that the chunk backend reduces in
// parallel may be reduced sequentially here, and the two backends may then
// produce different (equally legitimate) results.
//
// # Failure
//
// A panic in the operator is captured on the span goroutine and re-raised
// on the goroutine waiting for the call to finish.
package fixed
