// Copyright 2026 The parfor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package chunk provides the default execution backend: grain-aware
// chunking across a fixed pool of CPU workers.
//
// # Overview
//
// The backend splits n items into at most one contiguous chunk per worker
// (ceil(n/workers) items each) and runs every chunk on its own goroutine.
// It trusts the range's divisibility signal completely: once the router
// decides the range is divisible, no further size check is applied, for
// iteration or for reduction.
//
// # Reduction
//
// Every chunk is folded independently, seeded from the caller's initial
// value, and the chunk partials are merged in chunk order. The combining
// function must be associative and the initial value a true identity for
// the result to match a sequential left fold.
//
// # Failure
//
// A panic in the operator is captured on the chunk goroutine and re-raised
// on the goroutine waiting for the call to finish.
package chunk
