// Copyright 2026 The parfor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package parallel

import (
	internalparallel "github.com/parfor-go/parfor/internal/parallel"
)

// Range is an ordered, traversable collection that self-reports whether it
// may be split into independent sub-ranges for concurrent processing. A
// Range is borrowed for the duration of one call and never stored.
type Range[T any] = internalparallel.Range[T]

// DefaultGrain is the span size at or below which the stock ranges report
// themselves indivisible.
const DefaultGrain = internalparallel.DefaultGrain

// BlockRange is the half-open int interval [lo, hi); its elements are the
// ints of the interval itself.
type BlockRange = internalparallel.BlockRange

// NewBlock returns the range [lo, hi) with the default grain.
func NewBlock(lo, hi int) BlockRange {
	return internalparallel.NewBlock(lo, hi)
}

// NewBlockGrain returns the range [lo, hi) that is divisible while longer
// than grain. It panics if hi < lo or grain is not positive.
func NewBlockGrain(lo, hi, grain int) BlockRange {
	return internalparallel.NewBlockGrain(lo, hi, grain)
}

// SliceRange adapts a caller-owned slice.
type SliceRange[T any] = internalparallel.SliceRange[T]

// NewSlice returns a range over items with the default grain.
func NewSlice[T any](items []T) SliceRange[T] {
	return internalparallel.NewSlice(items)
}

// NewSliceGrain returns a range over items that is divisible while longer
// than grain. It panics if grain is not positive.
func NewSliceGrain[T any](items []T, grain int) SliceRange[T] {
	return internalparallel.NewSliceGrain(items, grain)
}

// IndexedRange yields (position, item) pairs over a slice, so a
// two-argument operator receives the index and the item separately.
type IndexedRange[T any] = internalparallel.IndexedRange[T]

// NewIndexed returns an indexed range over items with the default grain.
func NewIndexed[T any](items []T) IndexedRange[T] {
	return internalparallel.NewIndexed(items)
}

// NewIndexedGrain returns an indexed range over items that is divisible
// while longer than grain. It panics if grain is not positive.
func NewIndexedGrain[T any](items []T, grain int) IndexedRange[T] {
	return internalparallel.NewIndexedGrain(items, grain)
}

// Pair is the stock tuple-like aggregate: a two-argument operator receives
// First and Second as separate arguments, in that order.
type Pair[A, B any] = internalparallel.Pair[A, B]
