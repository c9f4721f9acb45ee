// Copyright 2026 The parfor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package parallel

import (
	internalparallel "github.com/parfor-go/parfor/internal/parallel"
)

// Option configures a single For or Reduce call.
type Option = internalparallel.Option

// WithBackend selects the backend used when the range is divisible.
//
// A nil backend disables parallel execution: divisible ranges are then
// traversed sequentially on the calling goroutine.
func WithBackend(b Backend) Option {
	return internalparallel.WithBackend(b)
}

// For applies op to every element of r.
//
// When r reports itself divisible, disjoint spans of r are processed
// concurrently by the configured backend, with no ordering guarantee across
// spans; otherwise the traversal is sequential and in order on the calling
// goroutine. The divisibility gate is evaluated once per call.
//
// op's calling convention adapts to the element shape (see the package
// documentation). For returns [ErrNotFunc] when op is not callable.
func For[T any](r Range[T], op any, opts ...Option) error {
	return internalparallel.For[T](r, op, opts...)
}

// Reduce folds op's per-element results over r, starting from init.
//
// The sequential path is a strict left fold in traversal order. The
// parallel path seeds every span from init and merges span partials with
// combine in backend-determined order; combine must be associative and init
// a true identity for the two paths to agree.
func Reduce[T, R any](r Range[T], op any, combine func(R, R) R, init R, opts ...Option) (R, error) {
	return internalparallel.Reduce[T, R](r, op, combine, init, opts...)
}
