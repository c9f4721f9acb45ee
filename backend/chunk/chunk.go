// Copyright 2026 The parfor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package chunk

import (
	internalchunk "github.com/parfor-go/parfor/internal/backend/chunk"
	"github.com/parfor-go/parfor/parallel"
)

// Backend is the grain-aware goroutine backend. Work is split into
// contiguous chunks sized for the worker count and every chunk runs on its
// own goroutine.
type Backend = internalchunk.Backend

// Compile-time check that Backend implements parallel.Backend.
var _ parallel.Backend = (*Backend)(nil)

// New creates a chunk backend with one worker per CPU.
//
// Example:
//
//	import (
//	    "github.com/parfor-go/parfor/backend/chunk"
//	    "github.com/parfor-go/parfor/parallel"
//	)
//
//	parallel.For(r, op, parallel.WithBackend(chunk.New()))
func New() *Backend {
	return internalchunk.New()
}

// NewWithWorkers creates a chunk backend with an explicit worker count.
// It panics if workers is not positive.
func NewWithWorkers(workers int) *Backend {
	return internalchunk.NewWithWorkers(workers)
}
