// Copyright 2026 The parfor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package parallel

import (
	internalparallel "github.com/parfor-go/parfor/internal/parallel"
)

// Backend defines the interface that all execution backends must implement.
// Backends schedule the spans of a divisible range.
//
// Implementations:
//   - backend/chunk: grain-aware chunking across CPU workers
//   - backend/fixed: fixed partition count with a sequential reduction
//     threshold
//
// Example:
//
//	import (
//	    "github.com/parfor-go/parfor/backend/fixed"
//	    "github.com/parfor-go/parfor/parallel"
//	)
//
//	parallel.For(r, op, parallel.WithBackend(fixed.New()))
type Backend = internalparallel.Backend
