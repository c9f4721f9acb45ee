// Copyright 2026 The parfor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package parallel

import (
	"github.com/parfor-go/parfor/internal/shape"
)

// Tuple is implemented by fixed-arity aggregates whose fields are passed to
// the operator as separate positional arguments, in declared order.
type Tuple = shape.Tuple

// Ref is an indirect handle to an element. It is dereferenced exactly once
// before the operator is invoked; deeper indirection is not followed.
type Ref = shape.Ref

// ErrNotFunc reports that the value supplied as an operator is not callable.
var ErrNotFunc = shape.ErrNotFunc
