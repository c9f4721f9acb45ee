// Package parallel routes range iteration and reduction between a
// sequential in-order traversal and a concurrent backend, gated on the
// range's self-reported divisibility.
package parallel

import (
	"fmt"

	"github.com/parfor-go/parfor/internal/shape"
)

// For applies op to every element of r. When r reports itself divisible and
// a backend is configured, spans of r are processed concurrently by the
// backend; otherwise the traversal is sequential, in order, on the calling
// goroutine. The divisibility gate is evaluated once per call, not per
// element.
//
// op may take the element directly, the unpacked fields of a tuple-like
// element, or the value behind an indirect element; see shape.Func. For
// returns shape.ErrNotFunc when op is not callable. A panic raised by op
// propagates to the caller on both paths.
func For[T any](r Range[T], op any, opts ...Option) error {
	inv, err := shape.Func[T](op)
	if err != nil {
		return err
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.backend == nil || !r.IsDivisible() {
		forSpan(r, 0, r.Len(), inv)
		return nil
	}
	cfg.backend.For(r.Len(), func(lo, hi int) {
		forSpan(r, lo, hi, inv)
	})
	return nil
}

// Reduce folds op's per-element results over r, starting from init. The
// sequential path is a strict left fold in traversal order, so combine need
// not be commutative there. The parallel path seeds every span from init
// (never from the running accumulator) and merges span partials with
// combine in backend-determined order: combine must be associative and init
// a true identity for the two paths to agree; when they are not, the
// divergence is the documented cost of parallel reduction, not something
// the router repairs.
func Reduce[T, R any](r Range[T], op any, combine func(R, R) R, init R, opts ...Option) (R, error) {
	inv, err := shape.Func[T](op)
	if err != nil {
		var zero R
		return zero, err
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.backend == nil || !r.IsDivisible() {
		return reduceSpan(r, 0, r.Len(), inv, combine, init), nil
	}
	out := cfg.backend.Reduce(r.Len(), init,
		func(a, b any) any {
			return combine(a.(R), b.(R))
		},
		func(lo, hi int, acc any) any {
			return reduceSpan(r, lo, hi, inv, combine, acc.(R))
		})
	return out.(R), nil
}

// forSpan is the sequential unit of work: an in-order traversal of one span.
func forSpan[T any](r Range[T], lo, hi int, inv func(T) any) {
	for i := lo; i < hi; i++ {
		inv(r.At(i))
	}
}

// reduceSpan left-folds one span in traversal order.
func reduceSpan[T, R any](r Range[T], lo, hi int, inv func(T) any, combine func(R, R) R, acc R) R {
	for i := lo; i < hi; i++ {
		out := inv(r.At(i))
		partial, ok := out.(R)
		if !ok {
			panic(fmt.Sprintf("parallel: operator returned %T, which is not the reduction type", out))
		}
		acc = combine(acc, partial)
	}
	return acc
}
