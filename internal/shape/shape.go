// Package shape resolves how an operator is invoked for the structural
// category of the element it receives: tuple-like aggregates are unpacked
// into separate positional arguments, indirect references are dereferenced
// once, and everything else is passed through as a single argument.
package shape

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotFunc reports that the value supplied as an operator is not callable.
var ErrNotFunc = errors.New("shape: operator is not a function")

// Tuple is implemented by fixed-arity aggregates whose fields are passed to
// the operator as separate positional arguments, in declared order.
type Tuple interface {
	Fields() []any
}

// Ref is an indirect handle to an element. It is dereferenced exactly once
// before the operator is invoked; deeper indirection is not followed.
type Ref interface {
	Deref() any
}

// Func adapts op to elements of type T. The calling convention is resolved
// here, before any element is visited; the returned invoker applies op to
// one element and returns op's result (nil when op returns nothing).
//
// Operators typed func(T) or func(T) any skip reflection when T is a plain
// value type. Tuple and Ref elements, and interface-typed T, go through the
// reflective path so the element's structural category always wins over the
// operator's static signature. A non-function op yields ErrNotFunc. An
// operator whose parameter list does not match the unpacked element is a
// caller contract violation and panics at the first invocation.
func Func[T any](op any) (func(T) any, error) {
	if op == nil {
		return nil, ErrNotFunc
	}
	if !adaptive[T]() {
		switch f := op.(type) {
		case func(T):
			return func(v T) any {
				f(v)
				return nil
			}, nil
		case func(T) any:
			return f, nil
		}
	}
	fv := reflect.ValueOf(op)
	if fv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T", ErrNotFunc, op)
	}
	return func(v T) any {
		return invoke(fv, v)
	}, nil
}

var (
	tupleType = reflect.TypeOf((*Tuple)(nil)).Elem()
	refType   = reflect.TypeOf((*Ref)(nil)).Elem()
)

// adaptive reports whether elements of type T need per-element shape
// dispatch. Interface-typed elements are classified per value because their
// concrete category is unknown until runtime.
func adaptive[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.Kind() == reflect.Interface || t.Implements(tupleType) || t.Implements(refType)
}

// invoke applies op to elem according to its structural category. A value
// implementing both Tuple and Ref is treated as a Tuple.
func invoke(op reflect.Value, elem any) any {
	switch v := elem.(type) {
	case Tuple:
		return call(op, v.Fields())
	case Ref:
		inner := v.Deref()
		if tup, ok := inner.(Tuple); ok {
			return call(op, tup.Fields())
		}
		return call(op, []any{inner})
	default:
		return call(op, []any{elem})
	}
}

// call invokes op with args as its positional parameters and returns the
// first result, or nil when op returns nothing.
func call(op reflect.Value, args []any) any {
	t := op.Type()
	if t.NumIn() != len(args) || t.IsVariadic() {
		panic(fmt.Sprintf("shape: operator %s does not take %d positional arguments", t, len(args)))
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(t.In(i))
			continue
		}
		in[i] = reflect.ValueOf(a)
	}
	out := op.Call(in)
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}
