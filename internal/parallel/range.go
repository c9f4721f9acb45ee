package parallel

import "github.com/parfor-go/parfor/internal/shape"

// Range is an ordered, traversable collection. The engine borrows a Range
// for the duration of one call and never stores it; implementations decide
// for themselves whether splitting into independent spans is worthwhile.
type Range[T any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at position i, 0 <= i < Len().
	At(i int) T

	// IsDivisible reports whether the range may be split into independent
	// sub-ranges for concurrent processing.
	IsDivisible() bool
}

// DefaultGrain is the span size at or below which the stock ranges report
// themselves indivisible.
const DefaultGrain = 64

// BlockRange is the half-open int interval [lo, hi). Its elements are the
// ints of the interval itself.
type BlockRange struct {
	lo, hi, grain int
}

// NewBlock returns the range [lo, hi) with the default grain.
func NewBlock(lo, hi int) BlockRange {
	return NewBlockGrain(lo, hi, DefaultGrain)
}

// NewBlockGrain returns the range [lo, hi) that is divisible while longer
// than grain. It panics if hi < lo or grain is not positive.
func NewBlockGrain(lo, hi, grain int) BlockRange {
	if hi < lo {
		panic("parallel: block range upper bound below lower bound")
	}
	if grain < 1 {
		panic("parallel: grain must be positive")
	}
	return BlockRange{lo: lo, hi: hi, grain: grain}
}

// Len returns the interval length.
func (b BlockRange) Len() int { return b.hi - b.lo }

// At returns the i-th int of the interval.
func (b BlockRange) At(i int) int { return b.lo + i }

// IsDivisible reports whether the interval is longer than its grain.
func (b BlockRange) IsDivisible() bool { return b.Len() > b.grain }

// SliceRange adapts a caller-owned slice. The slice is borrowed, never
// copied or stored beyond the call.
type SliceRange[T any] struct {
	items []T
	grain int
}

// NewSlice returns a range over items with the default grain.
func NewSlice[T any](items []T) SliceRange[T] {
	return NewSliceGrain(items, DefaultGrain)
}

// NewSliceGrain returns a range over items that is divisible while longer
// than grain. It panics if grain is not positive.
func NewSliceGrain[T any](items []T, grain int) SliceRange[T] {
	if grain < 1 {
		panic("parallel: grain must be positive")
	}
	return SliceRange[T]{items: items, grain: grain}
}

// Len returns the number of elements.
func (r SliceRange[T]) Len() int { return len(r.items) }

// At returns the i-th element.
func (r SliceRange[T]) At(i int) T { return r.items[i] }

// IsDivisible reports whether the slice is longer than its grain.
func (r SliceRange[T]) IsDivisible() bool { return len(r.items) > r.grain }

// IndexedRange yields Pair[int, T] elements of (position, item) over a
// slice, so a two-argument operator receives the index and the item as
// separate arguments.
type IndexedRange[T any] struct {
	items []T
	grain int
}

// NewIndexed returns an indexed range over items with the default grain.
func NewIndexed[T any](items []T) IndexedRange[T] {
	return NewIndexedGrain(items, DefaultGrain)
}

// NewIndexedGrain returns an indexed range over items that is divisible
// while longer than grain. It panics if grain is not positive.
func NewIndexedGrain[T any](items []T, grain int) IndexedRange[T] {
	if grain < 1 {
		panic("parallel: grain must be positive")
	}
	return IndexedRange[T]{items: items, grain: grain}
}

// Len returns the number of elements.
func (r IndexedRange[T]) Len() int { return len(r.items) }

// At returns the pair (i, items[i]).
func (r IndexedRange[T]) At(i int) Pair[int, T] {
	return Pair[int, T]{First: i, Second: r.items[i]}
}

// IsDivisible reports whether the slice is longer than its grain.
func (r IndexedRange[T]) IsDivisible() bool { return len(r.items) > r.grain }

// Pair is the stock tuple-like aggregate: a two-argument operator receives
// First and Second as separate arguments, in that order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Fields returns the pair's fields in declared order.
func (p Pair[A, B]) Fields() []any { return []any{p.First, p.Second} }

// Compile-time check that Pair unpacks.
var _ shape.Tuple = Pair[int, string]{}
