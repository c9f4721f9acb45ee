package parallel

// Backend executes the spans of a divisible range concurrently. Exactly one
// backend is active per call; the router stays agnostic of how the backend
// schedules its spans.
type Backend interface {
	// For partitions n items into disjoint [lo, hi) spans and runs body on
	// each span, concurrently and in no guaranteed relative order. For
	// returns once every span has completed.
	For(n int, body func(lo, hi int))

	// Reduce partitions n items, folds each span with body seeded from
	// init, and merges the span partials pairwise with combine. The merge
	// order is backend-determined.
	Reduce(n int, init any, combine func(a, b any) any, body func(lo, hi int, acc any) any) any

	// Name identifies the backend.
	Name() string
}
