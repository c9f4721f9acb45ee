package parallel

import "github.com/parfor-go/parfor/internal/backend/chunk"

// Option configures a single For or Reduce call.
type Option func(*config)

type config struct {
	backend Backend
}

// defaultBackend is shared across calls; the chunk backend keeps no state
// between calls.
var defaultBackend Backend = chunk.New()

func defaultConfig() config {
	return config{backend: defaultBackend}
}

// WithBackend selects the backend used when the range is divisible.
//
// A nil backend disables parallel execution: divisible ranges are then
// traversed sequentially on the calling goroutine.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}
