// Package group runs span tasks on their own goroutines and propagates the
// first panic to the goroutine that waits on them.
package group

import (
	"fmt"
	"runtime"
	"sync"
)

// PanicError wraps a panic recovered from a span goroutine together with the
// stack trace captured at the point of the panic. Wait re-raises it on the
// waiting goroutine.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error returns the panic value together with the captured stack trace.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

// Group is a set of goroutines awaited together. The zero value is ready to
// use. A Group must not be reused after Wait returns.
type Group struct {
	wg  sync.WaitGroup
	mu  sync.Mutex
	pan *PanicError
}

// Go runs fn on a new goroutine. A panic in fn is recorded instead of
// crashing the process; Wait re-raises it.
func (g *Group) Go(fn func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			if v := recover(); v != nil {
				g.record(v)
			}
		}()
		fn()
	}()
}

func (g *Group) record(v any) {
	// 8 KiB covers most stacks; runtime.Stack truncates gracefully.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pan == nil {
		g.pan = &PanicError{Value: v, Stack: string(buf[:n])}
	}
}

// Wait blocks until every goroutine started with Go has finished. If any of
// them panicked, the first captured panic is re-raised here as a
// *PanicError.
func (g *Group) Wait() {
	g.wg.Wait()
	if g.pan != nil {
		panic(g.pan)
	}
}
