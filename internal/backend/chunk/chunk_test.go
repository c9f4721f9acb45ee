package chunk

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/parfor-go/parfor/internal/backend/group"
)

func TestFor(t *testing.T) {
	b := New()
	n := 1000

	visits := make([]int32, n)
	b.For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&visits[i], 1)
		}
	})

	for i, v := range visits {
		if v != 1 {
			t.Errorf("index %d visited %d times, want 1", i, v)
		}
	}
}

func TestFor_SingleWorker(t *testing.T) {
	b := NewWithWorkers(1)

	var mu sync.Mutex
	var spans [][2]int
	b.For(100, func(lo, hi int) {
		mu.Lock()
		spans = append(spans, [2]int{lo, hi})
		mu.Unlock()
	})

	if len(spans) != 1 || spans[0] != [2]int{0, 100} {
		t.Errorf("expected a single full span, got %v", spans)
	}
}

func TestFor_Empty(t *testing.T) {
	b := New()
	called := false
	b.For(0, func(lo, hi int) {
		called = true
	})
	if called {
		t.Error("body must not run for an empty range")
	}
}

func TestReduce(t *testing.T) {
	b := NewWithWorkers(4)
	n := 1000

	got := b.Reduce(n, 0,
		func(a, b any) any { return a.(int) + b.(int) },
		func(lo, hi int, acc any) any {
			sum := acc.(int)
			for i := lo; i < hi; i++ {
				sum += i
			}
			return sum
		})

	want := n * (n - 1) / 2
	if got != want {
		t.Errorf("expected %d, got %d", want, got)
	}
}

func TestReduce_Empty(t *testing.T) {
	b := New()
	got := b.Reduce(0, 42,
		func(a, b any) any { return a.(int) + b.(int) },
		func(lo, hi int, acc any) any { return acc })
	if got != 42 {
		t.Errorf("empty reduce must return init, got %v", got)
	}
}

func TestNewWithWorkers_Invalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero workers")
		}
	}()
	NewWithWorkers(0)
}

func TestFor_PanicPropagates(t *testing.T) {
	b := NewWithWorkers(4)

	defer func() {
		pe, ok := recover().(*group.PanicError)
		if !ok {
			t.Fatalf("expected *group.PanicError, got %v", pe)
		}
		if pe.Value != "boom" {
			t.Errorf("expected panic value boom, got %v", pe.Value)
		}
	}()
	b.For(1000, func(lo, hi int) {
		if lo == 0 {
			panic("boom")
		}
	})
	t.Fatal("expected panic")
}

func BenchmarkFor(b *testing.B) {
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		backend := New()
		for i := 0; i < b.N; i++ {
			var sum int64
			backend.For(n, func(lo, hi int) {
				var local int64
				for j := lo; j < hi; j++ {
					local += int64(j)
				}
				atomic.AddInt64(&sum, local)
			})
		}
	})

	b.Run("single-worker", func(b *testing.B) {
		backend := NewWithWorkers(1)
		for i := 0; i < b.N; i++ {
			var sum int64
			backend.For(n, func(lo, hi int) {
				var local int64
				for j := lo; j < hi; j++ {
					local += int64(j)
				}
				atomic.AddInt64(&sum, local)
			})
		}
	})
}

func BenchmarkReduce(b *testing.B) {
	n := 10000
	combine := func(a, b any) any { return a.(int) + b.(int) }
	body := func(lo, hi int, acc any) any {
		sum := acc.(int)
		for i := lo; i < hi; i++ {
			sum += i
		}
		return sum
	}

	b.Run("parallel", func(b *testing.B) {
		backend := New()
		for i := 0; i < b.N; i++ {
			backend.Reduce(n, 0, combine, body)
		}
	})

	b.Run("single-worker", func(b *testing.B) {
		backend := NewWithWorkers(1)
		for i := 0; i < b.N; i++ {
			backend.Reduce(n, 0, combine, body)
		}
	})
}
