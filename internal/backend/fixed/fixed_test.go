package fixed

import (
	"sort"
	"sync"
	"sync/atomic"
	"testing"
)

func collectSpans(record func(body func(lo, hi int))) [][2]int {
	var mu sync.Mutex
	var spans [][2]int
	record(func(lo, hi int) {
		mu.Lock()
		spans = append(spans, [2]int{lo, hi})
		mu.Unlock()
	})
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })
	return spans
}

func TestFor_FixedSpanCount(t *testing.T) {
	b := NewWithSpans(4, DefaultReduceThreshold)

	spans := collectSpans(func(body func(lo, hi int)) {
		b.For(1000, body)
	})

	if len(spans) != 4 {
		t.Fatalf("expected 4 spans, got %v", spans)
	}
	next := 0
	for _, s := range spans {
		if s[0] != next {
			t.Errorf("span gap or overlap at %v", s)
		}
		next = s[1]
	}
	if next != 1000 {
		t.Errorf("spans end at %d, want 1000", next)
	}
}

func TestFor_FewerItemsThanSpans(t *testing.T) {
	b := NewWithSpans(8, DefaultReduceThreshold)

	spans := collectSpans(func(body func(lo, hi int)) {
		b.For(2, body)
	})

	if len(spans) != 2 {
		t.Errorf("expected one span per item, got %v", spans)
	}
}

func TestFor_Coverage(t *testing.T) {
	b := New()
	n := 997 // deliberately not a multiple of the span count

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

func TestReduce_BelowThresholdRunsSequentially(t *testing.T) {
	b := NewWithSpans(4, 128)

	var spans [][2]int
	got := b.Reduce(100, 0,
		func(a, b any) any { return a.(int) + b.(int) },
		func(lo, hi int, acc any) any {
			spans = append(spans, [2]int{lo, hi}) // single caller-side fold, no lock needed
			sum := acc.(int)
			for i := lo; i < hi; i++ {
				sum += i
			}
			return sum
		})

	if len(spans) != 1 || spans[0] != [2]int{0, 100} {
		t.Errorf("expected one sequential span, got %v", spans)
	}
	if got != 4950 {
		t.Errorf("expected 4950, got %v", got)
	}
}

func TestReduce_AboveThresholdGoesParallel(t *testing.T) {
	b := NewWithSpans(4, 128)
	n := 1000

	var mu sync.Mutex
	var spans [][2]int
	got := b.Reduce(n, 0,
		func(a, b any) any { return a.(int) + b.(int) },
		func(lo, hi int, acc any) any {
			mu.Lock()
			spans = append(spans, [2]int{lo, hi})
			mu.Unlock()
			sum := acc.(int)
			for i := lo; i < hi; i++ {
				sum += i
			}
			return sum
		})

	if len(spans) != 4 {
		t.Errorf("expected 4 spans, got %v", spans)
	}
	if want := n * (n - 1) / 2; got != want {
		t.Errorf("expected %d, got %v", want, got)
	}
}

func TestReduce_Empty(t *testing.T) {
	b := New()
	got := b.Reduce(0, 7,
		func(a, b any) any { return a.(int) + b.(int) },
		func(lo, hi int, acc any) any { return acc })
	if got != 7 {
		t.Errorf("empty reduce must return init, got %v", got)
	}
}

func TestNewWithSpans_Invalid(t *testing.T) {
	for name, fn := range map[string]func(){
		"zero spans":         func() { NewWithSpans(0, 128) },
		"negative threshold": func() { NewWithSpans(4, -1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
