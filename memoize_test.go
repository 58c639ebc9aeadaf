package funcz

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestMemo_SuppressesDuplicateComputation(t *testing.T) {
	calls := 0
	slow := F("slow", func(n int) int {
		calls++
		return n * n
	})
	memo := NewMemo("square", slow)
	defer memo.Close()

	for i := 0; i < 5; i++ {
		v, err := memo.Call(7)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if v != 49 {
			t.Errorf("Expected 49, got %v", v)
		}
	}
	if calls != 1 {
		t.Errorf("Expected exactly 1 underlying invocation, got %d", calls)
	}
}

func TestMemo_DistinctArgsBothInvoked(t *testing.T) {
	calls := 0
	id := F("id", func(n int) int {
		calls++
		return n
	})
	memo := NewMemo("id", id)
	defer memo.Close()

	memo.Call(1) //nolint:errcheck
	memo.Call(2) //nolint:errcheck
	memo.Call(1) //nolint:errcheck

	if calls != 2 {
		t.Errorf("Expected 2 underlying invocations, got %d", calls)
	}
}

func TestMemo_FailuresNotCached(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	flaky := F("flaky", func(n int) (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return n, nil
	})
	memo := NewMemo("flaky", flaky)
	defer memo.Close()

	_, err := memo.Call(3)
	if !errors.Is(err, boom) {
		t.Fatalf("Expected caller error, got %v", err)
	}

	v, err := memo.Call(3)
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if v != 3 {
		t.Errorf("Expected 3, got %v", v)
	}
	if calls != 2 {
		t.Errorf("Expected failure to not be cached, got %d calls", calls)
	}
}

func TestMemo_UnhashableArguments(t *testing.T) {
	calls := 0
	sum := F("sum", func(ns []int) int {
		calls++
		total := 0
		for _, n := range ns {
			total += n
		}
		return total
	})
	memo := NewMemo("sum", sum)
	defer memo.Close()

	_, err := memo.Call([]int{1, 2})
	if !errors.Is(err, ErrUnhashableArguments) {
		t.Fatalf("Expected ErrUnhashableArguments, got %v", err)
	}
	if calls != 0 {
		t.Error("Expected key derivation to fail before the base is invoked")
	}
}

func TestMemo_InterfaceNestedUnhashable(t *testing.T) {
	// A comparable struct carrying a slice behind an interface field must
	// surface ErrUnhashableArguments, never a runtime hash panic.
	type box struct{ X any }

	calls := 0
	echo := F("echo", func(b box) box {
		calls++
		return b
	})
	memo := NewMemo("echo", echo)
	defer memo.Close()

	_, err := memo.Call(box{X: []int{1, 2}})
	if !errors.Is(err, ErrUnhashableArguments) {
		t.Fatalf("Expected ErrUnhashableArguments, got %v", err)
	}
	if calls != 0 {
		t.Error("Expected key derivation to fail before the base is invoked")
	}

	// Hashable contents in the same shape memoize normally.
	v, err := memo.Call(box{X: 7})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v.(box).X != 7 {
		t.Errorf("Expected box{7} back, got %v", v)
	}
	if _, err := memo.Call(box{X: 7}); err != nil {
		t.Fatalf("Expected cached call to succeed, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected exactly one base invocation, got %d", calls)
	}
}

func TestMemo_WithKeyFunc(t *testing.T) {
	calls := 0
	sum := F("sum", func(ns []int) int {
		calls++
		total := 0
		for _, n := range ns {
			total += n
		}
		return total
	})
	memo := NewMemo("sum", sum).WithKeyFunc(HashKey)
	defer memo.Close()

	v, err := memo.Call([]int{1, 2, 3})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v != 6 {
		t.Errorf("Expected 6, got %v", v)
	}

	memo.Call([]int{1, 2, 3}) //nolint:errcheck
	if calls != 1 {
		t.Errorf("Expected 1 invocation with explicit key function, got %d", calls)
	}
}

func TestMemo_WithCache_Shared(t *testing.T) {
	calls := 0
	square := F("square", func(n int) int {
		calls++
		return n * n
	})
	shared := NewMapCache()

	first := NewMemo("first", square).WithCache(shared)
	defer first.Close()
	second := NewMemo("second", square).WithCache(shared)
	defer second.Close()

	first.Call(4)  //nolint:errcheck
	second.Call(4) //nolint:errcheck

	if calls != 1 {
		t.Errorf("Expected shared cache to suppress the second computation, got %d calls", calls)
	}
}

func TestMemo_Metrics(t *testing.T) {
	square := F("square", func(n int) int { return n * n })
	memo := NewMemo("square", square)
	defer memo.Close()

	memo.Call(2) //nolint:errcheck
	memo.Call(2) //nolint:errcheck
	memo.Call(3) //nolint:errcheck

	if got := memo.Metrics().Counter(MemoLookupsTotal).Value(); got != 3 {
		t.Errorf("Expected 3 lookups, got %v", got)
	}
	if got := memo.Metrics().Counter(MemoHitsTotal).Value(); got != 1 {
		t.Errorf("Expected 1 hit, got %v", got)
	}
	if got := memo.Metrics().Counter(MemoMissesTotal).Value(); got != 2 {
		t.Errorf("Expected 2 misses, got %v", got)
	}
}

func TestMemo_Hooks(t *testing.T) {
	square := F("square", func(n int) int { return n * n })
	memo := NewMemo("square", square)
	defer memo.Close()

	events := make(chan MemoEvent, 4)
	if err := memo.OnHit(func(_ context.Context, e MemoEvent) error {
		events <- e
		return nil
	}); err != nil {
		t.Fatalf("Expected hook registration to succeed, got %v", err)
	}
	if err := memo.OnMiss(func(_ context.Context, e MemoEvent) error {
		events <- e
		return nil
	}); err != nil {
		t.Fatalf("Expected hook registration to succeed, got %v", err)
	}

	memo.Call(5) //nolint:errcheck
	memo.Call(5) //nolint:errcheck

	var miss, hit bool
	for i := 0; i < 2; i++ {
		select {
		case e := <-events:
			if e.Hit {
				hit = true
			} else {
				miss = true
			}
			if e.Name != "square" {
				t.Errorf("Expected event name 'square', got %s", e.Name)
			}
		case <-time.After(time.Second):
			t.Fatal("Expected hook events, timed out")
		}
	}
	if !miss || !hit {
		t.Errorf("Expected one miss and one hit event, got miss=%t hit=%t", miss, hit)
	}
}

func TestMemo_WithClock(t *testing.T) {
	clock := clockz.NewFakeClock()
	square := F("square", func(n int) int { return n * n })
	memo := NewMemo("square", square).WithClock(clock)
	defer memo.Close()

	events := make(chan MemoEvent, 1)
	memo.OnMiss(func(_ context.Context, e MemoEvent) error { //nolint:errcheck
		events <- e
		return nil
	})

	memo.Call(2) //nolint:errcheck

	select {
	case e := <-events:
		if !e.Timestamp.Equal(clock.Now()) {
			t.Errorf("Expected event timestamp from fake clock, got %v", e.Timestamp)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected miss event, timed out")
	}
}

func TestMemo_WithLocking_AtMostOncePerKey(t *testing.T) {
	var calls int
	slow := F("slow", func(n int) int {
		calls++
		time.Sleep(5 * time.Millisecond)
		return n * n
	})
	memo := NewMemo("slow", slow).WithLocking()
	defer memo.Close()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := memo.Call(6)
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if v != 36 {
				t.Errorf("Expected 36, got %v", v)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("Expected at-most-once computation per key, got %d calls", calls)
	}
}

func TestMemo_Signature(t *testing.T) {
	add := F("add", func(a, b int) int { return a + b })
	memo := NewMemo("add", add)
	defer memo.Close()

	if got := memo.Signature().Required; got != 2 {
		t.Errorf("Expected base arity 2, got %d", got)
	}

	// Memoized callables curry like any other.
	v, err := Curry(memo, 1).Call(2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if v != 3 {
		t.Errorf("Expected 3, got %v", v)
	}
}

func TestMemoize1(t *testing.T) {
	calls := 0
	square := Memoize1(func(n int) int {
		calls++
		return n * n
	})

	if square(4) != 16 || square(4) != 16 {
		t.Error("Expected 16 both times")
	}
	if calls != 1 {
		t.Errorf("Expected 1 invocation, got %d", calls)
	}
	if square(5) != 25 {
		t.Error("Expected 25")
	}
	if calls != 2 {
		t.Errorf("Expected 2 invocations, got %d", calls)
	}
}

func TestMemoize2(t *testing.T) {
	calls := 0
	concat := Memoize2(func(a, b string) string {
		calls++
		return a + b
	})

	if concat("x", "y") != "xy" || concat("x", "y") != "xy" {
		t.Error("Expected xy both times")
	}
	if calls != 1 {
		t.Errorf("Expected 1 invocation, got %d", calls)
	}
	// Argument boundaries matter: ("x","y") and ("xy","") are distinct keys.
	if concat("xy", "") != "xy" {
		t.Error("Expected xy")
	}
	if calls != 2 {
		t.Errorf("Expected 2 invocations, got %d", calls)
	}
}
