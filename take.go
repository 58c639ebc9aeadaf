package funcz

import "iter"

// Take produces a lazy view of the first n elements of seq. A non-positive
// n yields an empty sequence; a seq shorter than n is passed through whole.
// Take is the standard way to bound an infinite source before a
// materializing operation.
func Take[T any](n int, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		remaining := n
		for v := range seq {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}

// Drop produces a lazy view of seq with the first n elements skipped. A
// non-positive n passes seq through unchanged.
func Drop[T any](n int, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Rest produces a lazy view of seq without its first element.
func Rest[T any](seq iter.Seq[T]) iter.Seq[T] {
	return Drop(1, seq)
}

// TakeNth produces every n-th element of seq starting from the first.
// n must be positive; TakeNth panics otherwise, matching the slices.Chunk
// convention for size arguments.
//
//	funcz.TakeNth(2, funcz.SeqOf(10, 20, 30, 40, 50))
//	// 10, 30, 50
func TakeNth[T any](n int, seq iter.Seq[T]) iter.Seq[T] {
	if n < 1 {
		panic("funcz: TakeNth step must be positive")
	}
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i%n == 0 && !yield(v) {
				return
			}
			i++
		}
	}
}

// First eagerly extracts the first element of seq. The second result
// reports whether the sequence produced one.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Second eagerly extracts the second element of seq.
func Second[T any](seq iter.Seq[T]) (T, bool) {
	return Nth(1, seq)
}

// Nth eagerly extracts the element at index n (zero-based), consuming seq
// up to that point. A negative n or a seq shorter than n+1 reports false.
// On an unbounded sequence with no n-th element this never returns - a
// caller hazard, not a defect.
func Nth[T any](n int, seq iter.Seq[T]) (T, bool) {
	var zero T
	if n < 0 {
		return zero, false
	}
	i := 0
	for v := range seq {
		if i == n {
			return v, true
		}
		i++
	}
	return zero, false
}

// Last eagerly extracts the final element of seq via full consumption.
// On an unbounded sequence this never returns.
func Last[T any](seq iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	return last, found
}

// Count eagerly reports the length of seq via full consumption.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
