package funcz

import "iter"

// Lazy sequences in funcz are iter.Seq[T] values: pull-based cursors that
// produce elements on demand and may be infinite. Every combinator consumes
// its input in a single forward pass and is early-exit safe - breaking out
// of a range loop stops the whole chain. Whether a sequence can be consumed
// twice is a property of the source (a SeqOf restarts, a channel-backed
// source does not); combinators neither add nor remove restartability.

// SeqOf returns a lazy sequence over the given values. The sequence is
// restartable: each consumption iterates the values from the start.
func SeqOf[T any](vals ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

// Range returns the lazy sequence of integers from start (inclusive) to
// stop (exclusive). Restartable.
func Range(start, stop int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; i < stop; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Materialize consumes a sequence fully into a slice. Calling it on an
// unbounded sequence never returns; bound infinite sources with Take first.
func Materialize[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Iterate produces the infinite sequence x, f(x), f(f(x)), ... The cursor
// carries its own state forward, so a fresh consumption re-derives from x.
//
//	powers := funcz.Iterate(func(n int) int { return n * 2 }, 1)
//	// Take(4, powers): 1, 2, 4, 8
func Iterate[T any](f func(T) T, x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := x; ; v = f(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// Cons produces the lazy sequence with x prepended to seq.
func Cons[T any](x T, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(x) {
			return
		}
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
