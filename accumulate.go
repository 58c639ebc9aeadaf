package funcz

import "iter"

// Accumulate produces the running left-fold of binop over seq: the first
// emitted value is the first element, and each subsequent value folds the
// next element into the previous result. The output has the same length as
// the input and stays lazy, so infinite sources work.
//
//	funcz.Accumulate(func(a, b int) int { return a + b }, funcz.SeqOf(1, 2, 3, 4))
//	// 1, 3, 6, 10
func Accumulate[T any](binop func(T, T) T, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var acc T
		first := true
		for v := range seq {
			if first {
				acc = v
				first = false
			} else {
				acc = binop(acc, v)
			}
			if !yield(acc) {
				return
			}
		}
	}
}

// AccumulateFrom is Accumulate with an explicit initial accumulator: init
// is emitted first, then each element folds into the running value. The
// output is one longer than the input.
//
//	funcz.AccumulateFrom(func(a, b int) int { return a + b }, 100, funcz.SeqOf(1, 2, 3))
//	// 100, 101, 103, 106
func AccumulateFrom[A, T any](binop func(A, T) A, init A, seq iter.Seq[T]) iter.Seq[A] {
	return func(yield func(A) bool) {
		acc := init
		if !yield(acc) {
			return
		}
		for v := range seq {
			acc = binop(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}
