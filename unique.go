package funcz

import "iter"

// Unique produces the lazy sequence containing only the first occurrence
// (by input order) of each distinct element. The internal seen-set grows
// with the number of distinct elements; the input may be infinite and
// consumption stays single-pass.
//
// Unique is idempotent: Unique(Unique(seq)) yields the same elements as
// Unique(seq).
func Unique[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return UniqueBy(Identity, seq)
}

// UniqueBy produces only the first element for each distinct value of
// key(element).
//
//	// One name per initial:
//	funcz.UniqueBy(func(s string) byte { return s[0] }, names)
func UniqueBy[T any, K comparable](key func(T) K, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// IsDistinct eagerly reports whether no two elements of seq compare equal.
// Short-circuits on the first duplicate.
func IsDistinct[T comparable](seq iter.Seq[T]) bool {
	seen := make(map[T]struct{})
	for v := range seq {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Remove produces the lazy sequence of elements for which pred is false -
// the complement of a filter.
//
//	odds := funcz.Remove(isEven, numbers)
func Remove[T any](pred func(T) bool, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
