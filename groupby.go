package funcz

import "iter"

// GroupBy materializes a mapping from key(element) to the slice of elements
// sharing that key. Within each group, element order matches first-seen
// order in the input; every input element lands in exactly one group. The
// input is consumed fully in a single pass, so it must be finite.
//
//	funcz.GroupBy(func(n int) int { return n % 2 }, funcz.SeqOf(1, 2, 3, 4, 5))
//	// map[0:[2 4] 1:[1 3 5]]
func GroupBy[T any, K comparable](key func(T) K, seq iter.Seq[T]) map[K][]T {
	groups := make(map[K][]T)
	for v := range seq {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}

// Frequencies materializes a mapping from each distinct element to its
// occurrence count. Full single-pass consumption; the input must be finite.
//
//	funcz.Frequencies(funcz.SeqOf(1, 1, 2, 3, 3, 3))
//	// map[1:2 2:1 3:3]
func Frequencies[T comparable](seq iter.Seq[T]) map[T]int {
	counts := make(map[T]int)
	for v := range seq {
		counts[v]++
	}
	return counts
}

// ReduceBy materializes a mapping from key(element) to the running
// left-fold of binop over the elements sharing that key, each group seeded
// with init. It is GroupBy and a per-group reduction fused into one pass,
// never holding a whole group in memory.
//
//	funcz.ReduceBy(
//	    func(n int) int { return n % 2 },
//	    func(acc, n int) int { return acc + n },
//	    funcz.SeqOf(1, 2, 3, 4, 5),
//	    0,
//	)
//	// map[0:6 1:9]
func ReduceBy[T any, K comparable, A any](key func(T) K, binop func(A, T) A, seq iter.Seq[T], init A) map[K]A {
	acc := make(map[K]A)
	for v := range seq {
		k := key(v)
		a, ok := acc[k]
		if !ok {
			a = init
		}
		acc[k] = binop(a, v)
	}
	return acc
}

// ReduceByFirst is ReduceBy without an initial accumulator: each group is
// seeded with its own first element, and binop folds the remainder. A group
// is created only when an element arrives, so the empty-group reduction
// case is unreachable by construction.
func ReduceByFirst[T any, K comparable](key func(T) K, binop func(T, T) T, seq iter.Seq[T]) map[K]T {
	acc := make(map[K]T)
	for v := range seq {
		k := key(v)
		a, ok := acc[k]
		if !ok {
			acc[k] = v
			continue
		}
		acc[k] = binop(a, v)
	}
	return acc
}
