package funcz

import "iter"

// Partition produces a lazy sequence of []T groups of length n. A final
// group shorter than n is dropped; use PartitionPad to keep it padded
// instead. n must be positive; Partition panics otherwise, matching the
// slices.Chunk convention.
//
//	funcz.Partition(2, funcz.SeqOf(1, 2, 3))
//	// [1 2]  (the short tail [3] is dropped)
//
// Each emitted group is a fresh slice; consumers may retain them.
func Partition[T any](n int, seq iter.Seq[T]) iter.Seq[[]T] {
	if n < 1 {
		panic("funcz: Partition size must be positive")
	}
	return func(yield func([]T) bool) {
		group := make([]T, 0, n)
		for v := range seq {
			group = append(group, v)
			if len(group) == n {
				if !yield(group) {
					return
				}
				group = make([]T, 0, n)
			}
		}
	}
}

// PartitionPad is Partition with a pad value: a final group shorter than n
// is filled out with pad to length n rather than dropped.
//
//	funcz.PartitionPad(2, funcz.SeqOf(1, 2, 3), 0)
//	// [1 2], [3 0]
func PartitionPad[T any](n int, seq iter.Seq[T], pad T) iter.Seq[[]T] {
	if n < 1 {
		panic("funcz: PartitionPad size must be positive")
	}
	return func(yield func([]T) bool) {
		group := make([]T, 0, n)
		for v := range seq {
			group = append(group, v)
			if len(group) == n {
				if !yield(group) {
					return
				}
				group = make([]T, 0, n)
			}
		}
		if len(group) > 0 {
			for len(group) < n {
				group = append(group, pad)
			}
			yield(group)
		}
	}
}
