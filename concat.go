package funcz

import "iter"

// Concat produces the lazy concatenation of the given sequences, consumed
// left to right with each fully exhausted before the next begins.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Flatten concatenates a lazy sequence of sequences. Like Concat, each
// inner sequence is exhausted before the next is pulled; the outer sequence
// is itself consumed lazily, so an infinite sequence of sequences is fine
// as long as consumption stops.
func Flatten[T any](seqs iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Interpose produces seq with sep inserted between every pair of
// consecutive elements.
//
//	funcz.Interpose(0, funcz.SeqOf(1, 2, 3))
//	// 1, 0, 2, 0, 3
func Interpose[T any](sep T, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for v := range seq {
			if !first && !yield(sep) {
				return
			}
			first = false
			if !yield(v) {
				return
			}
		}
	}
}
