package seqs

import "iter"

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs the elements of seq1 and seq2 positionally.
// Iteration stops as soon as either sequence is exhausted, so the result has
// the length of the shorter input.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2], opts ...ZipOption) iter.Seq[Pair[T1, T2]] {
	cfg := newZipConfig(opts)
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		n := 0
		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				// seq1 still produced v1
				cfg.reportMismatch(n, "second")
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
			n++
		}

		if cfg.logger == nil {
			return
		}
		if _, more := next2(); more {
			cfg.reportMismatch(n, "first")
		}
	}
}

// Enumerate yields every element of seq together with its zero-based position.
// The index starts over on each new iteration.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}
