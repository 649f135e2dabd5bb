package seqs

import "iter"

// Range yields start, start+step, ... stopping before end.
// A negative step counts down; a zero step yields nothing.
// The sequence ends early rather than wrap around at the int limits.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; {
			if !yield(i) {
				return
			}
			next := i + step
			if (step > 0) != (next > i) {
				return
			}
			i = next
		}
	}
}
