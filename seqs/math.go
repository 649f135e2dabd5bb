package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Prod multiplies every element. An empty sequence yields 0, not 1.
func Prod[T Number](seq iter.Seq[T]) T {
	var prod T
	first := true
	for v := range seq {
		if first {
			prod = v
			first = false
			continue
		}
		prod *= v
	}
	return prod
}

func Min[T constraints.Ordered](s iter.Seq[T]) (T, bool) {
	m := seq.Min(s)
	return m.OrZeroValue(), m.IsPresent()
}

func Max[T constraints.Ordered](s iter.Seq[T]) (T, bool) {
	m := seq.Max(s)
	return m.OrZeroValue(), m.IsPresent()
}
