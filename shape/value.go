// Package shape models numeric values of any nesting depth as a tagged variant:
// a scalar, a flat sequence of scalars, or a nested sequence. The reductions
// recurse on that tag instead of on Go container types.
package shape

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"iterkit/seqs"
)

type Kind int

const (
	KindScalar Kind = iota
	// KindSequence is a sequence whose items are all scalars. The empty sequence is flat.
	KindSequence
	// KindNested is a sequence with at least one sequence item.
	KindNested
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindNested:
		return "nested"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Value[T seqs.Number] struct {
	scalar T
	items  []Value[T]
	isSeq  bool
}

func Scalar[T seqs.Number](v T) Value[T] {
	return Value[T]{scalar: v}
}

// Of builds a sequence from the given items. The items slice is copied.
func Of[T seqs.Number](items ...Value[T]) Value[T] {
	return Value[T]{items: slices.Clone(items), isSeq: true}
}

func FromSlice[T seqs.Number](s []T) Value[T] {
	items := make([]Value[T], len(s))
	for i, v := range s {
		items[i] = Scalar(v)
	}
	return Value[T]{items: items, isSeq: true}
}

func FromNested[T seqs.Number](s [][]T) Value[T] {
	items := make([]Value[T], len(s))
	for i, inner := range s {
		items[i] = FromSlice(inner)
	}
	return Value[T]{items: items, isSeq: true}
}

func (v Value[T]) Kind() Kind {
	if !v.isSeq {
		return KindScalar
	}
	for _, item := range v.items {
		if item.isSeq {
			return KindNested
		}
	}
	return KindSequence
}

// Len is the number of direct items; 0 for a scalar.
func (v Value[T]) Len() int {
	return len(v.items)
}

// Scalar returns the scalar payload and whether v is a scalar.
func (v Value[T]) Scalar() (T, bool) {
	return v.scalar, !v.isSeq
}

func (v Value[T]) Items() iter.Seq[Value[T]] {
	return slices.Values(v.items)
}

// Sum adds every scalar reachable from v.
func (v Value[T]) Sum() T {
	if !v.isSeq {
		return v.scalar
	}
	var total T
	for _, item := range v.items {
		total += item.Sum()
	}
	return total
}

// Prod multiplies recursively. A flat empty sequence yields 0.
func (v Value[T]) Prod() T {
	switch v.Kind() {
	case KindScalar:
		return v.scalar
	case KindSequence:
		if len(v.items) == 0 {
			return 0
		}
	}
	prod := T(1)
	for _, item := range v.items {
		prod *= item.Prod()
	}
	return prod
}

// Numel reads v as a shape. A flat sequence is one shape, so its entries are
// multiplied; a nested sequence is a list of shapes, so their Numel values are summed.
func (v Value[T]) Numel() T {
	switch v.Kind() {
	case KindScalar:
		return v.scalar
	case KindSequence:
		return v.Prod()
	}
	var total T
	for _, item := range v.items {
		total += item.Numel()
	}
	return total
}

// String renders v as "3", "[1,2,3]" or "[[1,2,3],[4,5]]".
func (v Value[T]) String() string {
	var sb strings.Builder
	v.writeTo(&sb)
	return sb.String()
}

func (v Value[T]) writeTo(sb *strings.Builder) {
	if !v.isSeq {
		fmt.Fprint(sb, v.scalar)
		return
	}
	sb.WriteByte('[')
	for i, item := range v.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		item.writeTo(sb)
	}
	sb.WriteByte(']')
}
