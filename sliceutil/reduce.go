package sliceutil

import (
	"slices"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"iterkit/seqs"
)

// Sum adds every element to a zero accumulator.
func Sum[T seqs.Number](collection []T) T {
	var total T
	for _, v := range collection {
		total += v
	}
	return total
}

// SumNested sums the sums of every inner slice.
func SumNested[T seqs.Number](collection [][]T) T {
	var total T
	for _, inner := range collection {
		total += Sum(inner)
	}
	return total
}

// Prod multiplies every element. An empty slice yields 0.
func Prod[T seqs.Number](collection []T) T {
	if len(collection) == 0 {
		return 0
	}
	prod := T(1)
	for _, v := range collection {
		prod *= v
	}
	return prod
}

// ProdNested multiplies the products of every inner slice.
// An empty inner slice contributes 0; an empty outer slice yields 1.
func ProdNested[T seqs.Number](collection [][]T) T {
	prod := T(1)
	for _, inner := range collection {
		prod *= Prod(inner)
	}
	return prod
}

// Numel treats shape as tensor dimensions and returns the element count,
// i.e. the product of the entries. An empty shape yields 0.
func Numel[T seqs.Number](shape []T) T {
	return Prod(shape)
}

// NumelNested returns the total element count of a list of shapes:
// the sum of Numel over every shape. An empty list yields 0.
func NumelNested[T seqs.Number](shapes [][]T) T {
	var total T
	for _, shape := range shapes {
		total += Numel(shape)
	}
	return total
}

// Fold is a left fold seeded with the first element.
// An empty slice yields ErrEmpty.
func Fold[T any](collection []T, f func(T, T) T) (T, error) {
	return seq.Fold(slices.Values(collection), f).OrErrorGet(emptyErr("fold"))
}

// Max returns the greatest element. An empty slice yields ErrEmpty.
func Max[T constraints.Ordered](collection []T) (T, error) {
	return seq.Max(slices.Values(collection)).OrErrorGet(emptyErr("max"))
}

// Min returns the smallest element. An empty slice yields ErrEmpty.
func Min[T constraints.Ordered](collection []T) (T, error) {
	return seq.Min(slices.Values(collection)).OrErrorGet(emptyErr("min"))
}

func emptyErr(op string) func() error {
	return func() error {
		return errors.Wrap(ErrEmpty, op)
	}
}
