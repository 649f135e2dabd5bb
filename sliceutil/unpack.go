package sliceutil

import (
	"slices"

	"github.com/go-softwarelab/common/pkg/types"
	"github.com/pkg/errors"

	"iterkit/seqs"
)

// Unpack copies the first n elements of collection.
// It fails with ErrInvalidCount for n <= 0 and ErrOutOfRange for n > len(collection).
func Unpack[T any](collection []T, n int) ([]T, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "unpack %d", n)
	}
	if n > len(collection) {
		return nil, errors.Wrapf(ErrOutOfRange, "unpack %d of %d", n, len(collection))
	}
	return slices.Collect(seqs.Take(slices.Values(collection), n)), nil
}

// Unpack2 returns the first two elements as a tuple.
func Unpack2[T any](collection []T) (types.Tuple2[T, T], error) {
	head, err := Unpack(collection, 2)
	if err != nil {
		return types.Tuple2[T, T]{}, err
	}
	return types.NewTuple2(head[0], head[1]), nil
}

// Unpack3 returns the first three elements as a tuple.
func Unpack3[T any](collection []T) (types.Tuple3[T, T, T], error) {
	head, err := Unpack(collection, 3)
	if err != nil {
		return types.Tuple3[T, T, T]{}, err
	}
	return types.NewTuple3(head[0], head[1], head[2]), nil
}
