package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/pkg/errors"
)

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Fold is a left fold seeded with the first element:
// f(...f(f(x1, x2), x3)..., xn). A single element is returned unchanged.
// An empty sequence yields ErrEmpty.
func Fold[T any](s iter.Seq[T], f func(T, T) T) (T, error) {
	return seq.Fold(s, f).OrErrorGet(func() error {
		return errors.Wrap(ErrEmpty, "fold")
	})
}
