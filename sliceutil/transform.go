package sliceutil

import (
	"slices"

	"iterkit/seqs"
)

// Select returns a new slice with the elements that satisfy the predicate, in their original order.
func Select[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	// Heuristic pre-allocation of capacity
	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// Map transforms a slice of type T to a slice of type R.
func Map[T any, R any](collection []T, transform func(T) R) []R {
	if len(collection) == 0 {
		return []R{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// Range returns start, start+step, ... for every value below end.
// A non-positive step returns an empty slice. Iteration stops when the next
// value would wrap around or, for floats, would not advance.
func Range[T seqs.Number](start, end, step T) []T {
	res := []T{}
	if step <= 0 || start >= end {
		return res
	}
	v := start
	for {
		res = append(res, v)
		next := v + step
		if next <= v || next >= end {
			return res
		}
		v = next
	}
}

// Slice copies the elements at positions start, start+step, ... below
// min(end, len(collection)). Out-of-range bounds are clamped, never reported.
func Slice[T any](collection []T, start, end, step int) []T {
	start = max(start, 0)
	end = min(end, len(collection))
	if step <= 0 || start >= end {
		return []T{}
	}

	// start < end, so neither expression can overflow
	count := (end-start-1)/step + 1
	res := make([]T, count)
	for k := range count {
		res[k] = collection[start+k*step]
	}
	return res
}

// Equals reports whether a and b have the same length and equal elements at every position.
func Equals[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range seqs.Zip(slices.Values(a), slices.Values(b)) {
		if p.V1 != p.V2 {
			return false
		}
	}
	return true
}
