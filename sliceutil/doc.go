// Package sliceutil holds eager helpers over plain slices: selection, slicing,
// unpacking and the sum/prod/numel reduction family in flat ([]T) and nested
// ([][]T) forms. Functions never modify their input.
package sliceutil
