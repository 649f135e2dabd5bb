package sliceutil

import (
	"iterkit/seqs"
	"iterkit/shape"
)

// ShapeString renders a shape as "[1,2,3]".
func ShapeString[T seqs.Number](s []T) string {
	return shape.FromSlice(s).String()
}

// ShapeStringNested renders a list of shapes as "[[1,2,3],[4,5]]".
func ShapeStringNested[T seqs.Number](s [][]T) string {
	return shape.FromNested(s).String()
}
