package sliceutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"iterkit/sliceutil"
)

func TestShapeString(t *testing.T) {
	assert.Equal(t, "[1,2,3,-1,-2,-3]", sliceutil.ShapeString([]int{1, 2, 3, -1, -2, -3}))
	assert.Equal(t, "[]", sliceutil.ShapeString([]int{}))
	assert.Equal(t, "[0.5,2]", sliceutil.ShapeString([]float64{0.5, 2}))
}

func TestShapeStringNested(t *testing.T) {
	assert.Equal(t, "[[1,2,3],[1,2,3],[1,2,3],[1,2,3]]", sliceutil.ShapeStringNested(fourTimes123))
	assert.Equal(t, "[[1,2],[]]", sliceutil.ShapeStringNested([][]int{{1, 2}, {}}))
	assert.Equal(t, "[]", sliceutil.ShapeStringNested([][]int{}))
}
