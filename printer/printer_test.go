package printer_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iterkit/printer"
	"iterkit/shape"
)

func TestSprint(t *testing.T) {
	x, y, z := 1, float32(2.0), 3.5
	s := "hello"
	v1 := []int{1, 2, 3}
	v3 := []string{"ABC", "DEF"}
	v4 := [][]int{{1, 2, 3}, {4, 5}, {6, 7, 8}}
	tenth, fifth := 0.1, 0.2

	tests := []struct {
		name string
		args []any
		want string
	}{
		{"Scalar", []any{1}, "1"},
		{"Float", []any{1.0}, "1"},
		{"Mixed", []any{1, 2.0}, "1 2"},
		{"Strings", []any{1, x, 2, y, 3, z, 4, s, "abc"}, "1 1 2 2 3 3.5 4 hello abc"},
		{"Containers", []any{v1, v3, v4}, "[1 2 3] [ABC DEF] [[1 2 3] [4 5] [6 7 8]]"},
		{"EmptyNested", []any{[][]int{}}, "[]"},
		{"Shape", []any{shape.FromSlice(v1)}, "[1,2,3]"},
		{"FullPrecision", []any{tenth + fifth}, "0.30000000000000004"},
		{"None", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, printer.Sprint(tt.args...))
		})
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := printer.New(&buf)

	_, err := p.Print("x=", 1)
	require.NoError(t, err)
	_, err = p.Println(" y=", []int{2, 3})
	require.NoError(t, err)
	_, err = p.Println()
	require.NoError(t, err)

	assert.Equal(t, "x= 1 y= [2 3]\n\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestPrinter_WriteError(t *testing.T) {
	p := printer.New(failingWriter{})
	_, err := p.Println("a")
	assert.EqualError(t, err, "sink closed")
}
