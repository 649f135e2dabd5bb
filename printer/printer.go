// Package printer formats scalars, slices and nested slices to an explicit
// io.Writer sink. Arguments are separated by a single space; slices render as
// [a b c] and nested slices as [[a b] [c]].
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"iterkit/sliceutil"
)

type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w, or to os.Stdout when w is nil.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

func (p *Printer) Print(args ...any) (int, error) {
	return io.WriteString(p.w, Sprint(args...))
}

func (p *Printer) Println(args ...any) (int, error) {
	return io.WriteString(p.w, Sprint(args...)+"\n")
}

// Sprint formats every argument with %v and joins them with single spaces.
// Unlike fmt.Sprint, adjacent strings are separated too.
func Sprint(args ...any) string {
	return strings.Join(sliceutil.Map(args, format), " ")
}

func format(arg any) string {
	return fmt.Sprint(arg)
}
