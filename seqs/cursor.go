package seqs

import "iter"

// Cursor is a pull-style view over an iter.Seq with an explicit
// advance / current contract:
//
//	c := seqs.NewCursor(seq)
//	defer c.Stop()
//	for c.Next() {
//		use(c.Value())
//	}
type Cursor[T any] struct {
	next func() (T, bool)
	stop func()
	cur  T
	done bool
}

func NewCursor[T any](seq iter.Seq[T]) *Cursor[T] {
	next, stop := iter.Pull(seq)
	return &Cursor[T]{next: next, stop: stop}
}

// Next advances the cursor and reports whether a current element is available.
// Once it returns false it keeps returning false.
func (c *Cursor[T]) Next() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		c.Stop()
		return false
	}
	c.cur = v
	return true
}

// Value returns the current element, or the zero value after exhaustion.
func (c *Cursor[T]) Value() T {
	return c.cur
}

// Stop releases the underlying sequence. It is safe to call more than once.
func (c *Cursor[T]) Stop() {
	if c.done {
		return
	}
	c.done = true
	var zero T
	c.cur = zero
	c.stop()
}
