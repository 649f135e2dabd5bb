package sliceutil

import (
	"github.com/pkg/errors"

	"iterkit/seqs"
)

var (
	// ErrEmpty is returned by Max, Min and Fold for an empty slice.
	ErrEmpty = seqs.ErrEmpty
	// ErrInvalidCount is returned by Unpack when the count is not positive.
	ErrInvalidCount = errors.New("count must be greater than 0")
	// ErrOutOfRange is returned by Unpack when the count exceeds the slice length.
	ErrOutOfRange = errors.New("count exceeds slice length")
)
