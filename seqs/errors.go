package seqs

import "github.com/pkg/errors"

// ErrEmpty is returned by operations that need at least one element.
var ErrEmpty = errors.New("empty input")
