package arr

import "github.com/cockroachdb/errors"

// Sentinel errors returned by arr operations.
var (
	// ErrInvalidSize is returned (or panicked with, for [GroupN]) when a
	// group size or slot width is not positive, or a sample size is negative.
	ErrInvalidSize = errors.New("arr: invalid size")
)
