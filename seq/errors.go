package seq

import "github.com/cockroachdb/errors"

// Sentinel errors returned by seq operations.
//
// Use [errors.Is] for comparisons; the returned errors wrap these values with
// the offending option name, index or size.
var (
	// ErrInvalidArgument is returned by [UniquifyNamed] when an option name is
	// not recognised or its value has the wrong type.
	ErrInvalidArgument = errors.New("seq: invalid argument")

	// ErrInvalidSize is returned (or panicked with, for lazy constructors)
	// when a chunk size is not positive or a sample size is negative.
	ErrInvalidSize = errors.New("seq: invalid size")

	// ErrNonPositiveWeight is returned by [WeightedSample] when a weight is
	// zero, negative or NaN.
	ErrNonPositiveWeight = errors.New("seq: weight must be greater than 0")
)
