package indicator

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a period, capacity or window parameter
	// violates the minimum an indicator requires.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidData is returned when the historical samples supplied to a
	// constructor are too few to seed the indicator.
	ErrInvalidData = errors.New("invalid data")
)
