package booking

import (
	"errors"
	"fmt"
)

// Category errors. Every error returned by this package matches exactly one
// of them with errors.Is.
var (
	ErrValidation = errors.New("booking validation failed")
	ErrOverlap    = errors.New("interval overlaps an existing reservation")
)

var (
	ErrInvalidDate            = fmt.Errorf("%w: invalid date", ErrValidation)
	ErrInvalidClockTime       = fmt.Errorf("%w: invalid clock time", ErrValidation)
	ErrInvalidInterval        = fmt.Errorf("%w: interval end is before its start", ErrValidation)
	ErrEndBeforeStart         = fmt.Errorf("%w: end date is before start date", ErrValidation)
	ErrMinimumDuration        = fmt.Errorf("%w: minimum booking duration is 1 day", ErrValidation)
	ErrCustomEndNotAfterStart = fmt.Errorf("%w: same-day end time must be after the start time", ErrValidation)
	ErrUnknownReturnSlot      = fmt.Errorf("%w: unknown return slot", ErrValidation)
	ErrOutsideWindow          = fmt.Errorf("%w: selected dates are outside the booking window", ErrValidation)
)

// OverlapError reports the first reserved interval the proposal collides with.
type OverlapError struct {
	Proposed TimeInterval
	Conflict TimeInterval
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s: proposed %s conflicts with %s", ErrOverlap, e.Proposed, e.Conflict)
}

func (e *OverlapError) Is(target error) bool {
	return target == ErrOverlap
}
