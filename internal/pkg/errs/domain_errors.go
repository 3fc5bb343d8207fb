package errs

import "errors"

// Usecase-level sentinel errors shared by commands, queries and handlers
var (
	// Car errors
	ErrCarNotFound = errors.New("car not found")

	// Booking errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrExtensionNotOffered = errors.New("extension is only offered for active bookings")
)
