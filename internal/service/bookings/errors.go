package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the renter does not own the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the booking is past the cancellable statuses
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus is returned on an unknown status filter
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
