package create_booking

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrVehicleNotAvailable is returned when the vehicle is not open for rental
	ErrVehicleNotAvailable = errors.New("create_booking: vehicle is not available for rental")

	// ErrWindowConflict is returned when the requested window conflicts with an existing booking
	ErrWindowConflict = errors.New("create_booking: window conflicts with an existing booking")

	// ErrInvalidDate is returned when the rental window starts in the past
	ErrInvalidDate = errors.New("create_booking: rental window starts in the past")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError wraps ErrWindowConflict and carries the user-facing
// explanation the conflict detector produced, so the handler can surface
// it verbatim.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return ErrWindowConflict.Error() + ": " + e.Message
}

func (e *ConflictError) Unwrap() error {
	return ErrWindowConflict
}
