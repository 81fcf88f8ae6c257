package get_quote

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("usecase: internal error")
)
