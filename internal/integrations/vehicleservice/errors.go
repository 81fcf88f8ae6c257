package vehicleservice

import "errors"

var (
	// ErrVehicleNotFound is returned when the vehicle does not exist
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("vehicleservice client: internal error")

	// ErrInvalidResponse is returned when the backend response cannot be used
	ErrInvalidResponse = errors.New("vehicleservice client: invalid response")
)
