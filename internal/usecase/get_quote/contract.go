package get_quote

import (
	"context"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
)

// VehicleServiceClient fetches vehicle data from the main backend.
type VehicleServiceClient interface {
	GetVehicle(ctx context.Context, vehicleID int64) (*domain.Vehicle, error)
}

// Logger is the logging interface of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
