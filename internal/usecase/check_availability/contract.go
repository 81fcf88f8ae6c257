package check_availability

import (
	"context"
	"time"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
)

// BookingRepository reads the vehicle's booking snapshot.
type BookingRepository interface {
	GetByVehicle(ctx context.Context, vehicleID int64, includeCancelled bool) ([]*domain.Booking, error)
}

// VehicleServiceClient fetches vehicle data from the main backend.
type VehicleServiceClient interface {
	GetVehicle(ctx context.Context, vehicleID int64) (*domain.Vehicle, error)
}

// TimeProvider supplies the current time (pinned in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface of the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
