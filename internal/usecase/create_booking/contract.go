package create_booking

import (
	"context"
	"time"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
)

// BookingRepository persists bookings and reads the vehicle's snapshot.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByVehicle(ctx context.Context, vehicleID int64, includeCancelled bool) ([]*domain.Booking, error)
}

// VehicleServiceClient fetches vehicle data from the main backend.
type VehicleServiceClient interface {
	GetVehicle(ctx context.Context, vehicleID int64) (*domain.Vehicle, error)
}

// TransactionManager runs functions inside database transactions.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
