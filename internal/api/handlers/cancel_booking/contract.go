package cancel_booking

import (
	"context"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
