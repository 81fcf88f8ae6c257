package get_renter_bookings

import (
	"context"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/service/bookings/models"
)

type BookingService interface {
	GetRenterBookings(ctx context.Context, req *models.GetRenterBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
