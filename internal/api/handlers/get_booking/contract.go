package get_booking

import (
	"context"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64, renterID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
