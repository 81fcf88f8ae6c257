package create_booking

import (
	"context"

	createBooking "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
