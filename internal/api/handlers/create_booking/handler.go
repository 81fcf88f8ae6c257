package create_booking

import (
	"errors"
	"net/http"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/api/handlers"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/api/middleware"
	createBooking "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "nội dung yêu cầu không hợp lệ"
	msgMissingUserID       = "thiếu thông tin người dùng"
	msgVehicleNotFound     = "không tìm thấy xe"
	msgVehicleNotAvailable = "xe hiện không cho thuê"
	msgInvalidDate         = "thời gian thuê không được ở trong quá khứ"
	msgInvalidInput        = "dữ liệu đặt xe không hợp lệ"
	msgWindowConflict      = "xe đã được đặt trong khoảng thời gian này"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	renterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(renterID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrVehicleNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrVehicleNotAvailable):
			h.logger.Warn("POST /bookings - Vehicle not available: vehicle_id=%d", req.VehicleID)
			handlers.RespondConflict(w, msgVehicleNotAvailable)

		case errors.Is(err, createBooking.ErrWindowConflict):
			h.logger.Warn("POST /bookings - Window conflict: vehicle_id=%d, renter_id=%d, error=%v",
				req.VehicleID, renterID, err)
			handlers.RespondConflict(w, conflictMessage(err))

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Window in the past: vehicle_id=%d", req.VehicleID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: vehicle_id=%d, error=%v", req.VehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: vehicle_id=%d, renter_id=%d, error=%v",
				req.VehicleID, renterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, vehicle_id=%d, renter_id=%d",
		result.ID, result.VehicleID, renterID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// conflictMessage extracts the user-facing conflict explanation.
func conflictMessage(err error) string {
	var conflictErr *createBooking.ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Message
	}
	return msgWindowConflict
}
