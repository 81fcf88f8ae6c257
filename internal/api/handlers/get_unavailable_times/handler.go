package get_unavailable_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/api/handlers"
	getUnavailableTimes "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/usecase/get_unavailable_times"
)

const (
	msgInvalidVehicleID = "ID xe không hợp lệ"
	msgMissingDate      = "ngày là bắt buộc"
	msgInvalidDate      = "định dạng ngày không hợp lệ, cần YYYY-MM-DD"
	msgVehicleNotFound  = "không tìm thấy xe"
)

type Handler struct {
	useCase GetUnavailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetUnavailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/unavailable-times
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleIDStr := vars["vehicleId"]
	vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/unavailable-times - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /vehicles/{id}/unavailable-times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(vehicleID, dateStr)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/unavailable-times - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getUnavailableTimes.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{id}/unavailable-times - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, getUnavailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/unavailable-times - Invalid input: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /vehicles/{id}/unavailable-times - Failed: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/unavailable-times - Retrieved successfully: vehicle_id=%d, date=%s, day_disabled=%t",
		vehicleID, dateStr, result.DayDisabled)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
