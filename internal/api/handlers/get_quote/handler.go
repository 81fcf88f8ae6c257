package get_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/api/handlers"
	getQuote "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/usecase/get_quote"
)

const (
	msgInvalidVehicleID = "ID xe không hợp lệ"
	msgMissingWindow    = "thời gian bắt đầu và kết thúc là bắt buộc"
	msgInvalidWindow    = "định dạng thời gian không hợp lệ, cần yyyy-MM-ddTHH:mm:ss"
	msgInvalidRange     = "khoảng thời gian thuê không hợp lệ"
	msgVehicleNotFound  = "không tìm thấy xe"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/quote
// Query params: start, end (required, yyyy-MM-ddTHH:mm:ss, Vietnam civil time)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleIDStr := vars["vehicleId"]
	vehicleID, err := strconv.ParseInt(vehicleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/quote - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /vehicles/{id}/quote - Missing start or end")
		handlers.RespondBadRequest(w, msgMissingWindow)
		return
	}

	useCaseReq, err := ToUseCaseRequest(vehicleID, startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/quote - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{id}/quote - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/quote - Invalid input: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /vehicles/{id}/quote - Failed: vehicle_id=%d, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/quote - Quote computed: vehicle_id=%d, price_type=%s, total_cost=%.0f",
		vehicleID, result.PriceType, result.TotalCost)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
