package get_unavailable_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/availability"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
	vehicleClient "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/integrations/vehicleservice"
)

// UseCase computes the day/hour/minute restrictions the frontend range
// picker applies for one vehicle. The result is advisory: the backend
// re-validates every booking request.
type UseCase struct {
	bookingRepo   BookingRepository
	vehicleClient VehicleServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates the use case.
func NewUseCase(bookingRepo BookingRepository, vehicleClient VehicleServiceClient, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		vehicleClient: vehicleClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute runs the use case.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetUnavailableTimes: vehicle=%d, date=%s",
		req.VehicleID, req.Date.Format(domain.DateFormat))

	// 1. Validate input data
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetUnavailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Get the vehicle from the main backend
	vehicle, err := uc.vehicleClient.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleClient.ErrVehicleNotFound) {
			uc.logger.Warn("GetUnavailableTimes: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("GetUnavailableTimes: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 3. Get the active booking snapshot
	bookings, err := uc.bookingRepo.GetByVehicle(ctx, req.VehicleID, false)
	if err != nil {
		uc.logger.Error("GetUnavailableTimes: failed to get bookings for vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Build the availability predicates and evaluate the requested day
	window := availability.NewOperatingWindow(vehicle.OpenTime, vehicle.CloseTime)
	schedule := availability.NewSchedule(vehicle.VehicleType, bookings, window, uc.timeProvider.Now(), uc.logger)

	disabledHours := schedule.DisabledHours(req.Date)
	blockedHours := make(map[int]bool, len(disabledHours))
	for _, h := range disabledHours {
		blockedHours[h] = true
	}

	// Minute restrictions only matter for hours the picker still offers.
	disabledMinutes := make(map[int][]int)
	for h := 0; h < 24; h++ {
		if blockedHours[h] {
			continue
		}
		disabledMinutes[h] = schedule.DisabledMinutes(req.Date, h)
	}

	resp := &Response{
		VehicleID:       req.VehicleID,
		Date:            req.Date,
		DayDisabled:     schedule.IsDayDisabled(req.Date),
		DisabledHours:   disabledHours,
		DisabledMinutes: disabledMinutes,
	}

	uc.logger.Info("GetUnavailableTimes: vehicle=%d, date=%s, dayDisabled=%t, disabledHours=%d",
		req.VehicleID, req.Date.Format(domain.DateFormat), resp.DayDisabled, len(resp.DisabledHours))

	return resp, nil
}

func validateRequest(req *Request) error {
	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
