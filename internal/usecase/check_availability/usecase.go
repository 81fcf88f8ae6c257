package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/availability"
	vehicleClient "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/integrations/vehicleservice"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/vntime"
)

// UseCase checks a candidate rental window against the vehicle's existing
// bookings. The result is advisory: CreateBooking re-runs the same check
// inside a serializable transaction before inserting.
type UseCase struct {
	bookingRepo   BookingRepository
	vehicleClient VehicleServiceClient
	logger        Logger
}

// NewUseCase creates the use case.
func NewUseCase(bookingRepo BookingRepository, vehicleClient VehicleServiceClient, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		vehicleClient: vehicleClient,
		logger:        logger,
	}
}

// Execute runs the use case.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: vehicle=%d, start=%s, end=%s",
		req.VehicleID, vntime.Format(req.Start), vntime.Format(req.End))

	// 1. Validate input data
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Get the vehicle from the main backend
	vehicle, err := uc.vehicleClient.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleClient.ErrVehicleNotFound) {
			uc.logger.Warn("CheckAvailability: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 3. Get the active booking snapshot
	bookings, err := uc.bookingRepo.GetByVehicle(ctx, req.VehicleID, false)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings for vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Run the buffer-conflict check
	report := availability.CheckBufferConflict(vehicle.VehicleType, req.Start, req.End, bookings)

	conflictIDs := make([]int64, 0, len(report.ConflictingBookings))
	for _, b := range report.ConflictingBookings {
		conflictIDs = append(conflictIDs, b.ID)
	}

	uc.logger.Info("CheckAvailability: vehicle=%d, available=%t, conflicts=%d",
		req.VehicleID, !report.HasConflict, len(conflictIDs))

	return &Response{
		VehicleID:             req.VehicleID,
		Start:                 req.Start,
		End:                   req.End,
		Available:             !report.HasConflict,
		Message:               report.Message,
		ConflictingBookingIDs: conflictIDs,
	}, nil
}

func validateRequest(req *Request) error {
	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}
	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}
	if req.End.IsZero() {
		return fmt.Errorf("%w: end is required", ErrInvalidInput)
	}
	if !req.End.After(req.Start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}
	return nil
}
