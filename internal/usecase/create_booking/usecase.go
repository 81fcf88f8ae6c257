package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/availability"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
	vehicleClient "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/integrations/vehicleservice"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/ptr"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/vntime"
)

// UseCase creates a booking.
type UseCase struct {
	bookingRepo   BookingRepository
	vehicleClient VehicleServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleClient VehicleServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		vehicleClient: vehicleClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute creates the booking inside a serializable transaction: the
// conflict check and the insert must see the same snapshot, otherwise two
// concurrent renters could both pass the check and double-book the vehicle.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: renter=%d, vehicle=%d, start=%s, end=%s",
		req.RenterID, req.VehicleID, vntime.Format(req.Start), vntime.Format(req.End))

	// 1. Validate input data
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Get the current time
	now := uc.timeProvider.Now()

	if req.Start.Before(now) {
		uc.logger.Warn("CreateBooking: window starts in the past: start=%s", vntime.Format(req.Start))
		return nil, ErrInvalidDate
	}

	// 3. Get the vehicle from the main backend
	vehicle, err := uc.vehicleClient.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleClient.ErrVehicleNotFound) {
			uc.logger.Warn("CreateBooking: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 4. Check the vehicle is open for rental
	if err := validateVehicleAvailable(vehicle); err != nil {
		uc.logger.Warn("CreateBooking: vehicle id=%d is not available, status=%s", vehicle.ID, vehicle.Status)
		return nil, err
	}

	// 5. Classify the window and price it
	calc, err := domain.CalculateRentalDuration(req.Start, req.End)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid rental window: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	totalCost := domain.CalculateRentalPrice(calc, vehicle.HourlyRate(), vehicle.CostPerDay)

	var result *domain.Booking

	// 6. Conflict re-check and insert in a serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Lock the vehicle's active bookings (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByVehicle(txCtx, req.VehicleID, false)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Re-run the buffer-conflict check against the locked snapshot
		report := availability.CheckBufferConflict(vehicle.VehicleType, req.Start, req.End, bookings)
		if report.HasConflict {
			uc.logger.Warn("CreateBooking: window conflicts with %d booking(s): %s",
				len(report.ConflictingBookings), report.Message)
			return &ConflictError{Message: report.Message}
		}

		// 6.3. Insert the booking with the denormalized quote
		booking := &domain.Booking{
			VehicleID:        req.VehicleID,
			RenterID:         req.RenterID,
			TimeBookingStart: req.Start,
			TimeBookingEnd:   req.End,
			Status:           domain.StatusPending,
			VehicleName:      ptr.Ptr(vehicle.Name),
			TotalCost:        totalCost,
			PriceType:        calc.PriceType,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, totalCost=%.0f, priceType=%s",
		result.ID, result.TotalCost, result.PriceType)

	return &Response{
		ID:          result.ID,
		RenterID:    result.RenterID,
		VehicleID:   result.VehicleID,
		Start:       result.TimeBookingStart,
		End:         result.TimeBookingEnd,
		Status:      string(result.Status),
		VehicleName: result.VehicleName,
		TotalCost:   result.TotalCost,
		PriceType:   result.PriceType,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
