package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
	vehicleClient "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/integrations/vehicleservice"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/vntime"
)

// UseCase quotes a rental window against the vehicle's rates.
type UseCase struct {
	vehicleClient VehicleServiceClient
	logger        Logger
}

// NewUseCase creates the use case.
func NewUseCase(vehicleClient VehicleServiceClient, logger Logger) *UseCase {
	return &UseCase{
		vehicleClient: vehicleClient,
		logger:        logger,
	}
}

// Execute runs the use case.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetQuote: vehicle=%d, start=%s, end=%s",
		req.VehicleID, vntime.Format(req.Start), vntime.Format(req.End))

	// 1. Validate input data
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Get the vehicle from the main backend
	vehicle, err := uc.vehicleClient.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleClient.ErrVehicleNotFound) {
			uc.logger.Warn("GetQuote: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("GetQuote: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 3. Classify the window and price it
	calc, err := domain.CalculateRentalDuration(req.Start, req.End)
	if err != nil {
		uc.logger.Warn("GetQuote: invalid rental window: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	totalCost := domain.CalculateRentalPrice(calc, vehicle.HourlyRate(), vehicle.CostPerDay)

	uc.logger.Info("GetQuote: vehicle=%d, priceType=%s, totalCost=%.0f",
		req.VehicleID, calc.PriceType, totalCost)

	return &Response{
		VehicleID:      req.VehicleID,
		Start:          req.Start,
		End:            req.End,
		PriceType:      calc.PriceType,
		BillingDays:    calc.BillingDays,
		BillingHours:   calc.BillingHours,
		BillingMinutes: calc.BillingMinutes,
		TotalCost:      totalCost,
		DurationLabel:  domain.FormatRentalDuration(calc),
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
	return nil
}
