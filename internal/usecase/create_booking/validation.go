package create_booking

import (
	"fmt"
	"strings"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/vntime"
)

// validateRequest validates the request payload.
func validateRequest(req *Request) error {
	if req.RenterID <= 0 {
		return fmt.Errorf("%w: renterID must be positive", ErrInvalidInput)
	}

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

	// The picker only offers :00 and :30; anything else means the request
	// bypassed the UI.
	if err := validateMinuteAlignment(req); err != nil {
		return err
	}

	return nil
}

func validateMinuteAlignment(req *Request) error {
	startMinute := req.Start.In(vntime.Location()).Minute()
	if !domain.IsAllowedBookingMinute(startMinute) {
		return fmt.Errorf("%w: start minute must be one of %v", ErrInvalidInput, domain.AllowedBookingMinutes)
	}

	endMinute := req.End.In(vntime.Location()).Minute()
	if !domain.IsAllowedBookingMinute(endMinute) {
		return fmt.Errorf("%w: end minute must be one of %v", ErrInvalidInput, domain.AllowedBookingMinutes)
	}

	return nil
}

// validateVehicleAvailable checks the backend marked the vehicle rentable.
// An empty status is treated as available: older backend versions did not
// send the field.
func validateVehicleAvailable(vehicle *domain.Vehicle) error {
	if vehicle.Status == "" {
		return nil
	}
	if strings.EqualFold(vehicle.Status, "AVAILABLE") {
		return nil
	}
	return ErrVehicleNotAvailable
}
