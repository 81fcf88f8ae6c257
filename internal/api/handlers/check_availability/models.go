package check_availability

import (
	checkAvailability "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/usecase/check_availability"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/vntime"
)

// AvailabilityResponse is the HTTP response model.
type AvailabilityResponse struct {
	VehicleID             int64   `json:"vehicleId"`
	Start                 string  `json:"start"`
	End                   string  `json:"end"`
	Available             bool    `json:"available"`
	Message               string  `json:"message,omitempty"`
	ConflictingBookingIDs []int64 `json:"conflictingBookingIds,omitempty"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		VehicleID:             resp.VehicleID,
		Start:                 vntime.Format(resp.Start),
		End:                   vntime.Format(resp.End),
		Available:             resp.Available,
		Message:               resp.Message,
		ConflictingBookingIDs: resp.ConflictingBookingIDs,
	}
}

// ToUseCaseRequest builds the use case request from the parsed URL parts.
// start and end are civil Vietnam-time datetimes in the wire format.
func ToUseCaseRequest(vehicleID int64, startStr, endStr string) (*checkAvailability.Request, error) {
	start, err := vntime.ParseString(startStr)
	if err != nil {
		return nil, err
	}

	end, err := vntime.ParseString(endStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		VehicleID: vehicleID,
		Start:     start,
		End:       end,
	}, nil
}
