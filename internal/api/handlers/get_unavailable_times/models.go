package get_unavailable_times

import (
	"time"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
	getUnavailableTimes "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/usecase/get_unavailable_times"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/vntime"
)

// UnavailableTimesResponse is the HTTP response model the range picker
// consumes.
type UnavailableTimesResponse struct {
	VehicleID       int64         `json:"vehicleId"`
	Date            string        `json:"date"`
	DayDisabled     bool          `json:"dayDisabled"`
	DisabledHours   []int         `json:"disabledHours"`
	DisabledMinutes map[int][]int `json:"disabledMinutes"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getUnavailableTimes.Response) *UnavailableTimesResponse {
	return &UnavailableTimesResponse{
		VehicleID:       resp.VehicleID,
		Date:            resp.Date.Format(domain.DateFormat),
		DayDisabled:     resp.DayDisabled,
		DisabledHours:   resp.DisabledHours,
		DisabledMinutes: resp.DisabledMinutes,
	}
}

// ToUseCaseRequest builds the use case request from the parsed URL parts.
// The date is a civil Vietnam-time day.
func ToUseCaseRequest(vehicleID int64, dateStr string) (*getUnavailableTimes.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, vntime.Location())
	if err != nil {
		return nil, err
	}

	return &getUnavailableTimes.Request{
		VehicleID: vehicleID,
		Date:      date,
	}, nil
}
