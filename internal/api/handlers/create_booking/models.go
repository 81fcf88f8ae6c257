package create_booking

import (
	"time"

	createBooking "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/usecase/create_booking"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/vntime"
)

// CreateBookingRequest is the HTTP request model. The window fields accept
// both backend timestamp encodings: the civil string
// "yyyy-MM-ddTHH:mm:ss" and the array form [year,month,day,hour,minute].
type CreateBookingRequest struct {
	VehicleID        int64           `json:"vehicleId"`
	TimeBookingStart vntime.WireTime `json:"timeBookingStart"`
	TimeBookingEnd   vntime.WireTime `json:"timeBookingEnd"`
}

// BookingResponse is the HTTP response model.
type BookingResponse struct {
	ID               int64   `json:"id"`
	RenterID         int64   `json:"renterId"`
	VehicleID        int64   `json:"vehicleId"`
	TimeBookingStart string  `json:"timeBookingStart"`
	TimeBookingEnd   string  `json:"timeBookingEnd"`
	Status           string  `json:"status"`
	VehicleName      *string `json:"vehicleName,omitempty"`
	TotalCost        float64 `json:"totalCost"`
	PriceType        string  `json:"priceType"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
// renterID comes from the auth middleware, never from the body.
func (r *CreateBookingRequest) ToUseCaseRequest(renterID int64) *createBooking.Request {
	return &createBooking.Request{
		RenterID:  renterID,
		VehicleID: r.VehicleID,
		Start:     r.TimeBookingStart.Time,
		End:       r.TimeBookingEnd.Time,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		RenterID:         resp.RenterID,
		VehicleID:        resp.VehicleID,
		TimeBookingStart: vntime.Format(resp.Start),
		TimeBookingEnd:   vntime.Format(resp.End),
		Status:           resp.Status,
		VehicleName:      resp.VehicleName,
		TotalCost:        resp.TotalCost,
		PriceType:        string(resp.PriceType),
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
