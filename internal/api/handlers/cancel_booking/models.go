package cancel_booking

import (
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/service/bookings/models"
)

// CancelBookingRequest is the HTTP request model.
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model.
// renterID comes from the auth middleware, never from the body.
func (r *CancelBookingRequest) ToServiceRequest(renterID int64) *models.CancelBookingRequest {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &models.CancelBookingRequest{
		RenterID:           renterID,
		CancellationReason: reason,
	}
}
