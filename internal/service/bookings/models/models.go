package models

import (
	"errors"
	"time"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/vntime"
)

var (
	// ErrInvalidStatus is returned on an unknown status value
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// CancelBookingRequest asks to cancel a booking on behalf of a renter.
type CancelBookingRequest struct {
	RenterID           int64  `json:"renterId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetRenterBookingsRequest lists a renter's booking history.
type GetRenterBookingsRequest struct {
	RenterID         int64   `json:"renterId"`
	Status           *string `json:"status,omitempty"`
	IncludeCancelled bool    `json:"includeCancelled,omitempty"`
}

// ToDomainFilter converts the request into the repository filter.
func (r *GetRenterBookingsRequest) ToDomainFilter() (domain.RenterBookingsFilter, error) {
	filter := domain.RenterBookingsFilter{
		RenterID:         r.RenterID,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse is the booking DTO. The rental window is rendered in the
// civil Vietnam-time wire format.
type BookingResponse struct {
	ID               int64  `json:"id"`
	RenterID         int64  `json:"renterId"`
	VehicleID        int64  `json:"vehicleId"`
	TimeBookingStart string `json:"timeBookingStart"`
	TimeBookingEnd   string `json:"timeBookingEnd"`
	Status           string `json:"status"`

	// Denormalized data
	VehicleName *string `json:"vehicleName,omitempty"`
	TotalCost   float64 `json:"totalCost"`
	PriceType   string  `json:"priceType"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is a list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Conversion helpers

// FromDomainBooking converts the domain model into the DTO.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		RenterID:           b.RenterID,
		VehicleID:          b.VehicleID,
		TimeBookingStart:   vntime.Format(b.TimeBookingStart),
		TimeBookingEnd:     vntime.Format(b.TimeBookingEnd),
		Status:             string(b.Status),
		VehicleName:        b.VehicleName,
		TotalCost:          b.TotalCost,
		PriceType:          string(b.PriceType),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := vntime.Format(*b.CancelledAt)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList converts a list of domain models into the DTO.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus converts a string into a validated status.
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
