package domain

import "time"

// BookingStatus represents the status of a rental booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "PENDING"
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// ValidStatuses lists every status the backend may send.
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// Booking represents a vehicle rental booking in the system.
// TimeBookingStart and TimeBookingEnd are absolute instants; the civil
// Vietnam-time wire encoding only exists at the API and storage boundaries.
type Booking struct {
	ID               int64
	VehicleID        int64
	RenterID         int64
	TimeBookingStart time.Time
	TimeBookingEnd   time.Time
	Status           BookingStatus

	// Denormalized data for history
	VehicleName *string
	TotalCost   float64
	PriceType   PriceType

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies the vehicle.
// Cancelled bookings never take part in availability computation.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// HasValidWindow returns true when the booking's interval is well-formed.
// Upstream data is not under this service's control, so bookings that
// violate start < end are dropped from availability with a warning rather
// than crashing the calculation.
func (b *Booking) HasValidWindow() bool {
	return b.TimeBookingEnd.After(b.TimeBookingStart)
}

// RenterBookingsFilter filters a renter's booking history.
type RenterBookingsFilter struct {
	RenterID         int64
	Status           *BookingStatus
	IncludeCancelled bool
}
