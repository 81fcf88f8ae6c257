package availability

import (
	"fmt"
	"time"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
)

// User-facing conflict messages, surfaced verbatim by the frontend.
const (
	msgDirectOverlap  = "Xe đã được đặt trong khoảng thời gian này"
	msgBufferConflict = "Phải cách nhau ít nhất %d giờ giữa các chuyến thuê"
	msgDayUnavailable = "Xe không khả dụng trong ngày này"
)

// ConflictReport is the result of checking a candidate window against a
// vehicle's existing bookings.
type ConflictReport struct {
	HasConflict         bool
	ConflictingBookings []*domain.Booking
	Message             string
}

// CheckBufferConflict determines whether the candidate window
// [start, end) conflicts with any active existing booking under the
// vehicle type's adjacency rule.
//
// A direct interval overlap (strict inequalities, so back-to-back windows
// do not overlap) is a conflict for every vehicle type. For hour-buffered
// types, a booking that merely sits closer than the required gap on either
// side is also a conflict. Cars carry the full-day rule: day-level
// exclusivity is enforced by the Schedule predicates, so no gap test runs
// here.
func CheckBufferConflict(vehicleType domain.VehicleType, start, end time.Time, bookings []*domain.Booking) ConflictReport {
	rule := domain.BufferRuleFor(vehicleType)

	var conflicting []*domain.Booking
	anyOverlap := false
	anyBufferConflict := false

	for _, booking := range bookings {
		if !booking.IsActive() || !booking.HasValidWindow() {
			continue
		}

		if start.Before(booking.TimeBookingEnd) && end.After(booking.TimeBookingStart) {
			conflicting = append(conflicting, booking)
			anyOverlap = true
			continue
		}

		if rule.Kind != domain.BufferHours {
			continue
		}

		// Gap on the side where the candidate follows the booking, and on
		// the side where it precedes it. A negative gap means the other
		// ordering applies; overlap was already ruled out above.
		gapAfter := start.Sub(booking.TimeBookingEnd).Hours()
		gapBefore := booking.TimeBookingStart.Sub(end).Hours()

		if (gapAfter >= 0 && gapAfter < float64(rule.GapHours)) ||
			(gapBefore >= 0 && gapBefore < float64(rule.GapHours)) {
			conflicting = append(conflicting, booking)
			anyBufferConflict = true
		}
	}

	if len(conflicting) == 0 {
		return ConflictReport{}
	}

	var message string
	switch {
	case anyOverlap:
		message = msgDirectOverlap
	case anyBufferConflict:
		message = fmt.Sprintf(msgBufferConflict, rule.GapHours)
	default:
		message = msgDayUnavailable
	}

	return ConflictReport{
		HasConflict:         true,
		ConflictingBookings: conflicting,
		Message:             message,
	}
}
