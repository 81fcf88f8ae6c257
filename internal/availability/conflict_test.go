package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/vntime"
)

func vn(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, vntime.Location())
}

func booking(id int64, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:               id,
		TimeBookingStart: start,
		TimeBookingEnd:   end,
		Status:           status,
	}
}

func TestCheckBufferConflict_DirectOverlap(t *testing.T) {
	existing := []*domain.Booking{
		booking(1, vn(2024, 6, 10, 10, 0), vn(2024, 6, 12, 14, 0), domain.StatusConfirmed),
	}

	report := CheckBufferConflict(domain.VehicleTypeCar,
		vn(2024, 6, 11, 8, 0), vn(2024, 6, 11, 18, 0), existing)

	assert.True(t, report.HasConflict)
	assert.Len(t, report.ConflictingBookings, 1)
	assert.Equal(t, msgDirectOverlap, report.Message)
}

func TestCheckBufferConflict_BackToBackIsNotOverlapButTripsBuffer(t *testing.T) {
	// Candidate starts exactly when the existing booking ends: no direct
	// overlap under strict inequalities, but a zero gap violates the
	// 5-hour buffer for motorbikes.
	existing := []*domain.Booking{
		booking(1, vn(2024, 6, 10, 8, 0), vn(2024, 6, 10, 10, 0), domain.StatusConfirmed),
	}

	report := CheckBufferConflict(domain.VehicleTypeMotorbike,
		vn(2024, 6, 10, 10, 0), vn(2024, 6, 10, 12, 0), existing)

	assert.True(t, report.HasConflict)
	assert.Equal(t, "Phải cách nhau ít nhất 5 giờ giữa các chuyến thuê", report.Message)

	// For a car the same back-to-back candidate has no conflict at all.
	carReport := CheckBufferConflict(domain.VehicleTypeCar,
		vn(2024, 6, 10, 10, 0), vn(2024, 6, 10, 12, 0), existing)
	assert.False(t, carReport.HasConflict)
	assert.Empty(t, carReport.ConflictingBookings)
	assert.Empty(t, carReport.Message)
}

func TestCheckBufferConflict_GapBoundaries(t *testing.T) {
	existing := []*domain.Booking{
		booking(1, vn(2024, 6, 10, 8, 0), vn(2024, 6, 10, 10, 0), domain.StatusConfirmed),
	}

	// 4h59m after the existing end: still conflicting.
	tooClose := CheckBufferConflict(domain.VehicleTypeBicycle,
		vn(2024, 6, 10, 14, 59), vn(2024, 6, 10, 16, 0), existing)
	assert.True(t, tooClose.HasConflict)

	// Exactly 5h after the existing end: allowed.
	exactGap := CheckBufferConflict(domain.VehicleTypeBicycle,
		vn(2024, 6, 10, 15, 0), vn(2024, 6, 10, 16, 0), existing)
	assert.False(t, exactGap.HasConflict)

	// Candidate ending 4h before the existing start: conflicting on the
	// other side.
	before := CheckBufferConflict(domain.VehicleTypeBicycle,
		vn(2024, 6, 10, 2, 0), vn(2024, 6, 10, 4, 0), existing)
	assert.True(t, before.HasConflict)

	// Candidate ending 5h before the existing start: allowed.
	beforeOK := CheckBufferConflict(domain.VehicleTypeBicycle,
		vn(2024, 6, 10, 1, 0), vn(2024, 6, 10, 3, 0), existing)
	assert.False(t, beforeOK.HasConflict)
}

func TestCheckBufferConflict_OverlapMessageWins(t *testing.T) {
	existing := []*domain.Booking{
		booking(1, vn(2024, 6, 10, 8, 0), vn(2024, 6, 10, 10, 0), domain.StatusConfirmed),
		booking(2, vn(2024, 6, 10, 18, 0), vn(2024, 6, 10, 20, 0), domain.StatusConfirmed),
	}

	// Candidate overlaps booking 2 and sits inside booking 1's buffer.
	report := CheckBufferConflict(domain.VehicleTypeMotorbike,
		vn(2024, 6, 10, 12, 0), vn(2024, 6, 10, 19, 0), existing)

	assert.True(t, report.HasConflict)
	assert.Len(t, report.ConflictingBookings, 2)
	assert.Equal(t, msgDirectOverlap, report.Message)
}

func TestCheckBufferConflict_CancelledExcluded(t *testing.T) {
	existing := []*domain.Booking{
		booking(1, vn(2024, 6, 10, 8, 0), vn(2024, 6, 10, 10, 0), domain.StatusCancelled),
	}

	report := CheckBufferConflict(domain.VehicleTypeMotorbike,
		vn(2024, 6, 10, 9, 0), vn(2024, 6, 10, 11, 0), existing)

	assert.False(t, report.HasConflict)
}

func TestCheckBufferConflict_InvalidExistingWindowDropped(t *testing.T) {
	existing := []*domain.Booking{
		booking(1, vn(2024, 6, 10, 10, 0), vn(2024, 6, 10, 8, 0), domain.StatusConfirmed),
	}

	report := CheckBufferConflict(domain.VehicleTypeMotorbike,
		vn(2024, 6, 10, 9, 0), vn(2024, 6, 10, 11, 0), existing)

	assert.False(t, report.HasConflict)
}
