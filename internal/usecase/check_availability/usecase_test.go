package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/vntime"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (s *stubBookingRepo) GetByVehicle(_ context.Context, _ int64, _ bool) ([]*domain.Booking, error) {
	return s.bookings, s.err
}

type stubVehicleClient struct {
	vehicle *domain.Vehicle
	err     error
}

func (s *stubVehicleClient) GetVehicle(_ context.Context, _ int64) (*domain.Vehicle, error) {
	return s.vehicle, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func vn(y int, mo time.Month, d, h, mi int) time.Time {
	return time.Date(y, mo, d, h, mi, 0, 0, vntime.Location())
}

func TestExecute_BufferConflict(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, VehicleType: domain.VehicleTypeMotorbike}
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{
			ID:               10,
			VehicleID:        1,
			TimeBookingStart: vn(2024, time.June, 10, 8, 0),
			TimeBookingEnd:   vn(2024, time.June, 10, 10, 0),
			Status:           domain.StatusConfirmed,
		},
	}}

	uc := NewUseCase(repo, &stubVehicleClient{vehicle: vehicle}, nopLogger{})

	// 3 hours after the existing booking ends: inside the 5h gap.
	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID: 1,
		Start:     vn(2024, time.June, 10, 13, 0),
		End:       vn(2024, time.June, 10, 15, 0),
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, "Phải cách nhau ít nhất 5 giờ giữa các chuyến thuê", resp.Message)
	assert.Equal(t, []int64{10}, resp.ConflictingBookingIDs)

	// Exactly 5 hours after: allowed.
	resp, err = uc.Execute(context.Background(), &Request{
		VehicleID: 1,
		Start:     vn(2024, time.June, 10, 15, 0),
		End:       vn(2024, time.June, 10, 17, 0),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Message)
	assert.Empty(t, resp.ConflictingBookingIDs)
}

func TestExecute_DirectOverlap(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, VehicleType: domain.VehicleTypeCar}
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{
			ID:               11,
			VehicleID:        1,
			TimeBookingStart: vn(2024, time.June, 10, 8, 0),
			TimeBookingEnd:   vn(2024, time.June, 12, 8, 0),
			Status:           domain.StatusPending,
		},
	}}

	uc := NewUseCase(repo, &stubVehicleClient{vehicle: vehicle}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID: 1,
		Start:     vn(2024, time.June, 11, 8, 0),
		End:       vn(2024, time.June, 13, 8, 0),
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, "Xe đã được đặt trong khoảng thời gian này", resp.Message)
}

func TestExecute_InvalidWindow(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubVehicleClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		VehicleID: 1,
		Start:     vn(2024, time.June, 10, 10, 0),
		End:       vn(2024, time.June, 10, 10, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
