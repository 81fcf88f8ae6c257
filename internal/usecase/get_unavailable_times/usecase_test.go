package get_unavailable_times

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
	vehicleClient "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/integrations/vehicleservice"
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

type stubTimeProvider struct {
	now time.Time
}

func (s *stubTimeProvider) Now() time.Time {
	return s.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func vn(y int, mo time.Month, d, h, mi int) time.Time {
	return time.Date(y, mo, d, h, mi, 0, 0, vntime.Location())
}

func newTestUseCase(repo *stubBookingRepo, client *stubVehicleClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, client, nopLogger{})
	uc.timeProvider = &stubTimeProvider{now: now}
	return uc
}

func TestExecute_MotorbikeBufferedHours(t *testing.T) {
	now := vn(2024, time.June, 1, 12, 0)
	vehicle := &domain.Vehicle{
		ID:          42,
		VehicleType: domain.VehicleTypeMotorbike,
		OpenTime:    "00:00",
		CloseTime:   "00:00",
		CostPerDay:  600000,
	}
	bookings := []*domain.Booking{
		{
			ID:               1,
			VehicleID:        42,
			TimeBookingStart: vn(2024, time.June, 10, 8, 0),
			TimeBookingEnd:   vn(2024, time.June, 10, 10, 0),
			Status:           domain.StatusConfirmed,
		},
	}

	uc := newTestUseCase(&stubBookingRepo{bookings: bookings}, &stubVehicleClient{vehicle: vehicle}, now)

	resp, err := uc.Execute(context.Background(), &Request{VehicleID: 42, Date: vn(2024, time.June, 10, 0, 0)})
	require.NoError(t, err)

	assert.False(t, resp.DayDisabled)
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, resp.DisabledHours)

	// Open hours still restrict off-grid minutes.
	_, listed := resp.DisabledMinutes[8]
	assert.False(t, listed)
	assert.NotContains(t, resp.DisabledMinutes[15], 0)
	assert.NotContains(t, resp.DisabledMinutes[15], 30)
	assert.Contains(t, resp.DisabledMinutes[15], 15)
}

func TestExecute_CarBookingDisablesDay(t *testing.T) {
	now := vn(2024, time.June, 1, 12, 0)
	vehicle := &domain.Vehicle{
		ID:          7,
		VehicleType: domain.VehicleTypeCar,
		OpenTime:    "00:00",
		CloseTime:   "00:00",
	}
	bookings := []*domain.Booking{
		{
			ID:               1,
			VehicleID:        7,
			TimeBookingStart: vn(2024, time.June, 10, 9, 0),
			TimeBookingEnd:   vn(2024, time.June, 12, 9, 0),
			Status:           domain.StatusPending,
		},
	}

	uc := newTestUseCase(&stubBookingRepo{bookings: bookings}, &stubVehicleClient{vehicle: vehicle}, now)

	resp, err := uc.Execute(context.Background(), &Request{VehicleID: 7, Date: vn(2024, time.June, 11, 0, 0)})
	require.NoError(t, err)
	assert.True(t, resp.DayDisabled)

	resp, err = uc.Execute(context.Background(), &Request{VehicleID: 7, Date: vn(2024, time.June, 13, 0, 0)})
	require.NoError(t, err)
	assert.False(t, resp.DayDisabled)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	uc := newTestUseCase(
		&stubBookingRepo{},
		&stubVehicleClient{err: vehicleClient.ErrVehicleNotFound},
		vn(2024, time.June, 1, 12, 0),
	)

	_, err := uc.Execute(context.Background(), &Request{VehicleID: 99, Date: vn(2024, time.June, 10, 0, 0)})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubVehicleClient{}, vn(2024, time.June, 1, 12, 0))

	_, err := uc.Execute(context.Background(), &Request{VehicleID: 0, Date: vn(2024, time.June, 10, 0, 0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{VehicleID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
