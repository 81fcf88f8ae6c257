package create_booking

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
	created  *domain.Booking
}

func (s *stubBookingRepo) GetByVehicle(_ context.Context, _ int64, _ bool) ([]*domain.Booking, error) {
	return s.bookings, nil
}

func (s *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	created.ID = 100
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
}

type stubVehicleClient struct {
	vehicle *domain.Vehicle
	err     error
}

func (s *stubVehicleClient) GetVehicle(_ context.Context, _ int64) (*domain.Vehicle, error) {
	return s.vehicle, s.err
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
	uc := NewUseCase(repo, client, stubTxManager{}, nopLogger{})
	uc.timeProvider = &stubTimeProvider{now: now}
	return uc
}

func motorbike() *domain.Vehicle {
	return &domain.Vehicle{
		ID:          1,
		Name:        "Honda Wave Alpha",
		VehicleType: domain.VehicleTypeMotorbike,
		CostPerDay:  600000,
		Status:      "AVAILABLE",
	}
}

func TestExecute_CreatesPendingBookingWithQuote(t *testing.T) {
	now := vn(2024, time.June, 1, 12, 0)
	repo := &stubBookingRepo{}
	uc := newTestUseCase(repo, &stubVehicleClient{vehicle: motorbike()}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		RenterID:  7,
		VehicleID: 1,
		Start:     vn(2024, time.June, 10, 8, 0),
		End:       vn(2024, time.June, 10, 14, 30),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.PriceTypeHourly, resp.PriceType)
	assert.InDelta(t, 325000, resp.TotalCost, 0.01)
	require.NotNil(t, resp.VehicleName)
	assert.Equal(t, "Honda Wave Alpha", *resp.VehicleName)

	require.NotNil(t, repo.created)
	assert.Equal(t, int64(7), repo.created.RenterID)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestExecute_RejectsConflictingWindow(t *testing.T) {
	now := vn(2024, time.June, 1, 12, 0)
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{
			ID:               50,
			VehicleID:        1,
			TimeBookingStart: vn(2024, time.June, 10, 8, 0),
			TimeBookingEnd:   vn(2024, time.June, 10, 10, 0),
			Status:           domain.StatusConfirmed,
		},
	}}
	uc := newTestUseCase(repo, &stubVehicleClient{vehicle: motorbike()}, now)

	// Inside the 5h gap after the existing booking.
	_, err := uc.Execute(context.Background(), &Request{
		RenterID:  7,
		VehicleID: 1,
		Start:     vn(2024, time.June, 10, 12, 0),
		End:       vn(2024, time.June, 10, 14, 0),
	})
	assert.ErrorIs(t, err, ErrWindowConflict)
	assert.Nil(t, repo.created)
}

func TestExecute_RejectsPastStart(t *testing.T) {
	now := vn(2024, time.June, 10, 12, 0)
	uc := newTestUseCase(&stubBookingRepo{}, &stubVehicleClient{vehicle: motorbike()}, now)

	_, err := uc.Execute(context.Background(), &Request{
		RenterID:  7,
		VehicleID: 1,
		Start:     vn(2024, time.June, 10, 8, 0),
		End:       vn(2024, time.June, 10, 14, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RejectsOffGridMinutes(t *testing.T) {
	now := vn(2024, time.June, 1, 12, 0)
	uc := newTestUseCase(&stubBookingRepo{}, &stubVehicleClient{vehicle: motorbike()}, now)

	_, err := uc.Execute(context.Background(), &Request{
		RenterID:  7,
		VehicleID: 1,
		Start:     vn(2024, time.June, 10, 8, 15),
		End:       vn(2024, time.June, 10, 14, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RejectsUnavailableVehicle(t *testing.T) {
	now := vn(2024, time.June, 1, 12, 0)
	vehicle := motorbike()
	vehicle.Status = "SUSPENDED"
	uc := newTestUseCase(&stubBookingRepo{}, &stubVehicleClient{vehicle: vehicle}, now)

	_, err := uc.Execute(context.Background(), &Request{
		RenterID:  7,
		VehicleID: 1,
		Start:     vn(2024, time.June, 10, 8, 0),
		End:       vn(2024, time.June, 10, 14, 0),
	})
	assert.ErrorIs(t, err, ErrVehicleNotAvailable)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	now := vn(2024, time.June, 1, 12, 0)
	uc := newTestUseCase(&stubBookingRepo{}, &stubVehicleClient{err: vehicleClient.ErrVehicleNotFound}, now)

	_, err := uc.Execute(context.Background(), &Request{
		RenterID:  7,
		VehicleID: 99,
		Start:     vn(2024, time.June, 10, 8, 0),
		End:       vn(2024, time.June, 10, 14, 0),
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}
