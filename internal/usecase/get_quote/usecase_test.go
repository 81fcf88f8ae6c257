package get_quote

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

func TestExecute_HourlyQuote(t *testing.T) {
	// 600000/day, hourly rate derived as 600000/12 = 50000.
	vehicle := &domain.Vehicle{ID: 1, VehicleType: domain.VehicleTypeMotorbike, CostPerDay: 600000}
	uc := NewUseCase(&stubVehicleClient{vehicle: vehicle}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID: 1,
		Start:     vn(2024, time.June, 10, 8, 0),
		End:       vn(2024, time.June, 10, 14, 30),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PriceTypeHourly, resp.PriceType)
	assert.Equal(t, 6, resp.BillingHours)
	assert.Equal(t, 30, resp.BillingMinutes)
	assert.InDelta(t, 325000, resp.TotalCost, 0.01)
	assert.Equal(t, "6 giờ 30 phút", resp.DurationLabel)
}

func TestExecute_DailyQuote(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, VehicleType: domain.VehicleTypeCar, CostPerDay: 1200000}
	uc := NewUseCase(&stubVehicleClient{vehicle: vehicle}, nopLogger{})

	// 24h01m rounds up to 2 days.
	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID: 1,
		Start:     vn(2024, time.June, 10, 8, 0),
		End:       vn(2024, time.June, 11, 8, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PriceTypeDaily, resp.PriceType)
	assert.Equal(t, 2, resp.BillingDays)
	assert.InDelta(t, 2400000, resp.TotalCost, 0.01)
	assert.Equal(t, "2 ngày", resp.DurationLabel)
}

func TestExecute_ExplicitHourlyRateWins(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, VehicleType: domain.VehicleTypeMotorbike, CostPerDay: 600000, CostPerHour: 40000}
	uc := NewUseCase(&stubVehicleClient{vehicle: vehicle}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		VehicleID: 1,
		Start:     vn(2024, time.June, 10, 8, 0),
		End:       vn(2024, time.June, 10, 10, 0),
	})
	require.NoError(t, err)
	assert.InDelta(t, 80000, resp.TotalCost, 0.01)
}

func TestExecute_InvalidWindow(t *testing.T) {
	vehicle := &domain.Vehicle{ID: 1, VehicleType: domain.VehicleTypeCar, CostPerDay: 1200000}
	uc := NewUseCase(&stubVehicleClient{vehicle: vehicle}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		VehicleID: 1,
		Start:     vn(2024, time.June, 10, 8, 0),
		End:       vn(2024, time.June, 10, 8, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	uc := NewUseCase(&stubVehicleClient{err: vehicleClient.ErrVehicleNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		VehicleID: 99,
		Start:     vn(2024, time.June, 10, 8, 0),
		End:       vn(2024, time.June, 10, 10, 0),
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}
