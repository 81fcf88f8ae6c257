package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestCalculateRentalDuration_ThresholdBoundaries(t *testing.T) {
	start := datetime(2024, 3, 1, 9, 0)

	tests := []struct {
		name        string
		end         time.Time
		wantHourly  bool
		wantDays    int
		wantHours   int
		wantMinutes int
	}{
		{"exactly 8h is hourly", start.Add(8 * time.Hour), true, 0, 8, 0},
		{"8h01m is one day", start.Add(8*time.Hour + time.Minute), false, 1, 0, 0},
		{"exactly 24h is one day", start.Add(24 * time.Hour), false, 1, 0, 0},
		{"24h01m rounds up to two days", start.Add(24*time.Hour + time.Minute), false, 2, 0, 0},
		{"30 minutes is hourly", start.Add(30 * time.Minute), true, 0, 0, 30},
		{"3 days exact", start.Add(72 * time.Hour), false, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := CalculateRentalDuration(start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHourly, calc.IsHourlyRate)
			assert.Equal(t, tt.wantDays, calc.BillingDays)
			assert.Equal(t, tt.wantHours, calc.BillingHours)
			assert.Equal(t, tt.wantMinutes, calc.BillingMinutes)
		})
	}
}

func TestCalculateRentalDuration_InvalidWindow(t *testing.T) {
	start := datetime(2024, 3, 1, 9, 0)

	_, err := CalculateRentalDuration(start, start)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = CalculateRentalDuration(start, start.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestCalculateRentalDuration_Monotonic(t *testing.T) {
	// Extending the end of a window must never decrease the billed amount.
	start := datetime(2024, 3, 1, 9, 0)

	prevDays := 0
	prevMinutes := int64(0)
	for add := time.Hour; add <= 96*time.Hour; add += 37 * time.Minute {
		calc, err := CalculateRentalDuration(start, start.Add(add))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, calc.TotalMinutes, prevMinutes)
		if !calc.IsHourlyRate {
			assert.GreaterOrEqual(t, calc.BillingDays, prevDays)
			prevDays = calc.BillingDays
		}
		prevMinutes = calc.TotalMinutes
	}
}

func TestCalculateRentalPrice_HourlyWithMinutes(t *testing.T) {
	// 6.5 hours at 50 000/h = 6*50000 + 0.5*50000 = 325 000.
	start := datetime(2024, 3, 1, 9, 0)
	end := datetime(2024, 3, 1, 15, 30)

	calc, err := CalculateRentalDuration(start, end)
	require.NoError(t, err)
	assert.True(t, calc.IsHourlyRate)
	assert.Equal(t, 6, calc.BillingHours)
	assert.Equal(t, 30, calc.BillingMinutes)

	price := CalculateRentalPrice(calc, 50000, 400000)
	assert.InDelta(t, 325000, price, 0.001)
}

func TestCalculateRentalPrice_Daily(t *testing.T) {
	start := datetime(2024, 3, 1, 9, 0)
	end := datetime(2024, 3, 3, 10, 0) // 49h -> 3 days

	calc, err := CalculateRentalDuration(start, end)
	require.NoError(t, err)
	assert.Equal(t, 3, calc.BillingDays)
	assert.InDelta(t, 1200000, CalculateRentalPrice(calc, 50000, 400000), 0.001)
}

func TestHourlyRateFromDaily(t *testing.T) {
	assert.InDelta(t, 50000, HourlyRateFromDaily(600000), 0.001)
}

func TestFormatRentalDuration(t *testing.T) {
	hourly := RentalCalculation{IsHourlyRate: true, BillingHours: 6, BillingMinutes: 30}
	assert.Equal(t, "6 giờ 30 phút", FormatRentalDuration(hourly))

	wholeHours := RentalCalculation{IsHourlyRate: true, BillingHours: 8}
	assert.Equal(t, "8 giờ", FormatRentalDuration(wholeHours))

	daily := RentalCalculation{IsHourlyRate: false, BillingDays: 2}
	assert.Equal(t, "2 ngày", FormatRentalDuration(daily))
}

func TestBufferRuleFor(t *testing.T) {
	assert.Equal(t, BufferFullDay, BufferRuleFor(VehicleTypeCar).Kind)

	motorbike := BufferRuleFor(VehicleTypeMotorbike)
	assert.Equal(t, BufferHours, motorbike.Kind)
	assert.Equal(t, 5, motorbike.GapHours)

	bicycle := BufferRuleFor(VehicleTypeBicycle)
	assert.Equal(t, BufferHours, bicycle.Kind)
	assert.Equal(t, 5, bicycle.GapHours)

	// Unknown types get the conservative full-day rule.
	assert.Equal(t, BufferFullDay, BufferRuleFor(VehicleType("TRUCK")).Kind)
}
