package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// PriceType is the billing regime of a rental.
type PriceType string

const (
	PriceTypeHourly PriceType = "hourly"
	PriceTypeDaily  PriceType = "daily"
)

// ErrInvalidWindow is returned when a rental window has end <= start.
// A zero or negative duration is never billable.
var ErrInvalidWindow = errors.New("rental window end must be after start")

// RentalCalculation is the derived duration/billing breakdown of a rental
// window. It is computed fresh from a (start, end) pair every time and
// never persisted.
type RentalCalculation struct {
	TotalHours     float64
	TotalMinutes   int64
	IsHourlyRate   bool
	BillingDays    int
	BillingHours   int
	BillingMinutes int
	PriceType      PriceType
}

// CalculateRentalDuration classifies a rental window into its billing
// regime and computes the billable quantity.
//
// Up to and including 8 hours the rental is billed by elapsed time, exact
// to the minute. Anything longer is billed by day: between 8 and 24 hours
// counts as exactly one day, beyond that days round up.
func CalculateRentalDuration(start, end time.Time) (RentalCalculation, error) {
	if !end.After(start) {
		return RentalCalculation{}, fmt.Errorf("%w: start=%s end=%s", ErrInvalidWindow, start, end)
	}

	totalMinutes := int64(end.Sub(start) / time.Minute)
	totalHours := float64(totalMinutes) / 60

	if totalHours <= HourlyThresholdHours {
		return RentalCalculation{
			TotalHours:     totalHours,
			TotalMinutes:   totalMinutes,
			IsHourlyRate:   true,
			BillingDays:    0,
			BillingHours:   int(totalMinutes / 60),
			BillingMinutes: int(totalMinutes % 60),
			PriceType:      PriceTypeHourly,
		}, nil
	}

	billingDays := 1
	if totalHours > DailyThresholdHours {
		billingDays = int(math.Ceil(totalHours / 24))
	}

	return RentalCalculation{
		TotalHours:   totalHours,
		TotalMinutes: totalMinutes,
		IsHourlyRate: false,
		BillingDays:  billingDays,
		PriceType:    PriceTypeDaily,
	}, nil
}

// CalculateRentalPrice prices a classified rental. No currency rounding is
// applied here; that is a display and backend concern.
func CalculateRentalPrice(calc RentalCalculation, hourlyRate, dailyRate float64) float64 {
	if calc.IsHourlyRate {
		hourPrice := float64(calc.BillingHours) * hourlyRate
		minutePrice := float64(calc.BillingMinutes) / 60 * hourlyRate
		return hourPrice + minutePrice
	}
	return float64(calc.BillingDays) * dailyRate
}

// HourlyRateFromDaily derives an hourly rate from a daily rate.
func HourlyRateFromDaily(dailyRate float64) float64 {
	return dailyRate / HoursPerDayForRate
}

// FormatRentalDuration renders the billed duration for display, in the
// product's operating language.
func FormatRentalDuration(calc RentalCalculation) string {
	if calc.IsHourlyRate {
		if calc.BillingMinutes > 0 {
			return fmt.Sprintf("%d giờ %d phút", calc.BillingHours, calc.BillingMinutes)
		}
		return fmt.Sprintf("%d giờ", calc.BillingHours)
	}
	return fmt.Sprintf("%d ngày", calc.BillingDays)
}
