package domain

// Pricing rules
const (
	// HourlyThresholdHours: rentals up to this many hours are billed by the hour.
	HourlyThresholdHours = 8
	// DailyThresholdHours: rentals above the hourly threshold but within this
	// bound count as exactly one billing day.
	DailyThresholdHours = 24
	// HoursPerDayForRate: the hourly rate is derived from the daily rate by
	// dividing by this constant.
	HoursPerDayForRate = 12
)

// Buffer rules
const (
	// DefaultGapHours is the idle time required between two bookings of an
	// hour-buffered vehicle (motorbike, bicycle).
	DefaultGapHours = 5
)

// Business validation constants
const (
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllowedBookingMinutes lists the only minute values the range picker may
// select within an hour.
var AllowedBookingMinutes = []int{0, 30}

// IsAllowedBookingMinute reports whether a booking may start or end at the
// given minute of an hour.
func IsAllowedBookingMinute(minute int) bool {
	for _, m := range AllowedBookingMinutes {
		if m == minute {
			return true
		}
	}
	return false
}
