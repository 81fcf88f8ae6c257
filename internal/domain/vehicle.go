package domain

// VehicleType represents the category of a rental vehicle.
// The type decides which buffer rule and which availability granularity
// (day-level vs hour-level blocking) applies.
type VehicleType string

const (
	VehicleTypeCar       VehicleType = "CAR"
	VehicleTypeMotorbike VehicleType = "MOTORBIKE"
	VehicleTypeBicycle   VehicleType = "BICYCLE"
)

// IsValid reports whether t is a known vehicle type.
func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleTypeCar, VehicleTypeMotorbike, VehicleTypeBicycle:
		return true
	}
	return false
}

// BufferRuleKind distinguishes the two kinds of adjacency rules.
type BufferRuleKind string

const (
	// BufferFullDay: any calendar day overlapped by a booking is entirely
	// unavailable. Cars are booked for contiguous multi-day spans, where
	// partial-day availability is meaningless to the renter.
	BufferFullDay BufferRuleKind = "FULL_DAY"
	// BufferHours: two bookings must be separated by at least GapHours of
	// idle time on each side.
	BufferHours BufferRuleKind = "HOURS"
)

// BufferRule is the per-vehicle-type adjacency rule. Exactly one rule
// exists per type; the mapping is fixed, not user-configurable.
type BufferRule struct {
	Kind     BufferRuleKind
	GapHours int // only meaningful for BufferHours
}

// bufferRules is the compile-time rule table. The CAR entry deliberately
// carries no gap: full-day exclusivity subsumes the hour-gap test, and the
// tagged Kind keeps that asymmetry explicit instead of an always-false branch.
var bufferRules = map[VehicleType]BufferRule{
	VehicleTypeCar:       {Kind: BufferFullDay},
	VehicleTypeMotorbike: {Kind: BufferHours, GapHours: DefaultGapHours},
	VehicleTypeBicycle:   {Kind: BufferHours, GapHours: DefaultGapHours},
}

// BufferRuleFor returns the adjacency rule for the vehicle type. Unknown
// types fall back to the conservative full-day rule.
func BufferRuleFor(t VehicleType) BufferRule {
	if rule, ok := bufferRules[t]; ok {
		return rule
	}
	return BufferRule{Kind: BufferFullDay}
}

// Vehicle holds the vehicle data this service needs for availability and
// pricing. It is fetched from the main RFT backend, never stored here.
type Vehicle struct {
	ID          int64
	ProviderID  int64
	Name        string
	VehicleType VehicleType

	// Operating window, civil time strings "HH:mm[:ss]".
	// openTime == closeTime == "00:00" means 24/7 operation.
	OpenTime  string
	CloseTime string

	CostPerDay  float64
	CostPerHour float64

	Status string
}

// HourlyRate returns the vehicle's hourly rate, deriving it from the daily
// rate when the backend did not set one.
func (v *Vehicle) HourlyRate() float64 {
	if v.CostPerHour > 0 {
		return v.CostPerHour
	}
	return HourlyRateFromDaily(v.CostPerDay)
}
