package availability

import (
	"sort"
	"time"

	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/domain"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/vntime"
)

// Logger is the subset of the service logger the schedule builder needs.
type Logger interface {
	Warn(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

// Schedule bundles the three availability predicates the range picker
// consumes. It closes over an immutable snapshot of the vehicle's bookings
// and an explicit reference time; when a fresh snapshot is fetched the
// caller builds a new Schedule instead of mutating this one.
type Schedule struct {
	vehicleType domain.VehicleType
	rule        domain.BufferRule
	window      OperatingWindow
	bookings    []*domain.Booking
	now         time.Time
}

// NewSchedule builds the predicate set for one vehicle.
//
// Existing bookings with end <= start are dropped with a warning: the
// snapshot comes from the backend and a malformed row must not crash the
// calendar. Cancelled bookings are dropped silently - they do not occupy
// the vehicle. The reference time now is threaded explicitly so tests pin
// it instead of reading the wall clock.
func NewSchedule(vehicleType domain.VehicleType, bookings []*domain.Booking, window OperatingWindow, now time.Time, log Logger) *Schedule {
	if log == nil {
		log = nopLogger{}
	}

	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if !b.HasValidWindow() {
			log.Warn("availability: dropping booking id=%d with invalid window start=%s end=%s",
				b.ID, vntime.Format(b.TimeBookingStart), vntime.Format(b.TimeBookingEnd))
			continue
		}
		active = append(active, b)
	}

	return &Schedule{
		vehicleType: vehicleType,
		rule:        domain.BufferRuleFor(vehicleType),
		window:      window,
		bookings:    active,
		now:         now,
	}
}

// IsDayDisabled reports whether the whole civil day of date is
// unselectable.
//
// Past days are always disabled. For cars a day is disabled as soon as any
// booking covers part of it. For hour-buffered vehicles a day is disabled
// only when every one of its 24 hours is blocked - a partially blocked day
// must stay selectable so the renter can pick a free hour.
func (s *Schedule) IsDayDisabled(date time.Time) bool {
	dayStart := startOfCivilDay(date)
	if dayStart.Before(startOfCivilDay(s.now)) {
		return true
	}

	if s.rule.Kind == domain.BufferFullDay {
		dayEnd := dayStart.Add(24 * time.Hour)
		for _, b := range s.bookings {
			if b.TimeBookingStart.Before(dayEnd) && b.TimeBookingEnd.After(dayStart) {
				return true
			}
		}
		return false
	}

	blocked := s.disabledHourSet(date)
	return len(blocked) == 24
}

// DisabledHours returns the sorted blocked hours (0..23) of the given
// civil day.
func (s *Schedule) DisabledHours(date time.Time) []int {
	blocked := s.disabledHourSet(date)

	hours := make([]int, 0, len(blocked))
	for h := range blocked {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

func (s *Schedule) disabledHourSet(date time.Time) map[int]bool {
	blocked := make(map[int]bool)

	dayStart := startOfCivilDay(date)

	// Past hours of the current day. Future days carry no such exclusion.
	if dayStart.Equal(startOfCivilDay(s.now)) {
		currentHour := s.now.In(vntime.Location()).Hour()
		for h := 0; h <= currentHour && h < 24; h++ {
			blocked[h] = true
		}
	}

	for h := 0; h < 24; h++ {
		if s.window.BlocksHour(h) {
			blocked[h] = true
		}
	}

	// Cars never reach per-hour booking logic: day-level exclusivity via
	// IsDayDisabled already governs them.
	if s.rule.Kind != domain.BufferHours {
		return blocked
	}

	gap := time.Duration(s.rule.GapHours) * time.Hour
	for _, b := range s.bookings {
		blockStart := b.TimeBookingStart.Add(-gap)
		blockEnd := b.TimeBookingEnd.Add(gap)

		// An hour is blocked when its [h:00, h+1:00) window intersects the
		// buffered span. The comparison is strict on both ends so the hour
		// right at blockEnd stays selectable. Bookings of neighbouring days
		// whose buffer spills into this day are covered by the same test.
		for h := 0; h < 24; h++ {
			if blocked[h] {
				continue
			}
			hourStart := dayStart.Add(time.Duration(h) * time.Hour)
			hourEnd := hourStart.Add(time.Hour)
			if hourStart.Before(blockEnd) && hourEnd.After(blockStart) {
				blocked[h] = true
			}
		}
	}

	return blocked
}

// DisabledMinutes returns the sorted blocked minutes (0..59) for picking a
// time within the given hour of the given civil day.
//
// The picker only ever offers minutes 0 and 30. Outside the 24/7 sentinel,
// the opening hour additionally hides minutes before the opening minute
// and the closing hour hides minutes from the closing minute on.
func (s *Schedule) DisabledMinutes(date time.Time, hour int) []int {
	_ = date // minute restrictions do not depend on the day

	blocked := make(map[int]bool)
	for m := 0; m < 60; m++ {
		if !domain.IsAllowedBookingMinute(m) {
			blocked[m] = true
		}
	}

	if !s.window.IsAlwaysOpen() {
		if hour == s.window.Open.Hour && s.window.Open.Minute > 0 {
			for m := 0; m < s.window.Open.Minute; m++ {
				blocked[m] = true
			}
		}
		if hour == s.window.Close.Hour {
			for m := s.window.Close.Minute; m < 60; m++ {
				blocked[m] = true
			}
		}
	}

	minutes := make([]int, 0, len(blocked))
	for m := range blocked {
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)
	return minutes
}

func startOfCivilDay(t time.Time) time.Time {
	local := t.In(vntime.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, vntime.Location())
}
