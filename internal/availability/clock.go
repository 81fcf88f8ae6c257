// Package availability implements the client-advisory availability
// calculator for rental vehicles: buffer-conflict detection between a
// candidate window and existing bookings, and the day/hour/minute
// predicates consumed by the frontend range picker.
//
// Everything here is a pure mapping from an immutable booking snapshot,
// the vehicle's operating window and an explicit reference time to
// booleans and sets. The backend stays the authority on availability and
// price; these results are for UX only.
package availability

import (
	"strconv"
	"strings"
)

// ClockTime is a time of day within the operating schedule.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses an operating-hours string of form "H", "H:m" or
// "H:m:s" into a ClockTime, clamping hour to [0,23] and minute to [0,59].
// Missing or unparseable components default to 0, mirroring how the
// backend treats absent operating hours as "00:00".
func ParseClock(s string) ClockTime {
	parts := strings.Split(s, ":")

	hour := clamp(atoiOrZero(parts[0]), 0, 23)
	minute := 0
	if len(parts) > 1 {
		minute = clamp(atoiOrZero(parts[1]), 0, 59)
	}

	return ClockTime{Hour: hour, Minute: minute}
}

// IsMidnight reports whether the clock time is exactly 00:00.
func (c ClockTime) IsMidnight() bool {
	return c.Hour == 0 && c.Minute == 0
}

// OperatingWindow is the daily open/close schedule of a vehicle.
type OperatingWindow struct {
	Open  ClockTime
	Close ClockTime
}

// NewOperatingWindow parses the vehicle's openTime/closeTime strings.
func NewOperatingWindow(openTime, closeTime string) OperatingWindow {
	if openTime == "" {
		openTime = "00:00"
	}
	if closeTime == "" {
		closeTime = "00:00"
	}
	return OperatingWindow{Open: ParseClock(openTime), Close: ParseClock(closeTime)}
}

// IsAlwaysOpen reports the 24/7 sentinel: open == close == 00:00 means no
// hour restriction at all, not a zero-length window.
func (w OperatingWindow) IsAlwaysOpen() bool {
	return w.Open.IsMidnight() && w.Close.IsMidnight()
}

// Wraps reports whether the window crosses midnight (e.g. 22:00-06:00).
func (w OperatingWindow) Wraps() bool {
	return w.Close.Hour < w.Open.Hour
}

// BlocksHour reports whether starting at the given hour falls outside the
// operating window.
//
// For a same-day window the blocked hours are those before open and after
// close. For an overnight window the blocked range is the gap between
// close and open; the closing hour itself is blocked only when the window
// closes exactly on the hour, since a window closing at :30 still allows a
// booking at the top of the close hour.
func (w OperatingWindow) BlocksHour(hour int) bool {
	if w.IsAlwaysOpen() {
		return false
	}

	if !w.Wraps() {
		return hour < w.Open.Hour || hour > w.Close.Hour
	}

	if hour > w.Close.Hour && hour < w.Open.Hour {
		return true
	}
	return hour == w.Close.Hour && w.Close.Minute == 0
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
