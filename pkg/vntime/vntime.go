// Package vntime converts between the backend's wire encodings of civil
// time and absolute instants. The backend sends LocalDateTime values in
// Vietnam time, either as a string "yyyy-MM-ddTHH:mm:ss" or as an array
// [year, month, day, hour, minute]. Everything downstream works with
// time.Time instants pinned to the Vietnam zone; the two wire forms only
// exist at this boundary.
package vntime

import (
	"errors"
	"fmt"
	"time"
)

// Vietnam has no daylight saving, so a fixed zone avoids a tzdata dependency.
var location = time.FixedZone("Asia/Ho_Chi_Minh", 7*60*60)

// WireFormat is the LocalDateTime layout the backend exchanges.
const WireFormat = "2006-01-02T15:04:05"

// ErrMalformedTimestamp is returned when a wire value cannot be interpreted
// as a calendar datetime (truncated array, unparseable string).
var ErrMalformedTimestamp = errors.New("vntime: malformed timestamp")

// Location returns the fixed Vietnam timezone used for all civil-time
// interpretation in this service.
func Location() *time.Location {
	return location
}

// ParseString interprets a zone-less LocalDateTime string as Vietnam wall
// clock time. Seconds are optional.
func ParseString(s string) (time.Time, error) {
	layouts := []string{
		WireFormat,
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
}

// ParseArray interprets the array form [year, month, day, hour, minute].
// Hour and minute default to 0 when the array carries only the date part.
func ParseArray(fields []int) (time.Time, error) {
	if len(fields) < 3 {
		return time.Time{}, fmt.Errorf("%w: array needs at least [year, month, day], got %d fields", ErrMalformedTimestamp, len(fields))
	}
	year, month, day := fields[0], fields[1], fields[2]
	hour, minute := 0, 0
	if len(fields) > 3 {
		hour = fields[3]
	}
	if len(fields) > 4 {
		minute = fields[4]
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, location), nil
}

// Format renders an instant as the LocalDateTime string the backend expects
// for outgoing requests (timeBookingStart / timeBookingEnd).
func Format(t time.Time) string {
	return t.In(location).Format(WireFormat)
}

// ToArray renders an instant in the array form [year, month, day, hour, minute].
func ToArray(t time.Time) [5]int {
	local := t.In(location)
	return [5]int{local.Year(), int(local.Month()), local.Day(), local.Hour(), local.Minute()}
}
