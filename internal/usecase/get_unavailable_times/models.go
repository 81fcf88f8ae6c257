package get_unavailable_times

import "time"

// Request asks for the picker restrictions of one vehicle on one civil day.
type Request struct {
	VehicleID int64
	Date      time.Time
}

// Response carries everything the range picker needs for that day:
// whether the whole day is off, which hours are off, and which minutes
// are off within each selectable hour.
type Response struct {
	VehicleID       int64
	Date            time.Time
	DayDisabled     bool
	DisabledHours   []int
	DisabledMinutes map[int][]int
}
