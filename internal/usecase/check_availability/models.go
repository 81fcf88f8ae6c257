package check_availability

import "time"

// Request asks whether a candidate rental window is free for a vehicle.
type Request struct {
	VehicleID int64
	Start     time.Time
	End       time.Time
}

// Response reports the conflict check. Message is empty when the window
// is available; otherwise it carries the user-facing explanation the
// frontend shows verbatim.
type Response struct {
	VehicleID             int64
	Start                 time.Time
	End                   time.Time
	Available             bool
	Message               string
	ConflictingBookingIDs []int64
}
