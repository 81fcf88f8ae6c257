package vntime

import (
	"encoding/json"
	"fmt"
	"time"
)

// WireTime is a time.Time that knows both wire encodings of the backend's
// LocalDateTime. It decodes from either the string or the array form and
// always encodes back as the string form.
type WireTime struct {
	time.Time
}

// New wraps an instant as a WireTime.
func New(t time.Time) WireTime {
	return WireTime{Time: t.In(location)}
}

// UnmarshalJSON accepts "yyyy-MM-ddTHH:mm:ss" or [year, month, day, hour, minute].
func (w *WireTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t, err := ParseString(s)
		if err != nil {
			return err
		}
		w.Time = t
		return nil
	}

	var fields []int
	if err := json.Unmarshal(data, &fields); err == nil {
		t, err := ParseArray(fields)
		if err != nil {
			return err
		}
		w.Time = t
		return nil
	}

	return fmt.Errorf("%w: expected string or array, got %s", ErrMalformedTimestamp, string(data))
}

// MarshalJSON always produces the string form.
func (w WireTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(Format(w.Time))
}

// String returns the wire string form.
func (w WireTime) String() string {
	return Format(w.Time)
}
