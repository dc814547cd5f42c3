package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date marshals as DateFormat in the time's own location. Convert to the
// reporting zone before wrapping.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// Dates wraps a slice of days.
func Dates(days []time.Time) []Date {
	out := make([]Date, len(days))
	for i, d := range days {
		out[i] = Date(d)
	}
	return out
}

// DateTime marshals as DateTimeFormat in the time's own location.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}
