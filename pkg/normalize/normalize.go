// Package normalize coerces loosely-typed input values into safe defaults.
// Every function is total: malformed input degrades to the zero value and
// never panics or returns an error.
package normalize

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Float returns v as a finite float64, or 0.
func Float(v any) float64 {
	switch val := v.(type) {
	case nil, bool:
		return 0
	case string:
		v = strings.TrimSpace(val)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// NonNegative is Float clamped at 0.
func NonNegative(v any) float64 {
	f := Float(v)
	if f < 0 {
		return 0
	}
	return f
}

// Bool returns v as a bool, or false.
func Bool(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		v = strings.ToLower(strings.TrimSpace(s))
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

// String returns v as a trimmed string, or "". Collections are not strings.
func String(v any) string {
	switch v.(type) {
	case nil, []any, []string, map[string]any:
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// Strings returns v as a list of non-empty, de-duplicated strings in input order.
// A scalar becomes a single-element list.
func Strings(v any) []string {
	var raw []any
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		raw = make([]any, len(val))
		for i, s := range val {
			raw[i] = s
		}
	case []any:
		raw = val
	default:
		raw = []any{val}
	}

	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, item := range raw {
		s := String(item)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Time normalizes a timestamp-like value. Accepted shapes: time.Time,
// *time.Time, ISO/RFC3339/date strings, epoch milliseconds as numbers or
// numeric strings, and {seconds, nanoseconds} objects. ok is false when v
// cannot be interpreted.
func Time(v any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	switch val := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return nonZero(val)
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		return nonZero(*val)
	case json.Number:
		return fromMillis(Float(val.String()))
	case int, int32, int64, uint, uint32, uint64, float32, float64:
		return fromMillis(Float(val))
	case string:
		return fromString(strings.TrimSpace(val), loc)
	case map[string]any:
		return fromSecondsObject(val)
	}
	return time.Time{}, false
}

// EpochMillis is Time expressed as milliseconds since the Unix epoch.
func EpochMillis(v any, loc *time.Location) (int64, bool) {
	t, ok := Time(v, loc)
	if !ok {
		return 0, false
	}
	return t.UnixMilli(), true
}

func fromString(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if f, err := cast.ToFloat64E(s); err == nil {
		return fromMillis(f)
	}
	t, err := cast.ToTimeInDefaultLocationE(s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return nonZero(t)
}

// maxEpochMillis is 10000-01-01T00:00:00Z; later instants have no YYYY-MM key.
const maxEpochMillis = 253402300800000

func fromMillis(ms float64) (time.Time, bool) {
	if math.IsNaN(ms) || ms <= 0 || ms >= maxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}

// fromSecondsObject handles document-store timestamps such as
// {"seconds": 1714557600, "nanoseconds": 0} or {"_seconds": ..., "_nanoseconds": ...}.
func fromSecondsObject(m map[string]any) (time.Time, bool) {
	secs, ok := m["seconds"]
	if !ok {
		secs, ok = m["_seconds"]
	}
	if !ok {
		return time.Time{}, false
	}
	s := Float(secs)
	if s <= 0 || s >= maxEpochMillis/1000 {
		return time.Time{}, false
	}
	nanos := m["nanoseconds"]
	if nanos == nil {
		nanos = m["_nanoseconds"]
	}
	return time.Unix(int64(s), int64(NonNegative(nanos))), true
}

func nonZero(t time.Time) (time.Time, bool) {
	if t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}
