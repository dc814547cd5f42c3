package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Calendar derives month keys, day keys and business weeks in a fixed timezone,
// so the same instant always lands in the same bucket regardless of the host zone.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a calendar for the given IANA timezone string.
// e.g. "Europe/Bucharest"
func NewCalendar(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// MonthID returns the YYYY-MM key of the month containing t.
func (c *Calendar) MonthID(t time.Time) string {
	return t.In(c.location).Format(MonthIDLayout)
}

// DateKey returns the YYYY-MM-DD key of the day containing t.
func (c *Calendar) DateKey(t time.Time) string {
	return t.In(c.location).Format(DateKeyLayout)
}

// ParseMonthID returns the first instant of the month identified by id.
func (c *Calendar) ParseMonthID(id string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthIDLayout, strings.TrimSpace(id), c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month id %q: %w", id, err)
	}
	return t, nil
}

// ValidMonthID reports whether id is a well-formed YYYY-MM key.
func (c *Calendar) ValidMonthID(id string) bool {
	_, err := c.ParseMonthID(id)
	return err == nil
}

// MonthBounds returns the first instant of the month and the first instant of the next one.
func (c *Calendar) MonthBounds(id string) (start, end time.Time, ok bool) {
	start, err := c.ParseMonthID(id)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, start.AddDate(0, 1, 0), true
}

// AddMonths shifts a month id by n months.
func (c *Calendar) AddMonths(id string, n int) (string, error) {
	start, err := c.ParseMonthID(id)
	if err != nil {
		return "", err
	}
	return start.AddDate(0, n, 0).Format(MonthIDLayout), nil
}

// StartOfDay returns midnight at the start of the given day in the calendar's timezone.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (c *Calendar) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// NextMidnight returns the first midnight strictly after t.
func (c *Calendar) NextMidnight(t time.Time) time.Time {
	return NextMidnight(t, c.location)
}

// NextMidnight returns the first local midnight in loc strictly after t.
// time.Date normalizes across DST transitions.
func NextMidnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc)
}
