package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var durationPattern = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)

// maxRelativeAmount bounds N in "in N days|weeks|months".
const maxRelativeAmount = 10000

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ResolveMonth turns a period expression into a month id. It accepts a YYYY-MM
// key, a relative date expression ("today", "in 1 month", "next monday"...), or
// an empty string for the month containing now.
func (c *Calendar) ResolveMonth(expr string, now time.Time) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return c.MonthID(now), nil
	}
	if t, err := c.ParseMonthID(expr); err == nil {
		return t.Format(MonthIDLayout), nil
	}
	t, err := c.Parse(expr, now)
	if err != nil {
		return "", err
	}
	return c.MonthID(t), nil
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
// Unknown expressions are an error.
func (c *Calendar) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "this month":
		return c.StartOfDay(baseTime), nil
	case "tomorrow":
		return c.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return c.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "last month":
		return c.firstOfMonth(baseTime, -1), nil
	case "next month":
		return c.firstOfMonth(baseTime, 1), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return c.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return c.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("unknown date expression: %q", relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (c *Calendar) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := durationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount > maxRelativeAmount {
		return baseTime, fmt.Errorf("duration amount out of range: %q", relative)
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return c.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return c.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return c.firstOfMonth(baseTime, amount), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (c *Calendar) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(c.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return c.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// firstOfMonth returns the first instant of the month n months away from t.
// Going through day 1 avoids AddDate overflow on the 31st.
func (c *Calendar) firstOfMonth(t time.Time, n int) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, c.location)
}
