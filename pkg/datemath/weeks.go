package datemath

import "time"

// WeeksInMonth partitions the month into Monday-starting, Friday-ending business
// weeks clipped to the month. Weeks without a business day inside the month are
// omitted; an invalid id yields an empty list.
func (c *Calendar) WeeksInMonth(monthID string) []Week {
	start, end, ok := c.MonthBounds(monthID)
	if !ok {
		return []Week{}
	}

	weeks := []Week{}
	for monday := mondayOf(start); monday.Before(end); monday = monday.AddDate(0, 0, 7) {
		var days []time.Time
		for i := 0; i < 5; i++ {
			day := monday.AddDate(0, 0, i)
			if day.Before(start) || !day.Before(end) {
				continue
			}
			days = append(days, day)
		}
		if len(days) == 0 {
			continue
		}
		weeks = append(weeks, Week{
			WeekNumber:   len(weeks) + 1,
			StartDate:    days[0],
			EndDate:      days[len(days)-1],
			BusinessDays: days,
		})
	}
	return weeks
}

// CurrentWeekNumber returns the number of the week containing now when now falls
// inside monthID, and 1 otherwise.
func (c *Calendar) CurrentWeekNumber(monthID string, now time.Time) int {
	if c.MonthID(now) != monthID {
		return 1
	}
	if w, ok := WeekOf(c.WeeksInMonth(monthID), now); ok {
		return w.WeekNumber
	}
	return 1
}

// WeekOf finds the week t belongs to. Days of the month before the first
// business week (a leading weekend) belong to week 1.
func WeekOf(weeks []Week, t time.Time) (Week, bool) {
	for _, w := range weeks {
		if w.Contains(t) {
			return w, true
		}
	}
	if len(weeks) == 0 {
		return Week{}, false
	}
	first := weeks[0].StartDate
	local := t.In(first.Location())
	monthStart := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, first.Location())
	if !local.Before(monthStart) && local.Before(first) {
		return weeks[0], true
	}
	return Week{}, false
}

// IsBusinessDay reports whether t falls on Monday through Friday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// mondayOf returns midnight of the Monday starting t's week, in t's location.
func mondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}
