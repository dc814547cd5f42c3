package datemath

import "time"

// Layouts for period and day keys.
const (
	MonthIDLayout = "2006-01"
	DateKeyLayout = "2006-01-02"
)

// Week is a Monday-to-Friday business week clipped to a single month.
type Week struct {
	WeekNumber   int         `json:"weekNumber"`
	StartDate    time.Time   `json:"startDate"`
	EndDate      time.Time   `json:"endDate"`
	BusinessDays []time.Time `json:"businessDays"`
}

// Contains reports whether t falls in the calendar week (Monday-Sunday)
// this business week belongs to. Weekend days map to the preceding week.
func (w Week) Contains(t time.Time) bool {
	if w.StartDate.IsZero() {
		return false
	}
	loc := w.StartDate.Location()
	return mondayOf(t.In(loc)).Equal(mondayOf(w.StartDate))
}
