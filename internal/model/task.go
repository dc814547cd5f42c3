package model

import "time"

// Task is the canonical, normalized shape of a tracked unit of work.
// Records from task sources are converted into Task by internal/task/adapter.
type Task struct {
	ID           string
	OwnerID      string // user who created the task
	ReporterID   string // external stakeholder the task is filed against (optional)
	CreatedAt    time.Time
	UpdatedAt    time.Time
	MonthID      string // YYYY-MM, derived from CreatedAt when present
	HoursSpent   float64
	AIUsed       bool
	AIHoursSpent float64 // zero unless AIUsed
	Reworked     bool
	Markets      []string
	Product      string
	AIModels     []string
	Deliverables []string
}

// HasTimestamp reports whether the task carries a usable creation time.
func (t Task) HasTimestamp() bool {
	return !t.CreatedAt.IsZero()
}
