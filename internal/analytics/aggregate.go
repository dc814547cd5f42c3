package analytics

import (
	"task-tracker-app/internal/model"
	"task-tracker-app/pkg/datemath"
)

// Aggregate folds already-filtered, already month-scoped tasks into a result in a
// single pass. Day keys are computed in cal's timezone; tasks without a
// timestamp still count toward totals but are left out of ByDay.
func Aggregate(tasks []model.Task, cal *datemath.Calendar) AggregateResult {
	res := NewAggregateResult()
	for _, t := range tasks {
		res.add(t, cal)
	}
	return res
}

func (r *AggregateResult) add(t model.Task, cal *datemath.Calendar) {
	hours := sanitizeHours(t.HoursSpent)
	aiHours := 0.0
	if t.AIUsed {
		aiHours = sanitizeHours(t.AIHoursSpent)
	}

	r.TotalTasks++
	r.TotalHours += hours

	if t.AIUsed {
		r.AI.Tasks++
		r.AI.Hours += aiHours
	}
	if t.Reworked {
		r.ReworkedCount++
	}

	if t.OwnerID != "" {
		addBucket(r.ByUser, t.OwnerID, hours)
	}
	if t.HasTimestamp() && cal != nil {
		addBucket(r.ByDay, cal.DateKey(t.CreatedAt), hours)
	}

	for _, market := range t.Markets {
		if market == "" {
			continue
		}
		addBucket(r.ByMarket, market, hours)
		addBreakdown(r.AIBreakdownByMarket, market, t.AIUsed, hours, aiHours)
	}

	if t.Product != "" {
		addBucket(r.ByProduct, t.Product, hours)
		addBreakdown(r.AIBreakdownByProduct, t.Product, t.AIUsed, hours, aiHours)
	}

	for _, m := range t.AIModels {
		if m != "" {
			r.ByAIModel[m]++
		}
	}
	for _, d := range t.Deliverables {
		if d != "" {
			r.ByDeliverable[d]++
		}
	}
}

func addBucket(m map[string]Bucket, key string, hours float64) {
	b := m[key]
	b.Count++
	b.Hours += hours
	m[key] = b
}

// addBreakdown records the task in one category. AI hours are the task's AI time;
// non-AI tasks contribute their full hours to the non-AI side.
func addBreakdown(m map[string]AIBreakdown, key string, aiUsed bool, hours, aiHours float64) {
	b := m[key]
	b.TotalTasks++
	b.TotalHours += hours
	if aiUsed {
		b.AITasks++
		b.AIHours += aiHours
	} else {
		b.NonAITasks++
		b.NonAIHours += hours
	}
	m[key] = b
}

// AggregateWeeks folds tasks into one result per business week. Tasks without a
// timestamp or outside every week are skipped.
func AggregateWeeks(tasks []model.Task, weeks []datemath.Week, cal *datemath.Calendar) []WeekMetrics {
	grouped := make([][]model.Task, len(weeks))
	for _, t := range tasks {
		if !t.HasTimestamp() {
			continue
		}
		if w, ok := datemath.WeekOf(weeks, t.CreatedAt); ok {
			grouped[w.WeekNumber-1] = append(grouped[w.WeekNumber-1], t)
		}
	}

	out := make([]WeekMetrics, len(weeks))
	for i, w := range weeks {
		out[i] = WeekMetrics{Week: w, Result: Aggregate(grouped[i], cal)}
	}
	return out
}
