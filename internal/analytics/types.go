package analytics

import "task-tracker-app/pkg/datemath"

// Bucket is a count/hours pair for one category key.
type Bucket struct {
	Count int     `json:"count"`
	Hours float64 `json:"hours"`
}

// AIStats summarizes AI-assisted work.
type AIStats struct {
	Tasks int     `json:"tasks"`
	Hours float64 `json:"hours"`
}

// AIBreakdown splits a category's tasks and hours into AI and non-AI work.
type AIBreakdown struct {
	AITasks    int     `json:"aiTasks"`
	AIHours    float64 `json:"aiHours"`
	NonAITasks int     `json:"nonAiTasks"`
	NonAIHours float64 `json:"nonAiHours"`
	TotalTasks int     `json:"totalTasks"`
	TotalHours float64 `json:"totalHours"`
}

// AggregateResult is the metrics structure consumed by tables and charts.
// Field names are part of the JSON contract. A result is never mutated after
// Aggregate returns it.
type AggregateResult struct {
	TotalTasks    int     `json:"totalTasks"`
	TotalHours    float64 `json:"totalHours"`
	AI            AIStats `json:"ai"`
	ReworkedCount int     `json:"reworkedCount"`

	ByUser        map[string]Bucket `json:"byUser"`
	ByMarket      map[string]Bucket `json:"byMarket"`
	ByProduct     map[string]Bucket `json:"byProduct"`
	ByAIModel     map[string]int    `json:"byAIModel"` // usage tally, no hours
	ByDeliverable map[string]int    `json:"byDeliverable"`
	ByDay         map[string]Bucket `json:"byDay"`

	AIBreakdownByProduct map[string]AIBreakdown `json:"aiBreakdownByProduct"`
	AIBreakdownByMarket  map[string]AIBreakdown `json:"aiBreakdownByMarket"`
}

// WeekMetrics is the aggregate of one business week.
type WeekMetrics struct {
	Week   datemath.Week   `json:"week"`
	Result AggregateResult `json:"result"`
}

// NewAggregateResult returns an empty result with all maps allocated.
func NewAggregateResult() AggregateResult {
	return AggregateResult{
		ByUser:               map[string]Bucket{},
		ByMarket:             map[string]Bucket{},
		ByProduct:            map[string]Bucket{},
		ByAIModel:            map[string]int{},
		ByDeliverable:        map[string]int{},
		ByDay:                map[string]Bucket{},
		AIBreakdownByProduct: map[string]AIBreakdown{},
		AIBreakdownByMarket:  map[string]AIBreakdown{},
	}
}
