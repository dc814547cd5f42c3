package analytics

import "math"

// Merge returns the field-wise sum of a and b. Neither input is modified.
// For disjoint task sets A and B, Merge(Aggregate(A), Aggregate(B)) equals
// Aggregate(A ∪ B).
func Merge(a, b AggregateResult) AggregateResult {
	out := NewAggregateResult()
	for _, r := range []AggregateResult{a, b} {
		out.TotalTasks += r.TotalTasks
		out.TotalHours += r.TotalHours
		out.AI.Tasks += r.AI.Tasks
		out.AI.Hours += r.AI.Hours
		out.ReworkedCount += r.ReworkedCount

		mergeBuckets(out.ByUser, r.ByUser)
		mergeBuckets(out.ByMarket, r.ByMarket)
		mergeBuckets(out.ByProduct, r.ByProduct)
		mergeBuckets(out.ByDay, r.ByDay)
		mergeCounts(out.ByAIModel, r.ByAIModel)
		mergeCounts(out.ByDeliverable, r.ByDeliverable)
		mergeBreakdowns(out.AIBreakdownByProduct, r.AIBreakdownByProduct)
		mergeBreakdowns(out.AIBreakdownByMarket, r.AIBreakdownByMarket)
	}
	return out
}

// Percent returns part/total*100, or 0 when total is 0.
func Percent(part, total float64) float64 {
	if total == 0 || math.IsNaN(total) || math.IsNaN(part) {
		return 0
	}
	return part / total * 100
}

// AIHoursShare is the percentage of total hours spent with AI assistance.
func (r AggregateResult) AIHoursShare() float64 {
	return Percent(r.AI.Hours, r.TotalHours)
}

// ReworkRate is the percentage of tasks that were reworked.
func (r AggregateResult) ReworkRate() float64 {
	return Percent(float64(r.ReworkedCount), float64(r.TotalTasks))
}

func mergeBuckets(dst, src map[string]Bucket) {
	for k, v := range src {
		b := dst[k]
		b.Count += v.Count
		b.Hours += v.Hours
		dst[k] = b
	}
}

func mergeCounts(dst, src map[string]int) {
	for k, v := range src {
		dst[k] += v
	}
}

func mergeBreakdowns(dst, src map[string]AIBreakdown) {
	for k, v := range src {
		b := dst[k]
		b.AITasks += v.AITasks
		b.AIHours += v.AIHours
		b.NonAITasks += v.NonAITasks
		b.NonAIHours += v.NonAIHours
		b.TotalTasks += v.TotalTasks
		b.TotalHours += v.TotalHours
		dst[k] = b
	}
}
