package analytics

import "math"

// sanitizeHours guards the fold against values the adapter should already have
// removed.
func sanitizeHours(h float64) float64 {
	if h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return h
}
