package analysis

import (
	"math"
	"sort"
)

// percentileLinear computes the pth percentile (0-100) with linear
// interpolation between order statistics at rank (n-1)*p/100. This is the
// convention the extreme-event thresholds are defined against;
// stats.Percentile uses a different rank and does not reproduce it.
func percentileLinear(values []float64, p float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	if len(values) == 1 {
		return values[0], true
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1], true
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower]), true
}
