package analysis

import (
	"github.com/montanaflynn/stats"
)

// Trend direction labels. A tie on the strict first-vs-last comparison is
// reported as decreasing, matching the observed dashboard behavior.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
)

// Summary holds the headline statistics of a converted series. Count of 0
// means the selection had no data and the remaining fields are meaningless.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Max   float64 `json:"max"`
	Min   float64 `json:"min"`
}

// Summarize computes mean/max/min over the converted temperatures, degrading
// to a zero-count summary for an empty selection.
func Summarize(temps []float64) Summary {
	if len(temps) == 0 {
		return Summary{}
	}

	mean, err := stats.Mean(temps)
	if err != nil {
		return Summary{}
	}
	max, _ := stats.Max(temps)
	min, _ := stats.Min(temps)

	return Summary{Count: len(temps), Mean: mean, Max: max, Min: min}
}

// TrendDirection compares the last value against the first with a strict
// greater-than test. Empty input returns "".
func TrendDirection(temps []float64) string {
	if len(temps) == 0 {
		return ""
	}
	if temps[len(temps)-1] > temps[0] {
		return TrendIncreasing
	}
	return TrendDecreasing
}
