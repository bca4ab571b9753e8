package harness

import (
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// Aggregate collects the perfidx of every processed trace.
type Aggregate struct {
	scores []float64
}

// Add records the perfidx of one processed trace.
func (a *Aggregate) Add(perfidx float64) {
	a.scores = append(a.scores, perfidx)
}

// Count returns the number of processed traces.
func (a *Aggregate) Count() int {
	return len(a.scores)
}

// Total returns the sum of all recorded perfidx values.
func (a *Aggregate) Total() float64 {
	if len(a.scores) == 0 {
		return 0
	}
	total, _ := stats.Sum(a.scores)
	return total
}

// Mean returns the arithmetic mean, or ErrNoTracesProcessed if nothing was
// recorded.
func (a *Aggregate) Mean() (float64, error) {
	if len(a.scores) == 0 {
		return 0, ErrNoTracesProcessed
	}
	return stats.Mean(a.scores)
}

// FormatAverage renders v the way the report line expects, always with a
// decimal point.
func FormatAverage(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}
