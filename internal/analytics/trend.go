package analytics

// Direction is the three-way trend classification
type Direction string

const (
	TrendUp     Direction = "up"
	TrendDown   Direction = "down"
	TrendStable Direction = "stable"
)

// Trend tuning constants. The values are part of the observable contract.
const (
	// TrendMinSamples is the minimum series length for a non-stable result
	TrendMinSamples = 14
	// TrendWindow is the size of each of the two compared rolling windows
	TrendWindow = 7
	// TrendThreshold is the minimum window-average delta for up/down
	TrendThreshold = 5.0
)

// Average returns the arithmetic mean of values, or 0 for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// Trend classifies a numeric series, ordered most-recent-first, by comparing
// the averages of the two most recent TrendWindow-sized windows. Fewer than
// TrendMinSamples values always yields TrendStable.
func Trend(series []float64) Direction {
	if len(series) < TrendMinSamples {
		return TrendStable
	}

	recentAvg := Average(series[0:TrendWindow])
	olderAvg := Average(series[TrendWindow : TrendWindow*2])

	delta := recentAvg - olderAvg
	if delta > TrendThreshold {
		return TrendUp
	}
	if delta < -TrendThreshold {
		return TrendDown
	}
	return TrendStable
}
