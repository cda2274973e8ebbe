package heatmap

import (
	"math"
	"sort"
)

// intensityPercentiles are the cut points of the log-scaled count
// distribution that bound buckets 1..8; values above the last cut point
// fall into bucket 9. The spacing is deliberately denser at the top so a
// handful of very active days cannot wash out the rest of the scale.
var intensityPercentiles = [...]float64{10, 25, 40, 55, 70, 80, 88, 94}

// percentileIndex returns the 0-based index of the p-th percentile in a
// sorted slice of length n, using the 1-based rank ceil(p/100*n) clamped
// to at least 1.
func percentileIndex(p float64, n int) int {
	rank := int(math.Ceil(p / 100 * float64(n)))
	if rank < 1 {
		rank = 1
	}
	if rank > n {
		rank = n
	}
	return rank - 1
}

// logScale dampens heavy-tailed count distributions before bucketing.
func logScale(count int) float64 {
	return math.Log10(float64(count) + 1)
}

// classifyIntensity maps each day's raw count to an ordinal bucket 0..9.
// Bucket 0 always means a zero count; buckets 1..9 encode the day's rank
// within the whole series, not its raw magnitude, so equal counts always
// land in equal buckets.
func classifyIntensity(data []Data) map[string]int {
	intensity := make(map[string]int, len(data))

	var logs []float64
	for _, d := range data {
		if d.Count > 0 {
			logs = append(logs, logScale(d.Count))
		}
	}
	if len(logs) == 0 {
		for _, d := range data {
			intensity[d.Date.Format(dateFormat)] = 0
		}
		return intensity
	}
	sort.Float64s(logs)

	cuts := make([]float64, len(intensityPercentiles))
	for i, p := range intensityPercentiles {
		cuts[i] = logs[percentileIndex(p, len(logs))]
	}

	for _, d := range data {
		key := d.Date.Format(dateFormat)
		if d.Count == 0 {
			intensity[key] = 0
			continue
		}
		v := logScale(d.Count)
		bucket := len(cuts) + 1
		for i, cut := range cuts {
			if v <= cut {
				bucket = i + 1
				break
			}
		}
		intensity[key] = bucket
	}
	return intensity
}
