package runner

import (
	"math"
	"slices"
	"time"
)

// DefaultPercentiles are reported for every latency sample set.
var DefaultPercentiles = []int{50, 90, 95, 99}

type LatencyStats struct {
	Min         time.Duration         `json:"min"`
	Max         time.Duration         `json:"max"`
	Mean        time.Duration         `json:"mean"`
	Stddev      time.Duration         `json:"stddev"`
	Percentiles map[int]time.Duration `json:"percentiles"`
	SampleCount int                   `json:"sampleCount"`
	Raw         []time.Duration       `json:"-"`
}

// ComputeLatencyStats summarizes samples. With no percentiles given it uses
// DefaultPercentiles.
func ComputeLatencyStats(samples []time.Duration, percentiles ...int) LatencyStats {
	if len(percentiles) == 0 {
		percentiles = DefaultPercentiles
	}
	stats := LatencyStats{Percentiles: make(map[int]time.Duration, len(percentiles))}
	if len(samples) == 0 {
		return stats
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.SampleCount = len(sorted)
	stats.Raw = samples

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	stats.Mean = sum / time.Duration(len(sorted))
	stats.Stddev = stddev(sorted, stats.Mean)

	for _, p := range percentiles {
		stats.Percentiles[p] = percentile(sorted, p)
	}
	return stats
}

// sample standard deviation, zero below two samples
func stddev(samples []time.Duration, mean time.Duration) time.Duration {
	if len(samples) < 2 {
		return 0
	}
	var sq float64
	for _, d := range samples {
		diff := float64(d - mean)
		sq += diff * diff
	}
	return time.Duration(math.Sqrt(sq / float64(len(samples)-1)))
}

// percentile interpolates linearly between the two closest ranks of sorted.
func percentile(sorted []time.Duration, p int) time.Duration {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}

	rank := float64(p) / 100 * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + time.Duration(frac*float64(sorted[lo+1]-sorted[lo]))
}

// MergeLatencyStats recomputes stats over the raw samples of every input.
func MergeLatencyStats(stats []LatencyStats) LatencyStats {
	var all []time.Duration
	for _, s := range stats {
		all = append(all, s.Raw...)
	}
	return ComputeLatencyStats(all)
}

func (s LatencyStats) Median() time.Duration { return s.Percentiles[50] }
func (s LatencyStats) P90() time.Duration    { return s.Percentiles[90] }
func (s LatencyStats) P95() time.Duration    { return s.Percentiles[95] }
func (s LatencyStats) P99() time.Duration    { return s.Percentiles[99] }

func (s LatencyStats) IsZero() bool {
	return s.SampleCount == 0
}
