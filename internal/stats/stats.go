// Package stats computes the statistics report and its pass/fail verdicts.
package stats

import (
	"math"
	"sort"
	"time"

	"vigil/internal/aggregator"
	"vigil/internal/config"
)

// Report is the derived, immutable summary of one run. Latency statistics
// cover successful probes only.
type Report struct {
	Count             int
	SuccessCount      int
	SoftwareErrors    int
	HardwareErrors    int
	ErrorRate         float64
	MeanLatencyMs     float64
	StdDevMs          float64
	P95LatencyMs      float64
	MinLatencyMs      float64
	MaxLatencyMs      float64
	ReliabilityPassed bool
	PerformancePassed bool
	Elapsed           time.Duration
}

// Passed reports whether both checks passed.
func (r *Report) Passed() bool {
	return r.ReliabilityPassed && r.PerformancePassed
}

// Analyze derives the statistics report from a finalized result set.
// Pure function: identical inputs always produce an identical report.
func Analyze(rs *aggregator.ResultSet, cfg config.RunConfig) *Report {
	r := &Report{
		Count:          rs.TotalIssued,
		SuccessCount:   rs.SuccessCount(),
		SoftwareErrors: rs.SoftwareErrorCount(),
		HardwareErrors: rs.HardwareErrorCount(),
		ErrorRate:      rs.ErrorRate(),
		Elapsed:        rs.Elapsed,
	}

	r.ReliabilityPassed = 1-r.ErrorRate >= cfg.RequiredSuccessRate

	sample := rs.SuccessLatencies()
	if len(sample) == 0 {
		// No successful probe means no latency sample: statistics stay zero
		// and the performance check cannot pass.
		return r
	}

	ms := make([]float64, len(sample))
	for i, d := range sample {
		ms[i] = float64(d) / float64(time.Millisecond)
	}
	sort.Float64s(ms)

	r.MinLatencyMs = ms[0]
	r.MaxLatencyMs = ms[len(ms)-1]
	r.MeanLatencyMs = mean(ms)
	r.StdDevMs = sampleStdDev(ms, r.MeanLatencyMs)
	r.P95LatencyMs = Percentile(ms, 0.95)
	r.PerformancePassed = r.MeanLatencyMs <= float64(cfg.PerformanceThreshold)/float64(time.Millisecond)

	return r
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStdDev uses the N-1 denominator: the measured probes are a sample
// of a larger hypothetical request population. Zero when N <= 1.
func sampleStdDev(xs []float64, mean float64) float64 {
	if len(xs) <= 1 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

// Percentile returns the nearest-rank percentile of an ascending-sorted
// sample: index ceil(p*N)-1, clamped to [0, N-1].
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
