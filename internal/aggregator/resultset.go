package aggregator

import (
	"time"

	"vigil/internal/core"
)

// ResultSet is the finalized, read-only record of one run. Outcome order is
// completion order and carries no meaning; consumers must not depend on it.
type ResultSet struct {
	TotalIssued int
	Outcomes    []core.Outcome
	Elapsed     time.Duration
}

// Counts are derived on demand rather than stored so they can never diverge
// from the outcomes themselves.

// SuccessCount returns the number of probes that received HTTP 200.
func (rs *ResultSet) SuccessCount() int {
	n := 0
	for _, o := range rs.Outcomes {
		if o.Success() {
			n++
		}
	}
	return n
}

// SoftwareErrorCount returns the number of probes that received a non-200
// HTTP response.
func (rs *ResultSet) SoftwareErrorCount() int {
	n := 0
	for _, o := range rs.Outcomes {
		if o.Kind == core.ErrorSoftware {
			n++
		}
	}
	return n
}

// HardwareErrorCount returns the number of probes that failed at the
// transport layer, including timeouts and DNS failures.
func (rs *ResultSet) HardwareErrorCount() int {
	n := 0
	for _, o := range rs.Outcomes {
		if o.Kind.IsHardware() {
			n++
		}
	}
	return n
}

// ErrorRate returns the fraction of issued probes that did not succeed.
func (rs *ResultSet) ErrorRate() float64 {
	if rs.TotalIssued == 0 {
		return 0
	}
	return 1 - float64(rs.SuccessCount())/float64(rs.TotalIssued)
}

// SuccessLatencies returns the latency sample of successful probes.
func (rs *ResultSet) SuccessLatencies() []time.Duration {
	sample := make([]time.Duration, 0, len(rs.Outcomes))
	for _, o := range rs.Outcomes {
		if o.Success() {
			sample = append(sample, o.Latency)
		}
	}
	return sample
}
