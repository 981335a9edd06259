// Package aggregator collects probe outcomes into an immutable result set.
package aggregator

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"vigil/internal/core"
)

// ErrCorrupted reports that the aggregator's contents cannot be trusted:
// the finalized outcome count does not match the number of issued probes,
// or Finalize was called twice.
var ErrCorrupted = errors.New("aggregator corrupted")

// Aggregator is the only shared mutable state between workers. Record is a
// short mutex-guarded append; the error sink and live histogram are updated
// outside the lock.
type Aggregator struct {
	mu        sync.Mutex
	outcomes  []core.Outcome
	finalized bool
	startTime time.Time

	hist   *liveHistogram
	errlog core.ErrorLog
}

// New creates an empty Aggregator. errlog may be nil when no error sink is
// wanted.
func New(errlog core.ErrorLog) *Aggregator {
	return &Aggregator{
		outcomes:  make([]core.Outcome, 0),
		startTime: time.Now(),
		hist:      newLiveHistogram(),
		errlog:    errlog,
	}
}

// Record appends one outcome. Safe for concurrent use from any number of
// workers; no outcome is dropped or duplicated.
func (a *Aggregator) Record(o core.Outcome) {
	a.mu.Lock()
	a.outcomes = append(a.outcomes, o)
	a.mu.Unlock()

	a.hist.record(o.Latency)
	if a.errlog != nil && o.Kind != core.ErrorNone {
		a.errlog.LogError(o)
	}
}

// Snapshot is a point-in-time view of the run for progress reporting.
type Snapshot struct {
	Recorded  int
	Successes int
	Failures  int
	Elapsed   time.Duration
	P50Ms     float64
	P99Ms     float64
}

// Snapshot returns live counters and histogram percentiles. Counts are
// derived from the recorded outcomes so they can never diverge from them.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	recorded := len(a.outcomes)
	successes := 0
	for _, o := range a.outcomes {
		if o.Success() {
			successes++
		}
	}
	elapsed := time.Since(a.startTime)
	a.mu.Unlock()

	return Snapshot{
		Recorded:  recorded,
		Successes: successes,
		Failures:  recorded - successes,
		Elapsed:   elapsed,
		P50Ms:     a.hist.quantileMs(50),
		P99Ms:     a.hist.quantileMs(99),
	}
}

// Finalize freezes the aggregator and returns the immutable result set.
// expected is the number of probes the dispatcher issued; a mismatch means
// outcomes were lost or duplicated and the run cannot be trusted.
func (a *Aggregator) Finalize(expected int) (*ResultSet, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.finalized {
		return nil, fmt.Errorf("%w: finalized twice", ErrCorrupted)
	}
	a.finalized = true

	if len(a.outcomes) != expected {
		return nil, fmt.Errorf("%w: recorded %d outcomes, expected %d", ErrCorrupted, len(a.outcomes), expected)
	}

	outcomes := make([]core.Outcome, len(a.outcomes))
	copy(outcomes, a.outcomes)

	return &ResultSet{
		TotalIssued: expected,
		Outcomes:    outcomes,
		Elapsed:     time.Since(a.startTime),
	}, nil
}
