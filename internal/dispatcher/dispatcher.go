// Package dispatcher fans probes out over a bounded worker pool.
package dispatcher

import (
	"context"
	"fmt"
	"sync"

	"vigil/internal/aggregator"
	"vigil/internal/config"
	"vigil/internal/core"
	"vigil/internal/ratelimit"
)

// Executor produces one classified outcome per probe. Implementations must
// be safe for concurrent use.
type Executor interface {
	Execute(ctx context.Context, probeID int) core.Outcome
}

// Dispatcher runs a fixed burst of probes with bounded concurrency and a
// results-complete barrier: Run returns only after every probe has produced
// exactly one recorded outcome.
type Dispatcher struct {
	exec    Executor
	agg     *aggregator.Aggregator
	limiter *ratelimit.Limiter
}

// New builds a Dispatcher. limiter may be nil for unpaced dispatch.
func New(exec Executor, agg *aggregator.Aggregator, limiter *ratelimit.Limiter) *Dispatcher {
	return &Dispatcher{exec: exec, agg: agg, limiter: limiter}
}

// Run issues exactly count probes with at most cfg.Concurrency in flight.
// Excess probes queue on the jobs channel rather than being rejected.
// Probe failures are recorded as outcomes, never returned as errors; Run
// itself fails only on invalid configuration or a lost-outcome mismatch at
// finalization.
func (d *Dispatcher) Run(ctx context.Context, cfg config.RunConfig, count int) (*aggregator.ResultSet, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be >= 1, got %d", config.ErrInvalidConfig, count)
	}
	if cfg.Concurrency < 1 {
		return nil, fmt.Errorf("%w: concurrency must be >= 1, got %d", config.ErrInvalidConfig, cfg.Concurrency)
	}

	workers := cfg.Concurrency
	if workers > count {
		workers = count
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for probeID := range jobs {
				d.runProbe(ctx, probeID)
			}
		}()
	}

	for probeID := 1; probeID <= count; probeID++ {
		jobs <- probeID
	}
	close(jobs)
	wg.Wait()

	return d.agg.Finalize(count)
}

// runProbe guarantees exactly one recorded outcome per probe, even when the
// executor panics or the context is already cancelled.
func (d *Dispatcher) runProbe(ctx context.Context, probeID int) {
	defer func() {
		if r := recover(); r != nil {
			d.agg.Record(core.Outcome{
				ProbeID: probeID,
				Kind:    core.ErrorHardware,
				Err:     fmt.Sprintf("panic: %v", r),
			})
		}
	}()

	if err := d.limiter.Wait(ctx); err != nil {
		d.agg.Record(core.Outcome{
			ProbeID: probeID,
			Kind:    core.ErrorHardware,
			Err:     err.Error(),
		})
		return
	}

	d.agg.Record(d.exec.Execute(ctx, probeID))
}
