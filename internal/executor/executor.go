// Package executor issues single probes and classifies their outcomes.
package executor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"vigil/internal/config"
	"vigil/internal/core"
)

// Executor wraps the transport capability for one target. It holds no
// mutable state and is safe for concurrent use.
type Executor struct {
	transport core.Transport
	clock     core.Clock
	url       string
	timeout   time.Duration
}

// New builds an Executor for the run's target. A nil clock means the real
// clock.
func New(t core.Transport, clock core.Clock, cfg config.RunConfig) *Executor {
	if clock == nil {
		clock = core.RealClock{}
	}
	return &Executor{
		transport: t,
		clock:     clock,
		url:       cfg.TargetURL,
		timeout:   cfg.RequestTimeout,
	}
}

// Execute sends one GET request and maps the result onto the outcome
// taxonomy. Latency covers the transport call only, not dispatch overhead.
func (e *Executor) Execute(ctx context.Context, probeID int) core.Outcome {
	start := e.clock.Now()
	resp, err := e.transport.Send(ctx, e.url, e.timeout)
	latency := e.clock.Since(start)

	if err != nil {
		return classifyError(probeID, latency, err)
	}

	if resp.StatusCode == http.StatusOK {
		return core.Outcome{
			ProbeID:    probeID,
			StatusCode: resp.StatusCode,
			Latency:    latency,
			Kind:       core.ErrorNone,
		}
	}

	return core.Outcome{
		ProbeID:    probeID,
		StatusCode: resp.StatusCode,
		Latency:    latency,
		Kind:       core.ErrorSoftware,
		Err:        fmt.Sprintf("unexpected status %d", resp.StatusCode),
	}
}

func classifyError(probeID int, latency time.Duration, err error) core.Outcome {
	o := core.Outcome{
		ProbeID: probeID,
		Latency: latency,
		Kind:    core.ErrorHardware,
		Err:     err.Error(),
	}

	var terr *core.TransportError
	if errors.As(err, &terr) {
		switch terr.Kind {
		case core.TransportTimeout:
			o.Kind = core.ErrorTimeout
		case core.TransportDNSFailure:
			o.Kind = core.ErrorDNS
		}
	}
	return o
}
