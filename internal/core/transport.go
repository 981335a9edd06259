package core

import (
	"context"
	"fmt"
	"time"
)

// TransportErrorKind tags a transport-level failure.
type TransportErrorKind int

const (
	// TransportTimeout means no response arrived within the timeout window.
	TransportTimeout TransportErrorKind = iota
	// TransportDNSFailure means the target host could not be resolved.
	TransportDNSFailure
	// TransportConnectionError covers every other transport failure.
	TransportConnectionError
)

func (k TransportErrorKind) String() string {
	switch k {
	case TransportTimeout:
		return "timeout"
	case TransportDNSFailure:
		return "dns failure"
	case TransportConnectionError:
		return "connection error"
	default:
		return "unknown"
	}
}

// TransportError is the only error type a Transport returns. The tag is
// decided once, at the transport boundary, so callers never inspect
// library-specific error types.
type TransportError struct {
	Kind  TransportErrorKind
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Response is a received HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport sends one GET request to url with a per-request timeout.
// Every failure is returned as a *TransportError. Implementations must be
// safe for concurrent use; the capability is injected so the engine can be
// tested against a fake.
type Transport interface {
	Send(ctx context.Context, url string, timeout time.Duration) (Response, error)
}
