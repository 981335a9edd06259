// Package core defines the shared types of the validation engine.
package core

import "time"

// ErrorKind classifies the outcome of a single probe.
type ErrorKind int

const (
	// ErrorNone means an HTTP 200 response was received.
	ErrorNone ErrorKind = iota
	// ErrorSoftware means an HTTP response was received with a non-200 status.
	ErrorSoftware
	// ErrorTimeout means no response arrived within the request timeout.
	ErrorTimeout
	// ErrorDNS means name resolution failed before a connection was made.
	ErrorDNS
	// ErrorHardware means any other transport-level failure.
	ErrorHardware
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorNone:
		return "none"
	case ErrorSoftware:
		return "software"
	case ErrorTimeout:
		return "timeout"
	case ErrorDNS:
		return "dns"
	case ErrorHardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// IsHardware reports whether the kind counts as a hardware error: any
// transport-level failure, including timeouts and DNS failures.
func (k ErrorKind) IsHardware() bool {
	return k == ErrorTimeout || k == ErrorDNS || k == ErrorHardware
}

// Outcome is a single classified probe result. Immutable once created.
// StatusCode is 0 when no HTTP response was received.
type Outcome struct {
	ProbeID    int
	StatusCode int
	Latency    time.Duration
	Kind       ErrorKind
	Err        string
}

// Success reports whether the probe received an HTTP 200.
func (o Outcome) Success() bool {
	return o.Kind == ErrorNone
}

// ErrorLog receives each classified failure as it is recorded.
// Implementations must be safe for concurrent use.
type ErrorLog interface {
	LogError(Outcome)
}
