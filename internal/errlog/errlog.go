// Package errlog provides error sinks for classified probe failures.
//
// The sink is injected into the aggregator instead of living as process-wide
// logger state, so the engine stays free of global mutable state.
package errlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"vigil/internal/core"
)

// Writer logs each classified failure to an io.Writer. Safe for concurrent
// use.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) LogError(o core.Outcome) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if o.StatusCode != 0 {
		fmt.Fprintf(w.out, "probe %d failed: %s (HTTP %d) after %v\n",
			o.ProbeID, o.Kind, o.StatusCode, o.Latency.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(w.out, "probe %d failed: %s after %v: %s\n",
		o.ProbeID, o.Kind, o.Latency.Round(time.Millisecond), o.Err)
}

// File appends failures to a log file.
type File struct {
	*Writer
	f *os.File
}

func NewFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening error log: %w", err)
	}
	return &File{Writer: NewWriter(f), f: f}, nil
}

func (l *File) Close() error {
	return l.f.Close()
}

// Nop discards every failure.
type Nop struct{}

func (Nop) LogError(core.Outcome) {}
