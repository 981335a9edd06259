package transport

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vigil/internal/core"
)

func TestSend_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(1, nil)
	resp, err := c.Send(context.Background(), srv.URL, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if string(resp.Body) != "ok" {
		t.Errorf("expected body %q, got %q", "ok", resp.Body)
	}
}

func TestSend_Non200IsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(1, nil)
	resp, err := c.Send(context.Background(), srv.URL, time.Second)
	if err != nil {
		t.Fatalf("a received response is never a transport error: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Errorf("expected status 500, got %d", resp.StatusCode)
	}
}

func TestSend_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(1, nil)
	_, err := c.Send(context.Background(), srv.URL, 50*time.Millisecond)

	var terr *core.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *core.TransportError, got %v", err)
	}
	if terr.Kind != core.TransportTimeout {
		t.Errorf("expected timeout, got %s", terr.Kind)
	}
}

func TestSend_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(1, nil)
	_, err := c.Send(context.Background(), url, time.Second)

	var terr *core.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *core.TransportError, got %v", err)
	}
	if terr.Kind != core.TransportConnectionError {
		t.Errorf("expected connection error, got %s", terr.Kind)
	}
}

type fakeNetError struct {
	timeout bool
}

func (e *fakeNetError) Error() string   { return "fake net error" }
func (e *fakeNetError) Timeout() bool   { return e.timeout }
func (e *fakeNetError) Temporary() bool { return false }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want core.TransportErrorKind
	}{
		{"dns error", &net.DNSError{Err: "no such host", Name: "example.invalid", IsNotFound: true}, core.TransportDNSFailure},
		{"net timeout", &fakeNetError{timeout: true}, core.TransportTimeout},
		{"context deadline", context.DeadlineExceeded, core.TransportTimeout},
		{"plain error", errors.New("connection reset"), core.TransportConnectionError},
		{"non-timeout net error", &fakeNetError{}, core.TransportConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terr := classify(tt.err)
			if terr.Kind != tt.want {
				t.Errorf("classify(%v) = %s, want %s", tt.err, terr.Kind, tt.want)
			}
			if !errors.Is(terr, tt.err) {
				t.Error("classified error must wrap its cause")
			}
		})
	}
}

func TestClassify_DNSErrorBeatsTimeout(t *testing.T) {
	// A DNS lookup that times out is still a DNS failure.
	err := &net.DNSError{Err: "lookup timed out", Name: "example.invalid", IsTimeout: true}
	if got := classify(err).Kind; got != core.TransportDNSFailure {
		t.Errorf("expected dns failure, got %s", got)
	}
}

func TestDebugLogger_NilIsNoop(t *testing.T) {
	var d *DebugLogger
	// Must not panic.
	d.LogRequest(httptest.NewRequest(http.MethodGet, "http://example.test/", nil))
	d.LogError(errors.New("boom"))
}

func TestDebugLogger_LogsRequestAndResponse(t *testing.T) {
	out := &core.MockWriter{}
	d := NewDebugLogger(out)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	c := NewClient(1, d)
	if _, err := c.Send(context.Background(), srv.URL, time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logged := out.String()
	for _, want := range []string{">>> GET", "<<< 200", "hello"} {
		if !strings.Contains(logged, want) {
			t.Errorf("debug output missing %q:\n%s", want, logged)
		}
	}
}
