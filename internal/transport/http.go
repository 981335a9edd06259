// Package transport implements the HTTP send capability.
package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"vigil/internal/core"
)

// maxBodySize limits how much of a response body is read. The validator
// classifies on status alone; the body is read for debug logging and
// drained for connection reuse.
const maxBodySize = 1 << 20

// Client is the production core.Transport over net/http.
type Client struct {
	client *http.Client
	debug  *DebugLogger
}

// NewClient builds a Client sized for up to maxConns concurrent probes
// against a single host. The per-request timeout is applied in Send, not on
// the underlying http.Client.
func NewClient(maxConns int, debug *DebugLogger) *Client {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = maxConns
	t.MaxIdleConnsPerHost = maxConns
	return &Client{
		client: &http.Client{Transport: t},
		debug:  debug,
	}
}

// Send issues one GET request and classifies every failure as a
// *core.TransportError.
func (c *Client) Send(ctx context.Context, url string, timeout time.Duration) (core.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return core.Response{}, &core.TransportError{Kind: core.TransportConnectionError, Cause: err}
	}

	c.debug.LogRequest(req)

	resp, err := c.client.Do(req)
	if err != nil {
		terr := classify(err)
		c.debug.LogError(terr)
		return core.Response{}, terr
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	_, _ = io.Copy(io.Discard, resp.Body) // drain errors are ignorable

	c.debug.LogResponse(resp, body)

	return core.Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// classify maps a net/http error onto the transport taxonomy. The type
// inspection happens here and nowhere else.
func classify(err error) *core.TransportError {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &core.TransportError{Kind: core.TransportDNSFailure, Cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &core.TransportError{Kind: core.TransportTimeout, Cause: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &core.TransportError{Kind: core.TransportTimeout, Cause: err}
	}

	return &core.TransportError{Kind: core.TransportConnectionError, Cause: err}
}
