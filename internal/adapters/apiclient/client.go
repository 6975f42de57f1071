// Package apiclient fetches OctoFit collections from the upstream REST API.
package apiclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"octofit/internal/adapters/http/perf"
	"octofit/internal/domain/resource"
	"octofit/internal/observability"
)

// MaxBodyBytes caps how much of an upstream body is read.
const MaxBodyBytes = 10 << 20

// Client issues one GET per List call against the upstream API.
// It never retries and never caches.
type Client struct {
	baseURL   string
	http      *http.Client
	collector *perf.Collector
}

// New creates a client for the API rooted at baseURL.
// PRE: baseURL is an absolute http(s) URL; timeout 0 means no client-side timeout
// POST: Returns a client that records every List call to collector (nil disables recording)
func New(baseURL string, timeout time.Duration, collector *perf.Collector) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: NewTimedTransport(http.DefaultTransport),
		},
		collector: collector,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches the collection for res and unwraps it into records.
// PRE: ctx is the page request context
// POST: on success records is non-nil; on failure err matches ErrFetchFailed;
// one collector entry is recorded either way, flagged Failed exactly when err != nil
func (c *Client) List(ctx context.Context, res resource.Resource) ([]resource.Record, error) {
	start := time.Now()
	records, status, err := c.list(ctx, res)
	elapsed := time.Since(start)
	c.record(res, status, err != nil, start, elapsed)

	if err != nil {
		observability.RecordFetch(res.Name, observability.OutcomeFailed, elapsed)
		if ctx.Err() != nil {
			slog.Info("fetch_canceled", "resource", res.Name, "error", err)
		} else {
			slog.Error("fetch_failed", "resource", res.Name, "url", c.baseURL+res.Endpoint(), "error", err)
		}
		return nil, err
	}

	outcome := observability.OutcomeLoaded
	if len(records) == 0 {
		outcome = observability.OutcomeEmpty
	}
	observability.RecordFetch(res.Name, outcome, elapsed)
	slog.Debug("fetch_ok", "resource", res.Name, "records", len(records))
	return records, nil
}

// list returns the HTTP status alongside the outcome; 0 when no response arrived.
func (c *Client) list(ctx context.Context, res resource.Resource) ([]resource.Record, int, error) {
	url := c.baseURL + res.Endpoint()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, &FetchError{Resource: res.Name, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &FetchError{Resource: res.Name, Err: err}
	}
	defer resp.Body.Close()
	status := resp.StatusCode

	if status < 200 || status > 299 {
		// Drain a little so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, status, &FetchError{Resource: res.Name, StatusCode: status, Err: errUnexpectedStatus}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, status, &FetchError{Resource: res.Name, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(body) > MaxBodyBytes {
		return nil, status, &FetchError{Resource: res.Name, Err: errors.New("read body: response too large")}
	}

	records, shape, err := Unwrap(body)
	if err != nil {
		return nil, status, &FetchError{Resource: res.Name, Err: err}
	}
	observability.RecordShape(res.Name, shape)
	return records, status, nil
}

func (c *Client) record(res resource.Resource, status int, failed bool, start time.Time, elapsed time.Duration) {
	if c.collector == nil {
		return
	}
	c.collector.Record(perf.Entry{
		Kind:       perf.KindFetch,
		Path:       http.MethodGet + " " + res.Endpoint(),
		StatusCode: status,
		Failed:     failed,
		DurationMs: float64(elapsed.Microseconds()) / 1000.0,
		Timestamp:  start,
	})
}
