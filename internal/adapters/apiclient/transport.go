package apiclient

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"octofit/internal/adapters/http/middleware"
)

// RequestIDHeader carries the dashboard request ID to the upstream API.
const RequestIDHeader = middleware.RequestIDHeader

// DefaultSlowFetchMs is the default threshold for slow fetch warnings.
const DefaultSlowFetchMs = 500

var slowFetchMs int64
var slowFetchOnce sync.Once

// getSlowFetchThreshold returns the slow-fetch threshold in milliseconds.
func getSlowFetchThreshold() float64 {
	slowFetchOnce.Do(func() {
		ms := DefaultSlowFetchMs
		if v := os.Getenv("OCTOFIT_SLOW_FETCH_MS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				ms = n
			}
		}
		atomic.StoreInt64(&slowFetchMs, int64(ms))
	})
	return float64(atomic.LoadInt64(&slowFetchMs))
}

// TimedTransport wraps an http.RoundTripper to tag upstream calls with a
// request ID and log slow fetches. Collector entries are written by Client.List,
// which alone knows whether the body was usable.
type TimedTransport struct {
	next      http.RoundTripper
	threshold float64
}

// Compile-time check that *TimedTransport satisfies http.RoundTripper.
var _ http.RoundTripper = (*TimedTransport)(nil)

// NewTimedTransport wraps next with timing instrumentation.
// PRE: none; a nil next selects http.DefaultTransport
// POST: Returns a RoundTripper that logs slow fetches
func NewTimedTransport(next http.RoundTripper) *TimedTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &TimedTransport{
		next:      next,
		threshold: getSlowFetchThreshold(),
	}
}

// RoundTrip issues the request and records its timing.
// The caller's request is cloned before the request ID header is set.
func (t *TimedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqID, ok := middleware.RequestIDFromContext(req.Context())
	if !ok {
		reqID = uuid.New().String()
	}
	out := req.Clone(req.Context())
	out.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := t.next.RoundTrip(out)
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	t.logFetch(out, reqID, status, start)
	return resp, err
}

// logFetch logs a fetch timing.
func (t *TimedTransport) logFetch(req *http.Request, reqID string, status int, start time.Time) {
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	op := req.Method + " " + req.URL.Path

	if durationMs >= t.threshold {
		slog.Warn("slow_fetch",
			"request_id", reqID,
			"op", op,
			"status", status,
			"duration_ms", durationMs,
		)
	} else {
		slog.Debug("fetch",
			"request_id", reqID,
			"op", op,
			"status", status,
			"duration_ms", durationMs,
		)
	}
}
