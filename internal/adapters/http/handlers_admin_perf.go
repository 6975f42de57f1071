package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/csrf"

	"octofit/internal/adapters/http/middleware"
)

const (
	defaultPerfWindow = time.Hour
	perfTopN          = 10
)

// handlePerf handles GET /admin/perf
// An optional ?window= (Go duration) narrows the snapshot; the default is one hour.
func (h *handlers) handlePerf(w http.ResponseWriter, r *http.Request) {
	window := defaultPerfWindow
	if v := r.URL.Query().Get("window"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			http.Error(w, "Invalid window", http.StatusBadRequest)
			return
		}
		window = d
	}

	snap := h.deps.Collector.Snapshot(time.Now().Add(-window), perfTopN)

	if !isHTMLRequest(r) {
		writeJSON(w, http.StatusOK, snap)
		return
	}
	h.renderPage(w, r, "Performance", "perf", map[string]any{
		"Snap":       snap,
		"Window":     window.String(),
		"APIBaseURL": h.deps.APIBaseURL,
		"CSRFField":  csrf.TemplateField(r),
	})
}

// handlePerfReset handles POST /admin/perf/reset
func (h *handlers) handlePerfReset(w http.ResponseWriter, r *http.Request) {
	h.deps.Collector.Reset()
	reqID, _ := middleware.RequestIDFromContext(r.Context())
	slog.Info("perf_reset", "request_id", reqID)

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/admin/perf", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
