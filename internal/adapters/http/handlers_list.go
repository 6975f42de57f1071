package web

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"octofit/internal/adapters/http/middleware"
	"octofit/internal/application/projections"
)

// listJSON is the non-HTML variant of every list page.
type listJSON[T any] struct {
	Resource string            `json:"resource"`
	State    projections.State `json:"state"`
	Count    int               `json:"count"`
	Items    []T               `json:"items"`
	Error    string            `json:"error,omitempty"`
}

// handleList serves one list page. Browsers get the streamed HTML page;
// other clients get JSON, with 502 when the upstream fetch failed.
func handleList[T any](h *handlers, view projections.ListView[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if isHTMLRequest(r) {
			streamList(h, w, r, view)
			return
		}

		result := projections.QueryListResource(r.Context(), view, projections.ListResourceDeps{Fetcher: h.deps.Fetcher})
		body := listJSON[T]{
			Resource: view.Resource.Name,
			State:    result.State,
			Count:    result.Count(),
			Items:    result.Items,
			Error:    result.Error,
		}
		if body.Items == nil {
			body.Items = []T{}
		}
		status := http.StatusOK
		if result.State == projections.StateFailed {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, body)
	}
}

// streamList writes the page head and loading indicator, flushes, then runs
// the fetch and appends the outcome. The outcome fragment hides the indicator.
// PRE: the request accepts HTML
// POST: exactly one upstream fetch; the body ends with page_close unless the client left
func streamList[T any](h *handlers, w http.ResponseWriter, r *http.Request, view projections.ListView[T]) {
	res := view.Resource
	reqID, _ := middleware.RequestIDFromContext(r.Context())

	var head bytes.Buffer
	if err := h.tpl.ExecuteTemplate(&head, "page_open", newPage(res.Title)); err != nil {
		internalError(w, r, err)
		return
	}
	if err := h.tpl.ExecuteTemplate(&head, "list_loading", res); err != nil {
		internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Accel-Buffering", "no")
	w.Write(head.Bytes())
	if err := http.NewResponseController(w).Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		slog.Debug("flush_failed", "request_id", reqID, "resource", res.Name, "error", err)
	}

	result := projections.QueryListResource(r.Context(), view, projections.ListResourceDeps{Fetcher: h.deps.Fetcher})
	if r.Context().Err() != nil {
		return
	}

	body := res.Name
	if result.State == projections.StateFailed {
		body = "list_error"
	}
	for _, step := range []struct {
		name string
		data any
	}{
		{body, result},
		{"list_done", res},
		{"page_close", nil},
	} {
		// Headers are gone by now; all that is left is to log and stop.
		if err := h.tpl.ExecuteTemplate(w, step.name, step.data); err != nil {
			slog.Error("render_failed", "request_id", reqID, "resource", res.Name, "template", step.name, "error", err)
			return
		}
	}
}
