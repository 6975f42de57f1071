package web

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"octofit/internal/adapters/http/middleware"
)

// pageData is what page_open needs on every page.
type pageData struct {
	Title string
	Nav   []Route
}

func newPage(title string) pageData {
	return pageData{Title: title, Nav: Routes}
}

// feature is one card on the welcome page.
type feature struct {
	Title string
	Text  string
	Path  string
}

var welcomeFeatures = []feature{
	{Title: "👥 Users", Text: "View all registered users", Path: "/users"},
	{Title: "🏃 Activities", Text: "Track fitness activities", Path: "/activities"},
	{Title: "🤝 Teams", Text: "Join and manage teams", Path: "/teams"},
	{Title: "🏆 Leaderboard", Text: "See top performers", Path: "/leaderboard"},
}

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	reqID, _ := middleware.RequestIDFromContext(r.Context())
	slog.Error("internal_error", "request_id", reqID, "path", r.URL.Path, "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("json_encode_failed", "error", err)
	}
}

// renderPage executes the named body between page_open and page_close.
// Output is buffered so a template error still yields a clean 500.
func (h *handlers) renderPage(w http.ResponseWriter, r *http.Request, title, name string, data any) {
	var buf bytes.Buffer
	if err := h.tpl.ExecuteTemplate(&buf, "page_open", newPage(title)); err != nil {
		internalError(w, r, err)
		return
	}
	if err := h.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		internalError(w, r, err)
		return
	}
	if err := h.tpl.ExecuteTemplate(&buf, "page_close", nil); err != nil {
		internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleWelcome handles GET /
func (h *handlers) handleWelcome(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "Home", "welcome", map[string]any{
		"Intro":    h.welcome,
		"Features": welcomeFeatures,
	})
}

// handleHealthz handles GET /healthz
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
