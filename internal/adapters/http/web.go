package web

import (
	"context"
	"fmt"
	"html/template"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"octofit/internal/adapters/http/middleware"
	"octofit/internal/adapters/http/perf"
	"octofit/internal/application/projections"
	"octofit/internal/domain/resource"
)

// Route is one entry of the navigation bar.
type Route struct {
	Path     string
	Label    string
	Resource resource.Resource
}

// Routes is the navigation table, in display order.
var Routes = buildRoutes(resource.All)

func buildRoutes(all []resource.Resource) []Route {
	routes := make([]Route, len(all))
	for i, res := range all {
		routes[i] = Route{Path: res.Path(), Label: res.Label, Resource: res}
	}
	return routes
}

// Deps holds everything NewMux needs to serve the dashboard.
type Deps struct {
	Fetcher        projections.CollectionFetcher
	Collector      *perf.Collector // nil disables timing capture and the perf page
	PerfDashboard  bool
	StaticDir      string
	APIBaseURL     string // shown on the perf page
	CSRFKey        []byte
	SecureCookies  bool
	TrustedOrigins []string
	CORSOrigins    []string
	RatePerSecond  float64
	RateBurst      int
}

// handlers carries the parsed templates and dependencies shared by every route.
type handlers struct {
	deps    Deps
	tpl     *template.Template
	welcome template.HTML
}

// NewMux wires HTTP handlers for the dashboard.
// PRE: d.Fetcher is non-nil; d.CSRFKey is 32 bytes
// POST: Returns the fully wrapped handler; the rate limiter stops when ctx is done
func NewMux(ctx context.Context, d Deps) (http.Handler, error) {
	tpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	welcome, err := renderMarkdown(welcomeMarkdown)
	if err != nil {
		return nil, fmt.Errorf("render welcome copy: %w", err)
	}
	h := &handlers{deps: d, tpl: tpl, welcome: welcome}

	mux := http.NewServeMux()
	if d.StaticDir != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(d.StaticDir))))
	}
	mux.HandleFunc("GET /{$}", h.handleWelcome)
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET "+projections.UserList.Resource.Path(), handleList(h, projections.UserList))
	mux.HandleFunc("GET "+projections.ActivityList.Resource.Path(), handleList(h, projections.ActivityList))
	mux.HandleFunc("GET "+projections.TeamList.Resource.Path(), handleList(h, projections.TeamList))
	mux.HandleFunc("GET "+projections.LeaderboardList.Resource.Path(), handleList(h, projections.LeaderboardList))
	mux.HandleFunc("GET "+projections.WorkoutList.Resource.Path(), handleList(h, projections.WorkoutList))

	if d.PerfDashboard && d.Collector != nil {
		csrf := middleware.CSRF(d.CSRFKey, middleware.CSRFOptions{
			Secure:         d.SecureCookies,
			TrustedOrigins: d.TrustedOrigins,
		})
		mux.Handle("GET /admin/perf", csrf(http.HandlerFunc(h.handlePerf)))
		mux.Handle("POST /admin/perf/reset", csrf(http.HandlerFunc(h.handlePerfReset)))
	}

	limiter := middleware.NewRateLimiter(d.RatePerSecond, d.RateBurst)
	go func() {
		<-ctx.Done()
		limiter.Close()
	}()

	// Timing -> RateLimit -> CORS -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CORS(d.CORSOrigins),
		middleware.RateLimit(limiter),
		middleware.Timing(d.Collector),
	), nil
}
