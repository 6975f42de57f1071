package browser_test

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"octofit/internal/adapters/apiclient"
	web "octofit/internal/adapters/http"
	"octofit/internal/adapters/http/perf"
)

// fixtures are the upstream bodies served for /api/<name>/.
var fixtures = map[string]string{
	"users": `[{"id":1,"username":"amelia","email":"amelia@octofit.dev","first_name":"Amelia","last_name":"Earhart","team":"Blue"},
		{"id":2,"username":"bruce","email":"bruce@octofit.dev","first_name":"Bruce","last_name":"Banner","team":"Green"}]`,
	"activities": `{"results":[{"id":1,"user":"amelia","activity_type":"Running","duration":30,"calories_burned":300,"distance":5,"date":"2024-03-05"}]}`,
	"teams":      `[{"id":1,"name":"Blue","description":"Sky runners","members":["amelia"]}]`,
	"leaderboard": `[{"id":1,"user_name":"amelia","total_points":500,"total_activities":12},
		{"id":2,"user_name":"bruce","total_points":300,"total_activities":9},
		{"id":3,"user_name":"carol","total_points":100,"total_activities":4},
		{"id":4,"user_name":"dave","total_points":10,"total_activities":1}]`,
	"workouts": `[]`,
}

// testApp holds the running dashboard, its fake upstream, and Playwright handles.
type testApp struct {
	BaseURL   string
	Upstream  *httptest.Server
	Server    *http.Server
	Collector *perf.Collector
	PW        *playwright.Playwright
	Browser   playwright.Browser
}

// newTestApp starts a dashboard on a free port against a fake upstream.
// When failStatus is non-zero every upstream call answers with it.
func newTestApp(t *testing.T, failStatus int) *testApp {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failStatus != 0 {
			http.Error(w, `{"detail":"unavailable"}`, failStatus)
			return
		}
		name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/"), "/")
		body, ok := fixtures[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	ctx, cancel := context.WithCancel(context.Background())
	collector := perf.NewCollector(perf.DefaultRingSize)
	handler, err := web.NewMux(ctx, web.Deps{
		Fetcher:       apiclient.New(upstream.URL, 5*time.Second, collector),
		Collector:     collector,
		PerfDashboard: true,
		StaticDir:     filepath.Join(findProjectRoot(t), "static"),
		APIBaseURL:    upstream.URL,
		CSRFKey:       []byte("browser-test-csrf-key-32-bytes!!"),
		TrustedOrigins: []string{
			fmt.Sprintf("127.0.0.1:%d", port),
			fmt.Sprintf("localhost:%d", port),
		},
		RatePerSecond: 1000,
		RateBurst:     1000,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to build handler: %v", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: handler,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/healthz")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL:   baseURL,
		Upstream:  upstream,
		Server:    srv,
		Collector: collector,
		PW:        pw,
		Browser:   browser,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		upstream.Close()
		cancel()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// open navigates to path and fails the test on error.
func (a *testApp) open(t *testing.T, page playwright.Page, path string) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + path); err != nil {
		t.Fatalf("failed to navigate to %s: %v", path, err)
	}
}

func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
}

// findProjectRoot walks up from the working directory to find the project root (contains go.mod).
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (go.mod) from working directory")
		}
		dir = parent
	}
}
