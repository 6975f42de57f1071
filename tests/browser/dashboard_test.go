package browser_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestNav_LinksOnEveryPage verifies the navbar reaches every list page from every page.
func TestNav_LinksOnEveryPage(t *testing.T) {
	skipIfShort(t)
	app := newTestApp(t, 0)
	page := app.newPage(t)

	links := []struct{ text, href string }{
		{"Users", "/users"},
		{"Activities", "/activities"},
		{"Teams", "/teams"},
		{"Leaderboard", "/leaderboard"},
		{"Workouts", "/workouts"},
	}
	for _, path := range []string{"/", "/users", "/leaderboard", "/workouts"} {
		app.open(t, page, path)
		nav := page.Locator(".navbar-nav")
		for _, link := range links {
			loc := nav.Locator(fmt.Sprintf("a[href='%s']", link.href))
			if visible, _ := loc.IsVisible(); !visible {
				t.Errorf("%s: nav missing link %s (%s)", path, link.text, link.href)
			}
		}
	}
}

// TestNav_ClickThrough follows a nav link and lands on the list page.
func TestNav_ClickThrough(t *testing.T) {
	skipIfShort(t)
	app := newTestApp(t, 0)
	page := app.newPage(t)
	app.open(t, page, "/")

	if err := page.Locator(".navbar-nav a[href='/teams']").Click(); err != nil {
		t.Fatalf("click teams: %v", err)
	}
	if err := page.WaitForURL(app.BaseURL + "/teams"); err != nil {
		t.Fatalf("did not reach /teams: %v", err)
	}
	if title, _ := page.Title(); title != "Teams | OctoFit Tracker" {
		t.Errorf("title = %q", title)
	}
}

// TestUsers_RowsRenderedAndLoadingHidden checks the fixture rows and that the
// loading indicator is hidden once the list arrives.
func TestUsers_RowsRenderedAndLoadingHidden(t *testing.T) {
	skipIfShort(t)
	app := newTestApp(t, 0)
	page := app.newPage(t)
	app.open(t, page, "/users")

	rows := page.Locator("table tbody tr")
	if n, _ := rows.Count(); n != 2 {
		t.Fatalf("row count = %d, want 2", n)
	}
	first, err := rows.First().InnerText()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"amelia", "amelia@octofit.dev", "Amelia"} {
		if !strings.Contains(first, want) {
			t.Errorf("first row %q missing %q", first, want)
		}
	}
	if visible, _ := page.Locator("#loading-users").IsVisible(); visible {
		t.Error("loading indicator still visible after the list rendered")
	}
}

// TestLeaderboard_MedalsInOrder checks the rank badges for the top three rows.
func TestLeaderboard_MedalsInOrder(t *testing.T) {
	skipIfShort(t)
	app := newTestApp(t, 0)
	page := app.newPage(t)
	app.open(t, page, "/leaderboard")

	badges := page.Locator("table tbody .rank-badge")
	if n, _ := badges.Count(); n != 4 {
		t.Fatalf("badge count = %d, want 4", n)
	}
	for i, want := range []string{"gold", "silver", "bronze", "default"} {
		class, err := badges.Nth(i).GetAttribute("class")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(class, want) {
			t.Errorf("badge %d class = %q, want %q", i, class, want)
		}
	}
	if text, _ := badges.Nth(3).InnerText(); strings.TrimSpace(text) != "4" {
		t.Errorf("fourth badge = %q, want 4", text)
	}
}

// TestWorkouts_EmptyMessage shows the empty state instead of a list.
func TestWorkouts_EmptyMessage(t *testing.T) {
	skipIfShort(t)
	app := newTestApp(t, 0)
	page := app.newPage(t)
	app.open(t, page, "/workouts")

	if visible, _ := page.GetByText("No workout suggestions found").IsVisible(); !visible {
		t.Error("empty message not visible")
	}
}

// TestUpstreamDown_ErrorBanners checks both error styles when the API fails.
func TestUpstreamDown_ErrorBanners(t *testing.T) {
	skipIfShort(t)
	app := newTestApp(t, http.StatusServiceUnavailable)
	page := app.newPage(t)

	app.open(t, page, "/leaderboard")
	alert := page.Locator(".alert-danger")
	if visible, _ := alert.IsVisible(); !visible {
		t.Fatal("leaderboard alert not visible")
	}
	if text, _ := alert.InnerText(); !strings.Contains(text, "Network response was not ok") {
		t.Errorf("alert text = %q", text)
	}

	app.open(t, page, "/users")
	if visible, _ := page.Locator("p.text-danger").IsVisible(); !visible {
		t.Error("users error line not visible")
	}
	if n, _ := page.Locator("table").Count(); n != 0 {
		t.Error("table rendered despite failure")
	}
}

// TestPerf_ResetForm submits the reset form and lands back on the dashboard.
func TestPerf_ResetForm(t *testing.T) {
	skipIfShort(t)
	app := newTestApp(t, 0)
	page := app.newPage(t)

	app.open(t, page, "/users")
	app.open(t, page, "/admin/perf")
	if visible, _ := page.GetByText("Slowest upstream fetches").IsVisible(); !visible {
		t.Fatal("perf page did not render")
	}

	// The POST redirects back to the dashboard; wait for that follow-up GET.
	resp, err := page.ExpectResponse(app.BaseURL+"/admin/perf", func() error {
		return page.Locator("form[action='/admin/perf/reset'] button[type=submit]").Click()
	}, playwright.PageExpectResponseOptions{Timeout: playwright.Float(10000)})
	if err != nil {
		t.Fatalf("reset response: %v", err)
	}
	if resp.Status() != http.StatusOK {
		t.Fatalf("perf page after reset status = %d, want 200", resp.Status())
	}
	if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateLoad,
	}); err != nil {
		t.Fatal(err)
	}
	if visible, _ := page.GetByText("Slowest pages").IsVisible(); !visible {
		t.Error("did not land back on the perf page")
	}
}
