package resource

// Layout selects how a collection is rendered.
type Layout string

const (
	LayoutTable Layout = "table"
	LayoutCards Layout = "cards"
)

// Resource describes one tracked collection and how its page presents it.
type Resource struct {
	Name         string // URL segment, also the upstream collection name
	Label        string // navigation label
	Title        string // page heading
	Subtitle     string // optional line under the heading
	LoadingText  string // shown while the fetch is in flight; empty means spinner
	EmptyMessage string
	Layout       Layout
	AlertErrors  bool // render failures as an alert box rather than inline text
}

// Path returns the dashboard route for the resource.
func (r Resource) Path() string {
	return "/" + r.Name
}

// Endpoint returns the upstream API path for the resource, with trailing slash.
func (r Resource) Endpoint() string {
	return "/api/" + r.Name + "/"
}

// Spinner reports whether the loading state uses a spinner instead of text.
func (r Resource) Spinner() bool {
	return r.LoadingText == ""
}

var (
	Users = Resource{
		Name:         "users",
		Label:        "Users",
		Title:        "Users",
		LoadingText:  "Loading users...",
		EmptyMessage: "No users found",
		Layout:       LayoutTable,
	}
	Activities = Resource{
		Name:         "activities",
		Label:        "Activities",
		Title:        "🏃 Activities",
		EmptyMessage: "No activities found",
		Layout:       LayoutTable,
		AlertErrors:  true,
	}
	Teams = Resource{
		Name:         "teams",
		Label:        "Teams",
		Title:        "Teams",
		LoadingText:  "Loading teams...",
		EmptyMessage: "No teams found",
		Layout:       LayoutCards,
	}
	Leaderboard = Resource{
		Name:         "leaderboard",
		Label:        "Leaderboard",
		Title:        "🏆 Leaderboard",
		Subtitle:     "Top performers ranked by total points",
		EmptyMessage: "No leaderboard data found",
		Layout:       LayoutTable,
		AlertErrors:  true,
	}
	Workouts = Resource{
		Name:         "workouts",
		Label:        "Workouts",
		Title:        "Workout Suggestions",
		LoadingText:  "Loading workouts...",
		EmptyMessage: "No workout suggestions found",
		Layout:       LayoutCards,
	}
)

// All lists the resources in navigation order.
var All = []Resource{Users, Activities, Teams, Leaderboard, Workouts}

// Lookup returns the resource with the given name.
func Lookup(name string) (Resource, bool) {
	for _, r := range All {
		if r.Name == name {
			return r, true
		}
	}
	return Resource{}, false
}
