package activity

import "octofit/internal/domain/resource"

// DefaultIcon is used for activity types without a dedicated icon.
const DefaultIcon = "💪"

// Icons maps known activity types to their emoji.
var Icons = map[string]string{
	"Running":  "🏃",
	"Cycling":  "🚴",
	"Swimming": "🏊",
	"Walking":  "🚶",
	"Yoga":     "🧘",
	"Gym":      "🏋️",
}

// Row is one line of the activities table.
type Row struct {
	Key      string `json:"key"`
	User     string `json:"user"`
	Icon     string `json:"icon"`
	Type     string `json:"type"`
	Duration string `json:"duration"` // minutes
	Distance string `json:"distance"` // km
	Calories string `json:"calories"`
	Date     string `json:"date"`
}

// Icon returns the emoji for an activity type.
func Icon(activityType string) string {
	if icon, ok := Icons[activityType]; ok {
		return icon
	}
	return DefaultIcon
}

// FromRecord builds a table row, applying placeholders for missing fields.
// PRE: none (r may be empty)
// POST: every display field is non-empty
func FromRecord(r resource.Record) Row {
	activityType, _ := resource.Display(r["activity_type"])
	return Row{
		Key:      r.Key(),
		User:     r.Text(resource.NotAvailable, "user_name", "user"),
		Icon:     Icon(activityType),
		Type:     r.Text(resource.NotAvailable, "activity_type"),
		Duration: r.Count("duration"),
		Distance: r.Count("distance"),
		Calories: r.Count("calories_burned", "calories"),
		Date:     r.Date("date"),
	}
}
