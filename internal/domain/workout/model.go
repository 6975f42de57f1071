package workout

import "octofit/internal/domain/resource"

// Placeholders for workout cards.
const (
	Unnamed       = "Unnamed Workout"
	DefaultType   = "General"
	NoDescription = "No description available"
)

// Card is one workout suggestion.
type Card struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Duration    string `json:"duration"` // minutes
	Difficulty  string `json:"difficulty"`
	Calories    string `json:"calories"`
}

// FromRecord builds a card, applying placeholders for missing fields.
// The serializer names (activity_type, difficulty, calories) are read after
// the display names the dashboard has always used.
func FromRecord(r resource.Record) Card {
	return Card{
		Key:         r.Key(),
		Name:        r.Text(Unnamed, "name"),
		Type:        r.Text(DefaultType, "workout_type", "activity_type"),
		Description: r.Text(NoDescription, "description"),
		Duration:    r.Count("duration"),
		Difficulty:  r.Text(resource.NotAvailable, "difficulty_level", "difficulty"),
		Calories:    r.Count("estimated_calories", "calories"),
	}
}
