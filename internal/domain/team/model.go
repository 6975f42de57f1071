package team

import "octofit/internal/domain/resource"

// Placeholders for team cards.
const (
	Unnamed       = "Unnamed Team"
	NoDescription = "No description available"
)

// Card is one team card in the grid.
type Card struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Members     string `json:"members"`
	Created     string `json:"created"`
}

// FromRecord builds a card, applying placeholders for missing fields.
func FromRecord(r resource.Record) Card {
	return Card{
		Key:         r.Key(),
		Name:        r.Text(Unnamed, "name"),
		Description: r.Text(NoDescription, "description"),
		Members:     r.Count("member_count"),
		Created:     r.Date("created_at"),
	}
}
