package user

import "octofit/internal/domain/resource"

// Placeholder shown when a user has no team.
const NoTeam = "No Team"

// Row is one line of the users table.
type Row struct {
	Key       string `json:"key"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Team      string `json:"team"`   // team_name, then team
	Joined    string `json:"joined"` // date_joined as a short date
}

// FromRecord builds a table row, applying placeholders for missing fields.
// PRE: none (r may be empty)
// POST: every display field is non-empty
func FromRecord(r resource.Record) Row {
	return Row{
		Key:       r.Key(),
		Username:  r.Text(resource.NotAvailable, "username"),
		Email:     r.Text(resource.NotAvailable, "email"),
		FirstName: r.Text(resource.NotAvailable, "first_name"),
		LastName:  r.Text(resource.NotAvailable, "last_name"),
		Team:      r.Text(NoTeam, "team_name", "team"),
		Joined:    r.Date("date_joined"),
	}
}
