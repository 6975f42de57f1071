package team_test

import (
	"encoding/json"
	"testing"

	"octofit/internal/domain/resource"
	"octofit/internal/domain/team"
)

// TestFromRecord tests placeholder handling for team cards.
func TestFromRecord(t *testing.T) {
	tests := []struct {
		name   string
		record resource.Record
		want   team.Card
	}{
		{
			name: "full record",
			record: resource.Record{
				"_id": "t1", "name": "Team Marvel", "description": "Avengers assemble",
				"member_count": json.Number("4"), "created_at": "2024-01-15T09:30:00Z",
			},
			want: team.Card{
				Key: "t1", Name: "Team Marvel", Description: "Avengers assemble",
				Members: "4", Created: "1/15/2024",
			},
		},
		{
			name:   "empty record",
			record: resource.Record{},
			want: team.Card{
				Name: "Unnamed Team", Description: "No description available",
				Members: "0", Created: "N/A",
			},
		},
		{
			name:   "zero members and blank name",
			record: resource.Record{"name": "", "member_count": json.Number("0")},
			want: team.Card{
				Name: "Unnamed Team", Description: "No description available",
				Members: "0", Created: "N/A",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := team.FromRecord(tt.record); got != tt.want {
				t.Errorf("FromRecord() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
