package leaderboard

import (
	"strconv"

	"octofit/internal/domain/resource"
)

// Badge classes for the rank column.
const (
	BadgeGold    = "rank-badge gold"
	BadgeSilver  = "rank-badge silver"
	BadgeBronze  = "rank-badge bronze"
	BadgeDefault = "rank-badge default"
)

// Row is one line of the leaderboard table.
// Rank comes from the position in the upstream response; the server's
// ordering is trusted and never re-sorted here.
type Row struct {
	Key        string `json:"key"`
	Rank       int    `json:"rank"`
	Badge      string `json:"badge"`
	RankLabel  string `json:"rank_label"`
	User       string `json:"user"`
	Points     string `json:"points"`
	Activities string `json:"activities"`
	Calories   string `json:"calories"`
	Distance   string `json:"distance"` // km
}

// BadgeClass returns the CSS class for a 1-based rank.
func BadgeClass(rank int) string {
	switch rank {
	case 1:
		return BadgeGold
	case 2:
		return BadgeSilver
	case 3:
		return BadgeBronze
	default:
		return BadgeDefault
	}
}

// RankLabel returns a medal for the podium and "#N" otherwise.
func RankLabel(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "#" + strconv.Itoa(rank)
	}
}

// FromRecord builds the row at zero-based position index.
// PRE: index >= 0
// POST: Rank == index+1
func FromRecord(index int, r resource.Record) Row {
	rank := index + 1
	key := r.Key()
	if key == "" {
		key = strconv.Itoa(index)
	}
	return Row{
		Key:        key,
		Rank:       rank,
		Badge:      BadgeClass(rank),
		RankLabel:  RankLabel(rank),
		User:       r.Text(resource.NotAvailable, "user_name", "user"),
		Points:     r.Count("total_points"),
		Activities: r.Count("total_activities"),
		Calories:   r.Count("total_calories"),
		Distance:   r.Count("total_distance"),
	}
}
