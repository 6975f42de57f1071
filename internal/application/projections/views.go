package projections

import (
	"octofit/internal/domain/activity"
	"octofit/internal/domain/leaderboard"
	"octofit/internal/domain/resource"
	"octofit/internal/domain/team"
	"octofit/internal/domain/user"
	"octofit/internal/domain/workout"
)

// One view per navigation entry.
var (
	UserList        = ListView[user.Row]{Resource: resource.Users, Render: byRecord(user.FromRecord)}
	ActivityList    = ListView[activity.Row]{Resource: resource.Activities, Render: byRecord(activity.FromRecord)}
	TeamList        = ListView[team.Card]{Resource: resource.Teams, Render: byRecord(team.FromRecord)}
	LeaderboardList = ListView[leaderboard.Row]{Resource: resource.Leaderboard, Render: leaderboard.FromRecord}
	WorkoutList     = ListView[workout.Card]{Resource: resource.Workouts, Render: byRecord(workout.FromRecord)}
)

// byRecord adapts a renderer that ignores list position.
func byRecord[T any](render func(resource.Record) T) func(int, resource.Record) T {
	return func(_ int, r resource.Record) T {
		return render(r)
	}
}
