package entities

import (
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
)

const LeaderboardNameMaxLength = 100

// LeaderboardEntry is one user's standing. UserName, TeamID and TeamName are a
// snapshot taken when the aggregator last ran.
type LeaderboardEntry struct {
	ID              uint        `json:"id"`
	UserID          uint        `json:"user_id"`
	UserName        string      `json:"user_name"`
	TeamID          null.Uint   `json:"team_id"`
	TeamName        null.String `json:"team_name"`
	TotalPoints     int         `json:"total_points"`
	TotalActivities int         `json:"total_activities"`
	TotalDuration   int         `json:"total_duration"`
	Rank            null.Int    `json:"rank"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// SameStanding reports whether e and o carry the same computed content,
// ignoring id and timestamps.
func (e *LeaderboardEntry) SameStanding(o *LeaderboardEntry) bool {
	return e.UserID == o.UserID &&
		e.UserName == o.UserName &&
		e.TeamID == o.TeamID &&
		e.TeamName == o.TeamName &&
		e.TotalPoints == o.TotalPoints &&
		e.TotalActivities == o.TotalActivities &&
		e.TotalDuration == o.TotalDuration &&
		e.Rank == o.Rank
}

// LeaderboardInput is the write payload for manual leaderboard edits.
type LeaderboardInput struct {
	UserID          Field[uint]   `json:"user_id"`
	UserName        Field[string] `json:"user_name"`
	TeamID          Field[uint]   `json:"team_id"`
	TeamName        Field[string] `json:"team_name"`
	TotalPoints     Field[int]    `json:"total_points"`
	TotalActivities Field[int]    `json:"total_activities"`
	TotalDuration   Field[int]    `json:"total_duration"`
	Rank            Field[int]    `json:"rank"`
}

func (in *LeaderboardInput) UnmarshalJSON(data []byte) error {
	return decodeObject(data, map[string]fieldDecoder{
		"user_id":          &in.UserID,
		"user_name":        &in.UserName,
		"team_id":          &in.TeamID,
		"team_name":        &in.TeamName,
		"total_points":     &in.TotalPoints,
		"total_activities": &in.TotalActivities,
		"total_duration":   &in.TotalDuration,
		"rank":             &in.Rank,
	})
}

// Validate checks the payload. partial skips required checks for absent fields.
func (in *LeaderboardInput) Validate(partial bool) error {
	c := newChecker(partial)
	required(c, "user_id", in.UserID)
	if required(c, "user_name", in.UserName) && c.notBlank("user_name", in.UserName.Value) {
		c.maxLength("user_name", in.UserName.Value, LeaderboardNameMaxLength)
	}
	if in.TeamName.Present() {
		c.maxLength("team_name", in.TeamName.Value, LeaderboardNameMaxLength)
	}
	if notNull(c, "total_points", in.TotalPoints) {
		c.minInt("total_points", in.TotalPoints.Value, 0)
	}
	if notNull(c, "total_activities", in.TotalActivities) {
		c.minInt("total_activities", in.TotalActivities.Value, 0)
	}
	if notNull(c, "total_duration", in.TotalDuration) {
		c.minInt("total_duration", in.TotalDuration.Value, 0)
	}
	if in.Rank.Present() {
		c.minInt("rank", in.Rank.Value, 1)
	}
	return c.err()
}

// ApplyTo copies every supplied field onto e.
func (in *LeaderboardInput) ApplyTo(e *LeaderboardEntry) {
	if in.UserID.Present() {
		e.UserID = in.UserID.Value
	}
	if in.UserName.Present() {
		e.UserName = strings.TrimSpace(in.UserName.Value)
	}
	if in.TeamID.Set {
		e.TeamID = nullUint(in.TeamID)
	}
	if in.TeamName.Set {
		e.TeamName = trimmedString(in.TeamName)
	}
	if in.TotalPoints.Present() {
		e.TotalPoints = in.TotalPoints.Value
	}
	if in.TotalActivities.Present() {
		e.TotalActivities = in.TotalActivities.Value
	}
	if in.TotalDuration.Present() {
		e.TotalDuration = in.TotalDuration.Value
	}
	if in.Rank.Set {
		e.Rank = nullInt(in.Rank)
	}
}

// ActivityTotals is the per-user aggregate of the activity history.
type ActivityTotals struct {
	UserID          uint
	TotalActivities int
	TotalDuration   int
	TotalPoints     int
}

// RecomputeSummary reports what a leaderboard run changed.
type RecomputeSummary struct {
	Entries   int           `json:"entries"`
	Created   int           `json:"created"`
	Updated   int           `json:"updated"`
	Deleted   int           `json:"deleted"`
	Unchanged int           `json:"unchanged"`
	Duration  time.Duration `json:"duration"`
}

// SeedSummary reports the rows written by a reseed.
type SeedSummary struct {
	Teams       int              `json:"teams"`
	Users       int              `json:"users"`
	Activities  int              `json:"activities"`
	Leaderboard RecomputeSummary `json:"leaderboard"`
	Workouts    int              `json:"workouts"`
}
