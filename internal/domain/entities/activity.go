package entities

import (
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
)

const ActivityTypeMaxLength = 100

// Activity is one logged workout session. Activities are the history the
// leaderboard is computed from.
type Activity struct {
	ID           uint         `json:"id"`
	UserID       uint         `json:"user_id"`
	ActivityType string       `json:"activity_type"`
	Duration     int          `json:"duration"` // minutes
	Distance     null.Float64 `json:"distance"` // km
	Calories     null.Int     `json:"calories"`
	Date         time.Time    `json:"date"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ActivityInput is the write payload for activities.
type ActivityInput struct {
	UserID       Field[uint]      `json:"user_id"`
	ActivityType Field[string]    `json:"activity_type"`
	Duration     Field[int]       `json:"duration"`
	Distance     Field[float64]   `json:"distance"`
	Calories     Field[int]       `json:"calories"`
	Date         Field[time.Time] `json:"date"`
}

func (in *ActivityInput) UnmarshalJSON(data []byte) error {
	return decodeObject(data, map[string]fieldDecoder{
		"user_id":       &in.UserID,
		"activity_type": &in.ActivityType,
		"duration":      &in.Duration,
		"distance":      &in.Distance,
		"calories":      &in.Calories,
		"date":          &in.Date,
	})
}

// Validate checks the payload. partial skips required checks for absent fields.
func (in *ActivityInput) Validate(partial bool) error {
	c := newChecker(partial)
	required(c, "user_id", in.UserID)
	if required(c, "activity_type", in.ActivityType) && c.notBlank("activity_type", in.ActivityType.Value) {
		c.maxLength("activity_type", in.ActivityType.Value, ActivityTypeMaxLength)
	}
	if required(c, "duration", in.Duration) {
		c.minInt("duration", in.Duration.Value, 0)
	}
	if in.Distance.Present() {
		c.minFloat("distance", in.Distance.Value, 0)
	}
	if in.Calories.Present() {
		c.minInt("calories", in.Calories.Value, 0)
	}
	required(c, "date", in.Date)
	return c.err()
}

// ApplyTo copies every supplied field onto a.
func (in *ActivityInput) ApplyTo(a *Activity) {
	if in.UserID.Present() {
		a.UserID = in.UserID.Value
	}
	if in.ActivityType.Present() {
		a.ActivityType = strings.TrimSpace(in.ActivityType.Value)
	}
	if in.Duration.Present() {
		a.Duration = in.Duration.Value
	}
	if in.Distance.Set {
		a.Distance = nullFloat(in.Distance)
	}
	if in.Calories.Set {
		a.Calories = nullInt(in.Calories)
	}
	if in.Date.Present() {
		a.Date = in.Date.Value.UTC()
	}
}

// Points is the leaderboard score of the activity. Missing calories count as 0.
func (a *Activity) Points() int {
	if !a.Calories.Valid {
		return 0
	}
	return a.Calories.Int
}
