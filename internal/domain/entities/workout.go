package entities

import (
	"strings"
	"time"
)

const (
	WorkoutNameMaxLength       = 200
	WorkoutDifficultyMaxLength = 50
	WorkoutTypeMaxLength       = 100
)

// Conventional difficulty values. Difficulty is free text and not restricted
// to these.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Workout is a static catalog entry.
type Workout struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Difficulty    string    `json:"difficulty"`
	Duration      int       `json:"duration"`
	WorkoutType   string    `json:"workout_type"`
	TargetMuscles []string  `json:"target_muscles"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// WorkoutInput is the write payload for workouts.
type WorkoutInput struct {
	Name          Field[string]   `json:"name"`
	Description   Field[string]   `json:"description"`
	Difficulty    Field[string]   `json:"difficulty"`
	Duration      Field[int]      `json:"duration"`
	WorkoutType   Field[string]   `json:"workout_type"`
	TargetMuscles Field[[]string] `json:"target_muscles"`
}

func (in *WorkoutInput) UnmarshalJSON(data []byte) error {
	return decodeObject(data, map[string]fieldDecoder{
		"name":           &in.Name,
		"description":    &in.Description,
		"difficulty":     &in.Difficulty,
		"duration":       &in.Duration,
		"workout_type":   &in.WorkoutType,
		"target_muscles": &in.TargetMuscles,
	})
}

// Validate checks the payload. partial skips required checks for absent fields.
func (in *WorkoutInput) Validate(partial bool) error {
	c := newChecker(partial)
	if required(c, "name", in.Name) && c.notBlank("name", in.Name.Value) {
		c.maxLength("name", in.Name.Value, WorkoutNameMaxLength)
	}
	if required(c, "description", in.Description) {
		c.notBlank("description", in.Description.Value)
	}
	if required(c, "difficulty", in.Difficulty) && c.notBlank("difficulty", in.Difficulty.Value) {
		c.maxLength("difficulty", in.Difficulty.Value, WorkoutDifficultyMaxLength)
	}
	if required(c, "duration", in.Duration) {
		c.minInt("duration", in.Duration.Value, 0)
	}
	if required(c, "workout_type", in.WorkoutType) && c.notBlank("workout_type", in.WorkoutType.Value) {
		c.maxLength("workout_type", in.WorkoutType.Value, WorkoutTypeMaxLength)
	}
	notNull(c, "target_muscles", in.TargetMuscles)
	return c.err()
}

// ApplyTo copies every supplied field onto w. Target muscles are stored as
// given, without deduplication or normalisation.
func (in *WorkoutInput) ApplyTo(w *Workout) {
	if in.Name.Present() {
		w.Name = strings.TrimSpace(in.Name.Value)
	}
	if in.Description.Present() {
		w.Description = strings.TrimSpace(in.Description.Value)
	}
	if in.Difficulty.Present() {
		w.Difficulty = strings.TrimSpace(in.Difficulty.Value)
	}
	if in.Duration.Present() {
		w.Duration = in.Duration.Value
	}
	if in.WorkoutType.Present() {
		w.WorkoutType = strings.TrimSpace(in.WorkoutType.Value)
	}
	if in.TargetMuscles.Present() {
		w.TargetMuscles = append([]string{}, in.TargetMuscles.Value...)
	}
	if w.TargetMuscles == nil {
		w.TargetMuscles = []string{}
	}
}
