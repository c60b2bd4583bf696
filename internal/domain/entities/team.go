package entities

import (
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
)

// TeamNameMaxLength bounds Team.Name.
const TeamNameMaxLength = 100

// Team groups users competing together.
type Team struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TeamInput is the write payload for teams.
type TeamInput struct {
	Name        Field[string] `json:"name"`
	Description Field[string] `json:"description"`
}

func (in *TeamInput) UnmarshalJSON(data []byte) error {
	return decodeObject(data, map[string]fieldDecoder{
		"name":        &in.Name,
		"description": &in.Description,
	})
}

// Validate checks the payload. partial skips required checks for absent fields.
func (in *TeamInput) Validate(partial bool) error {
	c := newChecker(partial)
	if required(c, "name", in.Name) && c.notBlank("name", in.Name.Value) {
		c.maxLength("name", in.Name.Value, TeamNameMaxLength)
	}
	return c.err()
}

// ApplyTo copies every supplied field onto t.
func (in *TeamInput) ApplyTo(t *Team) {
	if in.Name.Present() {
		t.Name = strings.TrimSpace(in.Name.Value)
	}
	if in.Description.Set {
		t.Description = trimmedString(in.Description)
	}
}
