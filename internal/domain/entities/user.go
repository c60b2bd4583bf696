package entities

import (
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
)

const (
	UserNameMaxLength  = 100
	UserEmailMaxLength = 254
	// bcrypt ignores input past 72 bytes, longer passwords are rejected
	UserPasswordMaxBytes = 72
)

// User represents a user entity. TeamID is a soft reference: it may be null or
// point at a team that no longer exists.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	TeamID    null.Uint `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserInput is the write payload for users. Password is write-only.
type UserInput struct {
	Name     Field[string] `json:"name"`
	Email    Field[string] `json:"email"`
	Password Field[string] `json:"password"`
	TeamID   Field[uint]   `json:"team_id"`
}

func (in *UserInput) UnmarshalJSON(data []byte) error {
	return decodeObject(data, map[string]fieldDecoder{
		"name":     &in.Name,
		"email":    &in.Email,
		"password": &in.Password,
		"team_id":  &in.TeamID,
	})
}

// Validate checks the payload. partial skips required checks for absent fields.
func (in *UserInput) Validate(partial bool) error {
	c := newChecker(partial)
	if required(c, "name", in.Name) && c.notBlank("name", in.Name.Value) {
		c.maxLength("name", in.Name.Value, UserNameMaxLength)
	}
	if required(c, "email", in.Email) && c.notBlank("email", in.Email.Value) {
		c.email("email", in.Email.Value)
		c.maxLength("email", in.Email.Value, UserEmailMaxLength)
	}
	if notNull(c, "password", in.Password) && c.notBlank("password", in.Password.Value) {
		c.maxBytes("password", in.Password.Value, UserPasswordMaxBytes)
	}
	return c.err()
}

// ApplyTo merges the supplied fields onto u. Omitted fields keep their stored
// value. The password is left to the caller, which stores a hash.
func (in *UserInput) ApplyTo(u *User) {
	if in.Name.Present() {
		u.Name = strings.TrimSpace(in.Name.Value)
	}
	if in.Email.Present() {
		u.Email = strings.TrimSpace(in.Email.Value)
	}
	if in.TeamID.Set {
		u.TeamID = nullUint(in.TeamID)
	}
}
