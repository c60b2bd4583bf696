package utils

import (
	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

// NewRequestID returns a time-ordered id for correlating a request's log lines.
func NewRequestID() string {
	id, err := newUUIDv7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
