// Package uuid generates identifiers for persisted records and requests.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string, suitable as a primary key.
// It falls back to a random UUIDv4 if the clock-sequence source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// NewRequestID returns a random identifier for correlating log lines of one request.
func NewRequestID() string {
	return googleuuid.NewString()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
