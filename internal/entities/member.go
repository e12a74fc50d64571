// Package entities contains core business entities.
package entities

import (
	"fmt"
	"time"
)

// Member is a domain representation of a person in the roster.
// The identifier is assigned by the chat gateway and never changes;
// username and first name are mutable by admin rename.
type Member struct {
	ID        int64
	Username  string
	FirstName string
	JoinedAt  time.Time
}

// DisplayName returns the handle when present, the first name otherwise.
func (m Member) DisplayName() string {
	if m.Username != "" {
		return fmt.Sprintf("@%s", m.Username)
	}
	return m.FirstName
}
