// Package domain contains entity without logic, just meta-data
package domain

// UserID is the transport-assigned connection identifier. It is stable
// for the lifetime of one connection and unrelated to identity across
// reconnects.
type UserID string

type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
}

// NewUser is a tiny helper to avoid ad-hoc struct literals in adapters.
// Empty and duplicate usernames are permitted.
func NewUser(id UserID, username string) *User {
	return &User{ID: id, Username: username}
}
