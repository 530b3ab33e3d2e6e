package core

import "github.com/dkeye/Duet/internal/domain"

// Frame is an encoded signaling payload.
type Frame []byte

type SessionID string

// SignalConnection abstracts for a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// PresenceDTO is the read-only view of one online user for the
// users_list broadcast (no transport fields).
type PresenceDTO struct {
	ID       domain.UserID `json:"id"`
	Username string        `json:"username"`
	InCall   bool          `json:"inCall"`
}
