package core

import "github.com/saveliev/arena/internal/domain"

// Frame is a raw serialized payload shipped over the wire.
type Frame []byte

// SessionID identifies one live client connection, stable for that
// connection's lifetime.
type SessionID string

// SignalConnection abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// RoomSummary is the read-only listing view of a room (no membership
// details, no transport fields).
type RoomSummary struct {
	ID          domain.RoomID   `json:"id"`
	Name        domain.RoomName `json:"name"`
	PlayerCount int             `json:"playerCount"`
	PlayerLimit int             `json:"playerLimit"`
}
