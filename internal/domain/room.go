// Package domain contains entity without logic, just meta-data
package domain

import (
	"encoding/json"
	"errors"
)

type (
	RoomName string
	RoomID   string
)

// Error strings double as the messages surfaced to clients, so they stay
// human-readable.
var (
	ErrNameTaken    = errors.New("Room name already exists")
	ErrRoomNotFound = errors.New("Room not found")
	ErrRoomFull     = errors.New("Room is full")
)

// Room is a named, capacity-bounded group of live sessions. Players are
// keyed by session id. Foods is opaque game state: the relay stores and
// ships it but never looks inside.
type Room struct {
	ID          RoomID             `json:"id"`
	Name        RoomName           `json:"name"`
	PlayerLimit int                `json:"playerLimit"`
	Players     map[string]*Player `json:"players"`
	Foods       []json.RawMessage  `json:"foods"`
}
