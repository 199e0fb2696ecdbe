package core

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/saveliev/arena/internal/domain"
)

// RoomStore is the single authority over rooms and their membership.
// All state lives in process memory and is lost on restart.
type RoomStore struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]*domain.Room
}

func NewRoomStore() *RoomStore {
	return &RoomStore{rooms: make(map[domain.RoomID]*domain.Room)}
}

// Create registers a new room with the creator as its first player.
// Room names are unique among live rooms, exact case-sensitive match.
// The returned room is a snapshot, safe to serialize without the lock.
func (s *RoomStore) Create(name domain.RoomName, limit int, sid SessionID, playerName string) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.Name == name {
			return nil, domain.ErrNameTaken
		}
	}

	room := &domain.Room{
		ID:          domain.RoomID(uuid.NewString()),
		Name:        name,
		PlayerLimit: limit,
		Players:     make(map[string]*domain.Player),
		Foods:       make([]json.RawMessage, 0),
	}
	room.Players[string(sid)] = domain.NewPlayer(string(sid), playerName)
	s.rooms[room.ID] = room

	log.Info().Str("module", "core.rooms").Str("room_id", string(room.ID)).Str("name", string(name)).Int("limit", limit).Str("sid", string(sid)).Msg("room created")
	return snapshot(room), nil
}

// Join adds a session to an existing room, enforcing capacity.
func (s *RoomStore) Join(id domain.RoomID, sid SessionID, playerName string) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	if len(room.Players) >= room.PlayerLimit {
		return nil, domain.ErrRoomFull
	}

	room.Players[string(sid)] = domain.NewPlayer(string(sid), playerName)

	log.Info().Str("module", "core.rooms").Str("room_id", string(id)).Str("sid", string(sid)).Int("players", len(room.Players)).Msg("player joined")
	return snapshot(room), nil
}

// List enumerates every live room. No filtering, no pagination.
func (s *RoomStore) List() []RoomSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RoomSummary, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, RoomSummary{
			ID:          r.ID,
			Name:        r.Name,
			PlayerCount: len(r.Players),
			PlayerLimit: r.PlayerLimit,
		})
	}
	return out
}

// MemberIDs returns the sessions currently joined to a room.
// A missing room yields nil.
func (s *RoomStore) MemberIDs(id domain.RoomID) []SessionID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil
	}
	out := make([]SessionID, 0, len(room.Players))
	for sid := range room.Players {
		out = append(out, SessionID(sid))
	}
	return out
}

// RemoveSession scans every room and drops the session's player wherever it
// is a member. A room emptied by the removal is deleted in the same pass.
// Returns every room id touched so the caller can notify each.
func (s *RoomStore) RemoveSession(sid SessionID) []domain.RoomID {
	s.mu.Lock()
	defer s.mu.Unlock()

	var affected []domain.RoomID
	for id, room := range s.rooms {
		if _, ok := room.Players[string(sid)]; !ok {
			continue
		}
		delete(room.Players, string(sid))
		if len(room.Players) == 0 {
			delete(s.rooms, id)
			log.Info().Str("module", "core.rooms").Str("room_id", string(id)).Msg("room emptied, deleted")
		}
		affected = append(affected, id)
	}
	if len(affected) > 0 {
		log.Info().Str("module", "core.rooms").Str("sid", string(sid)).Int("rooms", len(affected)).Msg("session removed")
	}
	return affected
}

// Len reports the number of live rooms.
func (s *RoomStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// snapshot deep-copies a room so callers can marshal it after the lock is
// released.
func snapshot(r *domain.Room) *domain.Room {
	players := make(map[string]*domain.Player, len(r.Players))
	for id, p := range r.Players {
		cp := *p
		players[id] = &cp
	}
	foods := make([]json.RawMessage, len(r.Foods))
	copy(foods, r.Foods)
	return &domain.Room{
		ID:          r.ID,
		Name:        r.Name,
		PlayerLimit: r.PlayerLimit,
		Players:     players,
		Foods:       foods,
	}
}
