package app

import (
	"github.com/rs/zerolog/log"

	"github.com/saveliev/arena/internal/core"
	"github.com/saveliev/arena/internal/domain"
)

// Orchestrator glues the connection registry to the room store and owns the
// fan-out primitives: unicast, room broadcast, global broadcast. It holds no
// state of its own.
type Orchestrator struct {
	Registry *Registry
	Rooms    *core.RoomStore
	Policy   Policy
}

func (o *Orchestrator) CreateRoom(sid core.SessionID, name domain.RoomName, limit int, playerName string) (*domain.Room, error) {
	room, err := o.Rooms.Create(name, limit, sid, playerName)
	if err != nil {
		log.Info().Str("module", "app.orchestrator").Str("sid", string(sid)).Str("name", string(name)).Err(err).Msg("create room rejected")
		return nil, err
	}
	return room, nil
}

func (o *Orchestrator) JoinRoom(sid core.SessionID, id domain.RoomID, playerName string) (*domain.Room, error) {
	room, err := o.Rooms.Join(id, sid, playerName)
	if err != nil {
		log.Info().Str("module", "app.orchestrator").Str("sid", string(sid)).Str("room_id", string(id)).Err(err).Msg("join rejected")
		return nil, err
	}
	return room, nil
}

func (o *Orchestrator) ListRooms() []core.RoomSummary {
	return o.Rooms.List()
}

// Disconnect removes the session from every room it belongs to and unbinds
// its connection. Returns the rooms touched so the adapter can notify each.
func (o *Orchestrator) Disconnect(sid core.SessionID) []domain.RoomID {
	affected := o.Rooms.RemoveSession(sid)
	o.Registry.Unbind(sid)
	return affected
}

// Unicast delivers one frame to one session. Reports whether the session
// was known.
func (o *Orchestrator) Unicast(sid core.SessionID, f core.Frame) bool {
	conn, ok := o.Registry.Get(sid)
	if !ok {
		return false
	}
	o.send(sid, conn, f)
	return true
}

// BroadcastAll fans a frame out to every connected session.
func (o *Orchestrator) BroadcastAll(f core.Frame) {
	for _, snap := range o.Registry.Snapshot() {
		o.send(snap.SID, snap.Conn, f)
	}
}

// BroadcastExcept fans a frame out to everyone but the sender.
func (o *Orchestrator) BroadcastExcept(from core.SessionID, f core.Frame) {
	for _, snap := range o.Registry.Snapshot() {
		if snap.SID == from {
			continue
		}
		o.send(snap.SID, snap.Conn, f)
	}
}

// BroadcastRoom fans a frame out to every session currently joined to the
// room. Unknown rooms are a no-op.
func (o *Orchestrator) BroadcastRoom(id domain.RoomID, f core.Frame) {
	for _, sid := range o.Rooms.MemberIDs(id) {
		if conn, ok := o.Registry.Get(sid); ok {
			o.send(sid, conn, f)
		}
	}
}

// send is fire-and-forget: a failed TrySend means the session's buffer is
// full or the connection is gone, and the policy decides the aftermath.
func (o *Orchestrator) send(sid core.SessionID, conn core.SignalConnection, f core.Frame) {
	err := conn.TrySend(f)
	if err == nil {
		return
	}
	log.Debug().Str("module", "app.orchestrator").Str("sid", string(sid)).Err(err).Msg("frame dropped")
	if o.Policy == nil {
		return
	}
	switch o.Policy.OnBackpressure(sid) {
	case KickSession:
		log.Warn().Str("module", "app.orchestrator").Str("sid", string(sid)).Msg("kicking slow session")
		o.Registry.Cancel(sid)
	case MarkSlow, DropFrame, NoAction:
	}
}
