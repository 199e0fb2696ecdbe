package signal

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/saveliev/arena/internal/core"
	"github.com/saveliev/arena/internal/domain"
)

func (ctl *Controller) broadcastRoom(id domain.RoomID, v any) {
	if f, ok := ctl.marshal(v); ok {
		ctl.Orch.BroadcastRoom(id, f)
	}
}

func (ctl *Controller) handleCreateRoom(
	sid core.SessionID,
	conn core.SignalConnection,
	data []byte,
) {
	if !ctl.Limiter.Allow(sid) {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("createRoom rate limited")
		ctl.sendError(conn, "roomCreationError", "too many create attempts")
		return
	}

	type payload struct {
		RoomName    string `json:"roomName"`
		PlayerLimit int    `json:"playerLimit"`
		PlayerName  string `json:"playerName"`
	}
	var p payload
	if err := json.Unmarshal(data, &p); err != nil || p.PlayerLimit < 1 {
		log.Error().Err(err).Str("module", "signal").Msg("bad createRoom payload")
		ctl.sendError(conn, "error", "bad_payload")
		return
	}

	room, err := ctl.Orch.CreateRoom(sid, domain.RoomName(p.RoomName), p.PlayerLimit, p.PlayerName)
	if err != nil {
		ctl.sendError(conn, "roomCreationError", err.Error())
		return
	}

	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room_id", string(room.ID)).Msg("room created")
	ctl.sendJSON(conn, outMsg{Type: "roomCreated", Data: room})
	ctl.broadcastAll(outMsg{Type: "roomsList", Data: ctl.Orch.ListRooms()})
}

func (ctl *Controller) handleGetRooms(conn core.SignalConnection) {
	ctl.sendJSON(conn, outMsg{Type: "roomsList", Data: ctl.Orch.ListRooms()})
}

func (ctl *Controller) handleJoinRoom(
	sid core.SessionID,
	conn core.SignalConnection,
	data []byte,
) {
	type payload struct {
		RoomID     string `json:"roomId"`
		PlayerName string `json:"playerName"`
	}
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad joinRoom payload")
		ctl.sendError(conn, "error", "bad_payload")
		return
	}

	room, err := ctl.Orch.JoinRoom(sid, domain.RoomID(p.RoomID), p.PlayerName)
	if err != nil {
		if !errors.Is(err, domain.ErrRoomNotFound) && !errors.Is(err, domain.ErrRoomFull) {
			log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("joinRoom failed")
		}
		ctl.sendError(conn, "roomError", err.Error())
		return
	}

	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room_id", string(room.ID)).Msg("joined room")
	ctl.sendJSON(conn, outMsg{Type: "roomJoined", Data: room})
	ctl.broadcastRoom(room.ID, outMsg{Type: "playerJoined", Data: map[string]string{"id": string(sid), "name": p.PlayerName}})
	ctl.broadcastAll(outMsg{Type: "roomsList", Data: ctl.Orch.ListRooms()})
}

// handleDisconnect runs once per connection, after the read loop exits.
// Rooms emptied by the removal are already gone, so their group broadcast
// reaches nobody, which is the intended outcome.
func (ctl *Controller) handleDisconnect(sid core.SessionID) {
	affected := ctl.Orch.Disconnect(sid)
	for _, roomID := range affected {
		ctl.broadcastRoom(roomID, outMsg{Type: "playerLeft", Data: map[string]string{"id": string(sid)}})
	}
	if len(affected) > 0 {
		ctl.broadcastAll(outMsg{Type: "roomsList", Data: ctl.Orch.ListRooms()})
	}
}
