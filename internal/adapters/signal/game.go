package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/saveliev/arena/internal/core"
)

// The hot path. State blobs are relayed as-is to everyone but the sender,
// wrapped in a one-element players array; no registry, no locks.
func (ctl *Controller) handleUpdate(sid core.SessionID, data json.RawMessage) {
	ctl.broadcastExcept(sid, outMsg{Type: "players", Data: [1]json.RawMessage{data}})
}

// Chat is echoed to everyone, sender included. The relay never reads it.
func (ctl *Controller) handleChat(data json.RawMessage) {
	ctl.broadcastAll(outMsg{Type: "chat", Data: data})
}

// handleCollision reads the single routing field it needs and notifies the
// killed session. The rest of the payload stays opaque.
func (ctl *Controller) handleCollision(conn core.SignalConnection, data []byte) {
	var p struct {
		Killed string `json:"killed"`
	}
	if err := json.Unmarshal(data, &p); err != nil || p.Killed == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad collision payload")
		ctl.sendError(conn, "error", "bad_payload")
		return
	}

	if f, ok := ctl.marshal(outMsg{Type: "died"}); ok {
		if !ctl.Orch.Unicast(core.SessionID(p.Killed), f) {
			log.Debug().Str("module", "signal").Str("killed", p.Killed).Msg("collision target not connected")
		}
	}
}
