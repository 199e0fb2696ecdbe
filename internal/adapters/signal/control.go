package signal

import "github.com/saveliev/arena/internal/core"

func (ctl *Controller) handlePing(conn core.SignalConnection) {
	ctl.sendJSON(conn, outMsg{Type: "pong"})
}
