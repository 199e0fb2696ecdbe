package app

import "github.com/saveliev/arena/internal/core"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	MarkSlow
	KickSession
	DropFrame
)

// Policy decides what happens to a session whose send buffer is full.
// Broadcasts are best-effort; the policy only shapes the aftermath.
type Policy interface {
	OnBackpressure(sid core.SessionID) BackpressureAction
}

type SimplePolicy struct{}

func (SimplePolicy) OnBackpressure(sid core.SessionID) BackpressureAction {
	return KickSession
}
