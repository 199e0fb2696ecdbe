package domain

// Player is a membership record inside one room, not a global identity.
// ID equals the owning session id. Score belongs to game logic upstream;
// the relay only initializes it.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// NewPlayer avoids raw literals in adapters and keeps construction obvious.
func NewPlayer(id, name string) *Player {
	return &Player{ID: id, Name: name}
}
