package engine

// Player is one of the two gem hunters. The name is fixed at creation and the
// position tracked here is authoritative; the grid never stores players.
type Player struct {
	name     string
	pos      Position
	gemCount int
}

// NewPlayer creates a player standing at start with no gems
func NewPlayer(name string, start Position) *Player {
	return &Player{name: name, pos: start}
}

// Name returns the player's identifier, e.g. "P1"
func (p *Player) Name() string {
	return p.name
}

// Position returns the player's current position
func (p *Player) Position() Position {
	return p.pos
}

// GemCount returns how many gems the player has collected
func (p *Player) GemCount() int {
	return p.gemCount
}
