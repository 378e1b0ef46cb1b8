package engine

import (
	"fmt"
	"time"
)

// Move shifts the player one cell in the given direction without any bounds
// or obstacle checks; call Board.IsValidMove first. An unrecognized direction
// leaves the position unchanged and returns ErrUnknownDirection.
func (p *Player) Move(d Direction) error {
	next, ok := p.pos.Step(d)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, rune(d))
	}
	p.pos = next
	return nil
}

// InBounds reports whether pos lies on the board
func (b *Board) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < BoardSize && pos.Y >= 0 && pos.Y < BoardSize
}

// CanMoveTo checks if a player may stand on pos
func (b *Board) CanMoveTo(pos Position) bool {
	if !b.InBounds(pos) {
		return false
	}
	// Only obstacles block; gems are collected on arrival
	return b.grid[pos.Y][pos.X] != Obstacle
}

// IsValidMove checks whether the player may move one cell in direction d from
// their current position.
func (b *Board) IsValidMove(p *Player, d Direction) bool {
	next, ok := p.pos.Step(d)
	if !ok {
		return false
	}
	return b.CanMoveTo(next)
}

// CollectGem picks up the gem under the player, if any. The cell becomes
// empty so a gem can only be collected once.
func (b *Board) CollectGem(p *Player) bool {
	pos := p.pos
	if !b.InBounds(pos) || b.grid[pos.Y][pos.X] != Gem {
		return false
	}
	p.gemCount++
	b.grid[pos.Y][pos.X] = Empty
	return true
}

// addMoveToHistory records an attempt in the game's move history
func (g *Game) addMoveToHistory(player string, d Direction, from, to Position, success, gem bool) {
	g.history = append(g.history, MoveHistoryEntry{
		Player:       player,
		Action:       d.String(),
		FromPosition: from,
		ToPosition:   to,
		GemCollected: gem,
		Timestamp:    time.Now().Unix(),
		Success:      success,
		MoveNumber:   len(g.history) + 1,
	})
}
