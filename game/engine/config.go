package engine

import (
	"fmt"
	"strings"
)

// Layout runes
const (
	LayoutEmpty    = '.'
	LayoutObstacle = 'O'
	LayoutGem      = 'G'
)

// Messages holds the console text shown to the players. Format verbs are
// checked by ValidateGameConfig.
type Messages struct {
	TurnBanner   string `json:"turn_banner"`   // turn number, player name
	Prompt       string `json:"prompt"`        // no verbs
	GemCollected string `json:"gem_collected"` // player name
	InvalidMove  string `json:"invalid_move"`  // no verbs
	PlayerGems   string `json:"player_gems"`   // player number, gem count
	GameOver     string `json:"game_over"`     // no verbs
	Win          string `json:"win"`           // player number
	Tie          string `json:"tie"`           // no verbs
}

// DefaultMessages returns the stock console text
func DefaultMessages() Messages {
	return Messages{
		TurnBanner:   "Turn %d: Player %s's turn",
		Prompt:       "Enter the direction (U/D/L/R): ",
		GemCollected: "Player %s collected a gem!",
		InvalidMove:  "Invalid move..!",
		PlayerGems:   "Player %d gems: %d",
		GameOver:     "Game over..!",
		Win:          "Player %d wins..!",
		Tie:          "It's a tie..!",
	}
}

// WithDefaults returns m with every empty message replaced by its default
func (m Messages) WithDefaults() Messages {
	def := DefaultMessages()
	fill := func(s *string, d string) {
		if *s == "" {
			*s = d
		}
	}
	fill(&m.TurnBanner, def.TurnBanner)
	fill(&m.Prompt, def.Prompt)
	fill(&m.GemCollected, def.GemCollected)
	fill(&m.InvalidMove, def.InvalidMove)
	fill(&m.PlayerGems, def.PlayerGems)
	fill(&m.GameOver, def.GameOver)
	fill(&m.Win, def.Win)
	fill(&m.Tie, def.Tie)
	return m
}

// GameConfig represents a game configuration loaded from JSON
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Seed drives board generation; 0 picks a random seed
	Seed uint64 `json:"seed,omitempty"`
	// Layout fixes the board instead of generating it
	Layout   []string `json:"layout,omitempty"`
	Messages Messages `json:"messages"`
}

// DefaultGameConfig returns the built-in configuration: a random board and
// the stock messages.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:        "default",
		Description: "Random 6x6 board with 5 obstacles and 10 gems",
		Messages:    DefaultMessages(),
	}
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if config.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}

	if len(config.Layout) > 0 {
		if _, err := ParseLayout(config.Layout); err != nil {
			return err
		}
	}

	checks := []struct {
		key, value, verbs string
	}{
		{"turn_banner", config.Messages.TurnBanner, "ds"},
		{"prompt", config.Messages.Prompt, ""},
		{"gem_collected", config.Messages.GemCollected, "s"},
		{"invalid_move", config.Messages.InvalidMove, ""},
		{"player_gems", config.Messages.PlayerGems, "dd"},
		{"game_over", config.Messages.GameOver, ""},
		{"win", config.Messages.Win, "d"},
		{"tie", config.Messages.Tie, ""},
	}
	for _, c := range checks {
		if c.value == "" {
			return fmt.Errorf("%w: messages.%s is required", ErrInvalidConfig, c.key)
		}
		if got := formatVerbs(c.value); got != c.verbs {
			return fmt.Errorf("%w: messages.%s must use verbs %q, got %q", ErrInvalidConfig, c.key, c.verbs, got)
		}
	}

	return nil
}

// formatVerbs returns the printf verbs of s in order, ignoring "%%"
func formatVerbs(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s)-1; i++ {
		if s[i] != '%' {
			continue
		}
		i++
		if s[i] != '%' {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// ParseLayout builds a board from BoardSize rows of BoardSize runes:
// '.' or '-' for empty, 'O' for an obstacle and 'G' for a gem. Player start
// cells must be empty.
func ParseLayout(layout []string) (*Board, error) {
	if len(layout) != BoardSize {
		return nil, fmt.Errorf("%w: layout must have %d rows, got %d", ErrInvalidConfig, BoardSize, len(layout))
	}

	b := newEmptyBoard()
	for y, row := range layout {
		if len(row) != BoardSize {
			return nil, fmt.Errorf("%w: row %d must have %d characters, got %d", ErrInvalidConfig, y+1, BoardSize, len(row))
		}
		for x, char := range row {
			switch char {
			case LayoutEmpty, '-':
			case LayoutObstacle, LayoutGem:
				pos := Position{X: x, Y: y}
				if isStart(pos) {
					return nil, fmt.Errorf("%w: start cell (%d,%d) must be empty", ErrInvalidConfig, x, y)
				}
				if char == LayoutObstacle {
					b.grid[y][x] = Obstacle
				} else {
					b.grid[y][x] = Gem
				}
			default:
				return nil, fmt.Errorf("%w: invalid character '%c' at row %d, col %d", ErrInvalidConfig, char, y+1, x+1)
			}
		}
	}
	return b, nil
}
