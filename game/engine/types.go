package engine

// CellType represents what occupies a single grid cell
type CellType string

const (
	Empty    CellType = "empty"
	Obstacle CellType = "obstacle"
	Gem      CellType = "gem"

	// Fixed game constants
	BoardSize     = 6
	ObstacleCount = 5
	GemCount      = 10
	MaxTurns      = 30
)

// Symbol returns the console symbol for the cell type
func (c CellType) Symbol() string {
	switch c {
	case Obstacle:
		return "O"
	case Gem:
		return "G"
	default:
		return "-"
	}
}

// Direction is a single-character move code
type Direction rune

const (
	Up    Direction = 'U'
	Down  Direction = 'D'
	Left  Direction = 'L'
	Right Direction = 'R'
)

// Directions lists every recognized direction in prompt order
var Directions = []Direction{Up, Down, Left, Right}

// ParseDirection converts a key into a Direction. Lowercase keys are accepted;
// the result may still be unrecognized, see Valid.
func ParseDirection(key rune) Direction {
	if key >= 'a' && key <= 'z' {
		key -= 'a' - 'A'
	}
	return Direction(key)
}

// Valid reports whether d is one of Up, Down, Left or Right
func (d Direction) Valid() bool {
	_, _, ok := d.delta()
	return ok
}

func (d Direction) delta() (dx, dy int, ok bool) {
	switch d {
	case Up:
		return 0, -1, true
	case Down:
		return 0, 1, true
	case Left:
		return -1, 0, true
	case Right:
		return 1, 0, true
	}
	return 0, 0, false
}

func (d Direction) String() string {
	return string(d)
}

// Position represents x,y coordinates. X is the column and Y the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the neighbouring position in the given direction.
// It reports false and returns p unchanged for an unrecognized direction.
func (p Position) Step(d Direction) (Position, bool) {
	dx, dy, ok := d.delta()
	if !ok {
		return p, false
	}
	return Position{X: p.X + dx, Y: p.Y + dy}, true
}

// State is the lifecycle stage of a Game
type State int

const (
	NotStarted State = iota
	InProgress
	Over
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Over:
		return "over"
	}
	return "unknown"
}

// MoveResult describes the outcome of a single turn attempt
type MoveResult struct {
	Player       string    `json:"player"`
	Direction    Direction `json:"direction"`
	From         Position  `json:"from"`
	To           Position  `json:"to"`
	Valid        bool      `json:"valid"`
	GemCollected bool      `json:"gem_collected"`
	Turn         int       `json:"turn"`
	GameOver     bool      `json:"game_over"`
}

// MoveHistoryEntry represents a single attempt in the game history
type MoveHistoryEntry struct {
	Player       string   `json:"player"`
	Action       string   `json:"action"`
	FromPosition Position `json:"from_position"`
	ToPosition   Position `json:"to_position"`
	GemCollected bool     `json:"gem_collected"`
	Timestamp    int64    `json:"timestamp"`
	Success      bool     `json:"success"`
	MoveNumber   int      `json:"move_number"`
}

// Result summarizes a finished (or in-progress) game
type Result struct {
	Player1Gems int `json:"player1_gems"`
	Player2Gems int `json:"player2_gems"`
	// Winner is 1 or 2, or 0 for a tie
	Winner int `json:"winner"`
}

// Tie reports whether both players collected the same number of gems
func (r Result) Tie() bool {
	return r.Winner == 0
}
