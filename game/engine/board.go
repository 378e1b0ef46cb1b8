package engine

import (
	"bufio"
	"io"
	"math/rand/v2"
	"strings"
)

// Start cells for the two players
var (
	Player1Start = Position{X: 0, Y: 0}
	Player2Start = Position{X: BoardSize - 1, Y: BoardSize - 1}
)

// Board is the fixed-size grid, indexed [y][x]
type Board struct {
	grid [BoardSize][BoardSize]CellType
}

func newEmptyBoard() *Board {
	b := &Board{}
	for y := range b.grid {
		for x := range b.grid[y] {
			b.grid[y][x] = Empty
		}
	}
	return b
}

// NewBoard generates a board with ObstacleCount obstacles and GemCount gems
// on distinct cells chosen uniformly at random. Player start cells stay empty.
func NewBoard(rng *rand.Rand) *Board {
	b := newEmptyBoard()
	b.place(rng, Obstacle, ObstacleCount)
	b.place(rng, Gem, GemCount)
	return b
}

// NewBoardFromSeed generates the board a game with this seed plays on
func NewBoardFromSeed(seed uint64) *Board {
	return NewBoard(rand.New(rand.NewPCG(seed, seed)))
}

// place puts n cells of type ct on free cells, re-sampling on collision
func (b *Board) place(rng *rand.Rand, ct CellType, n int) {
	for placed := 0; placed < n; {
		pos := Position{X: rng.IntN(BoardSize), Y: rng.IntN(BoardSize)}
		if b.grid[pos.Y][pos.X] != Empty || isStart(pos) {
			continue
		}
		b.grid[pos.Y][pos.X] = ct
		placed++
	}
}

func isStart(pos Position) bool {
	return pos == Player1Start || pos == Player2Start
}

// Cell returns the occupant of pos. Out of bounds positions read as Obstacle.
func (b *Board) Cell(pos Position) CellType {
	if !b.InBounds(pos) {
		return Obstacle
	}
	return b.grid[pos.Y][pos.X]
}

// Count counts the cells of a specific type
func (b *Board) Count(ct CellType) int {
	count := 0
	for _, row := range b.grid {
		for _, cell := range row {
			if cell == ct {
				count++
			}
		}
	}
	return count
}

// Positions returns every position holding ct in row-major order
func (b *Board) Positions(ct CellType) []Position {
	var out []Position
	for y, row := range b.grid {
		for x, cell := range row {
			if cell == ct {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// Layout encodes the board in the layout format accepted by ParseLayout
func (b *Board) Layout() []string {
	rows := make([]string, BoardSize)
	for y, row := range b.grid {
		var sb strings.Builder
		for _, cell := range row {
			switch cell {
			case Obstacle:
				sb.WriteByte(LayoutObstacle)
			case Gem:
				sb.WriteByte(LayoutGem)
			default:
				sb.WriteByte(LayoutEmpty)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// Render writes the board as rows of space-separated symbols. Players are
// drawn at their tracked positions on top of the grid.
func (b *Board) Render(w io.Writer, players ...*Player) error {
	bw := bufio.NewWriter(w)
	for y, row := range b.grid {
		for x, cell := range row {
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(symbolAt(Position{X: x, Y: y}, cell, players))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// symbolAt picks the symbol for a cell, preferring any player standing on it.
// Two players on one cell render as "PP".
func symbolAt(pos Position, cell CellType, players []*Player) string {
	symbol := ""
	for _, p := range players {
		if p == nil || p.pos != pos {
			continue
		}
		if symbol != "" {
			return "PP"
		}
		symbol = p.name
	}
	if symbol != "" {
		return symbol
	}
	return cell.Symbol()
}
