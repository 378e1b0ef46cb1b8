package engine

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard_Counts(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		board := NewBoard(rand.New(rand.NewPCG(seed, seed)))

		require.Equal(t, ObstacleCount, board.Count(Obstacle), "seed %d", seed)
		require.Equal(t, GemCount, board.Count(Gem), "seed %d", seed)
		require.Equal(t, BoardSize*BoardSize-ObstacleCount-GemCount, board.Count(Empty), "seed %d", seed)
		require.Equal(t, Empty, board.Cell(Player1Start), "seed %d", seed)
		require.Equal(t, Empty, board.Cell(Player2Start), "seed %d", seed)
	}
}

func TestNewBoard_SameSeedSameLayout(t *testing.T) {
	a := NewBoard(rand.New(rand.NewPCG(7, 7)))
	b := NewBoard(rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a.Layout(), b.Layout())
}

func TestBoardLayout_ParsesBack(t *testing.T) {
	board, err := ParseLayout(testLayout)
	require.NoError(t, err)
	assert.Equal(t, testLayout, board.Layout())
}

func TestBoardCell_OutOfBounds(t *testing.T) {
	board, err := ParseLayout(testLayout)
	require.NoError(t, err)
	assert.Equal(t, Obstacle, board.Cell(Position{X: -1, Y: 0}))
	assert.Equal(t, Obstacle, board.Cell(Position{X: 0, Y: 6}))
}

func TestBoardRender(t *testing.T) {
	board, err := ParseLayout(testLayout)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, board.Render(&buf, NewPlayer("P1", Player1Start), NewPlayer("P2", Player2Start)))

	expected := strings.Join([]string{
		"P1 G G G G -",
		"O - O - - -",
		"G - G - O G",
		"- G - O - -",
		"- O - - - -",
		"- - - G G P2",
	}, "\n") + "\n"
	assert.Equal(t, expected, buf.String())
}

func TestBoardRender_SharedCell(t *testing.T) {
	board, err := ParseLayout(testLayout)
	require.NoError(t, err)

	shared := Position{X: 5, Y: 0}
	var buf bytes.Buffer
	require.NoError(t, board.Render(&buf, NewPlayer("P1", shared), NewPlayer("P2", shared)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, BoardSize)
	assert.Equal(t, "- G G G G PP", lines[0])
}

func TestBoardPositions(t *testing.T) {
	board, err := ParseLayout(testLayout)
	require.NoError(t, err)

	obstacles := board.Positions(Obstacle)
	assert.Equal(t, []Position{
		{X: 0, Y: 1},
		{X: 2, Y: 1},
		{X: 4, Y: 2},
		{X: 3, Y: 3},
		{X: 1, Y: 4},
	}, obstacles)
}
