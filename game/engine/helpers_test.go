package engine

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// testLayout has 5 obstacles and 10 gems. P1 can sweep the four gems on row 0,
// P2 reaches (4,5) and (3,5) first, and (0,1) blocks P1 from moving down.
var testLayout = []string{
	".GGGG.",
	"O.O...",
	"G.G.OG",
	".G.O..",
	".O....",
	"...GG.",
}

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func createTestGame(t *testing.T, layout []string) *Game {
	t.Helper()
	config := DefaultGameConfig()
	config.Name = "test"
	config.Layout = layout
	game, err := NewGame(config, quietLogger())
	require.NoError(t, err)
	return game
}

// scriptedKeys replays a fixed key sequence, then reports io.EOF
type scriptedKeys struct {
	keys []rune
	pos  int
}

func newScriptedKeys(s string) *scriptedKeys {
	return &scriptedKeys{keys: []rune(s)}
}

func (k *scriptedKeys) ReadKey() (rune, error) {
	if k.pos >= len(k.keys) {
		return 0, io.EOF
	}
	r := k.keys[k.pos]
	k.pos++
	return r, nil
}

// interleave merges per-player move strings in turn order, P1 first
func interleave(p1, p2 string) string {
	var sb strings.Builder
	for i := 0; i < len(p1) || i < len(p2); i++ {
		if i < len(p1) {
			sb.WriteByte(p1[i])
		}
		if i < len(p2) {
			sb.WriteByte(p2[i])
		}
	}
	return sb.String()
}
