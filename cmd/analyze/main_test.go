package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wricardo/gem-hunters/game/engine"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func runAnalyze(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(quietLogger())
	app.Writer = &out
	err := app.Run(context.Background(), append([]string{"analyze"}, args...))
	return out.String(), err
}

func TestAnalyzeBoard(t *testing.T) {
	board, err := engine.ParseLayout([]string{
		"....OG",
		".....O",
		"..G...",
		"......",
		"....G.",
		"......",
	})
	require.NoError(t, err)

	report := analyzeBoard("walled", board)
	assert.Equal(t, "walled", report.Label)
	assert.Equal(t, 2, report.Obstacles)
	assert.Equal(t, 3, report.Gems)
	assert.Equal(t, []engine.Position{{X: 5, Y: 0}}, report.Unreachable)
	assert.Equal(t, [2]int{4, 2}, report.NearestGem)
}

func TestAnalyzeBoard_NoGems(t *testing.T) {
	board, err := engine.ParseLayout([]string{"......", "......", "......", "......", "......", "......"})
	require.NoError(t, err)

	report := analyzeBoard("empty", board)
	assert.Equal(t, [2]int{-1, -1}, report.NearestGem)
	assert.Empty(t, report.Unreachable)
}

func TestPrintReport(t *testing.T) {
	var out bytes.Buffer
	printReport(&out, BoardReport{
		Label:       "seed 3",
		Layout:      []string{"......"},
		Obstacles:   5,
		Gems:        10,
		Unreachable: []engine.Position{{X: 2, Y: 4}},
		NearestGem:  [2]int{1, 2},
	})

	assert.Contains(t, out.String(), "=== seed 3 ===")
	assert.Contains(t, out.String(), "Nearest gem: P1 1, P2 2")
	assert.Contains(t, out.String(), "WARNING: 1 gems are walled off")
	assert.Contains(t, out.String(), "Unreachable gem: (2, 4)")
}

func TestRun_Seeds(t *testing.T) {
	out, err := runAnalyze(t, "--seed", "10", "--count", "3", "--config-dir", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "Obstacles: 5"))
	assert.Equal(t, 3, strings.Count(out, "Gems: 10"))
	assert.Contains(t, out, "=== seed 10 ===")
	assert.Contains(t, out, "=== seed 12 ===")
	assert.Contains(t, out, "Boards: 3")
}

func TestRun_InvalidCount(t *testing.T) {
	_, err := runAnalyze(t, "--count", "0")
	assert.Error(t, err)
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, c engine.GameConfig) {
		data, err := json.Marshal(c)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), data, 0644))
	}
	write("fixed", engine.GameConfig{
		Name:   "Fixed",
		Layout: []string{".G....", "......", "......", "......", "......", "......"},
	})
	write("seeded", engine.GameConfig{Name: "Seeded", Seed: 10})
	write("random", engine.GameConfig{Name: "Random"})

	out, err := runAnalyze(t, "--config-dir", dir, "--config", "fixed")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Fixed ===")
	assert.Contains(t, out, "Gems: 1")

	seeded, err := runAnalyze(t, "--config-dir", dir, "--config", "seeded")
	require.NoError(t, err)
	fromSeed, err := runAnalyze(t, "--seed", "10", "--count", "1", "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, fromSeed, strings.TrimPrefix(seeded, "\n=== Seeded ===\n"))

	_, err = runAnalyze(t, "--config-dir", dir, "--config", "random")
	assert.Error(t, err)
}
