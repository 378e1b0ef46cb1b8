// Command analyze prints quick, human-readable heuristics about Gem Hunters
// boards. It generates the boards for a range of seeds (or loads a named
// configuration) and summarizes obstacle and gem counts, the distance from each
// start to its nearest gem, and gems that obstacles wall off from both players.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/gem-hunters/game/config"
	"github.com/wricardo/gem-hunters/game/engine"
)

// BoardReport is the analysis of a single board
type BoardReport struct {
	Label       string
	Layout      []string
	Obstacles   int
	Gems        int
	Unreachable []engine.Position
	// NearestGem holds the Manhattan distance from each start, -1 when no gem is left
	NearestGem [2]int
}

func main() {
	logger := logrus.New()
	if err := newApp(logger).Run(context.Background(), os.Args); err != nil {
		logger.WithError(err).Fatal("analyze failed")
	}
}

func newApp(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "print heuristics for generated or configured boards",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "first seed to analyze"},
			&cli.IntFlag{Name: "count", Value: 5, Usage: "number of consecutive seeds"},
			&cli.StringFlag{Name: "config-dir", Value: "configs", Sources: cli.EnvVars("CONFIG_DIR")},
			&cli.StringFlag{Name: "config", Usage: "analyze this configuration instead of seeds"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.SetLevel(logrus.WarnLevel)
			out := cmd.Root().Writer
			if out == nil {
				out = os.Stdout
			}

			if name := cmd.String("config"); name != "" {
				return analyzeConfig(out, cmd.String("config-dir"), name, logger)
			}

			count := cmd.Int("count")
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			reports := make([]BoardReport, 0, count)
			for seed := cmd.Uint64("seed"); len(reports) < count; seed++ {
				report := analyzeBoard(fmt.Sprintf("seed %d", seed), engine.NewBoardFromSeed(seed))
				printReport(out, report)
				reports = append(reports, report)
			}
			printSummary(out, reports)
			return nil
		},
	}
}

// analyzeConfig reports on a named configuration; configs without a fixed
// layout are analyzed through their seed
func analyzeConfig(out io.Writer, dir, name string, logger logrus.FieldLogger) error {
	manager, err := config.NewManager(dir, logger)
	if err != nil {
		return err
	}
	gameConfig, err := manager.LoadConfig(name)
	if err != nil {
		return err
	}

	var board *engine.Board
	switch {
	case len(gameConfig.Layout) > 0:
		board, err = engine.ParseLayout(gameConfig.Layout)
		if err != nil {
			return err
		}
	case gameConfig.Seed != 0:
		board = engine.NewBoardFromSeed(gameConfig.Seed)
	default:
		return fmt.Errorf("config %s has neither a layout nor a seed; boards differ every game", name)
	}

	printReport(out, analyzeBoard(gameConfig.Name, board))
	return nil
}

func analyzeBoard(label string, board *engine.Board) BoardReport {
	report := BoardReport{
		Label:       label,
		Layout:      board.Layout(),
		Obstacles:   board.Count(engine.Obstacle),
		Gems:        board.Count(engine.Gem),
		Unreachable: engine.UnreachableGems(board, engine.Player1Start, engine.Player2Start),
	}
	for i, start := range []engine.Position{engine.Player1Start, engine.Player2Start} {
		report.NearestGem[i] = -1
		if _, dist, found := engine.FindNearestGem(board, start); found {
			report.NearestGem[i] = dist
		}
	}
	return report
}

func printReport(out io.Writer, r BoardReport) {
	fmt.Fprintf(out, "\n=== %s ===\n", r.Label)
	for _, row := range r.Layout {
		fmt.Fprintf(out, "  %s\n", row)
	}
	fmt.Fprintf(out, "Obstacles: %d\n", r.Obstacles)
	fmt.Fprintf(out, "Gems: %d\n", r.Gems)
	fmt.Fprintf(out, "Nearest gem: P1 %d, P2 %d\n", r.NearestGem[0], r.NearestGem[1])

	if len(r.Unreachable) == 0 {
		fmt.Fprintf(out, "All gems are reachable\n")
		return
	}
	fmt.Fprintf(out, "WARNING: %d gems are walled off\n", len(r.Unreachable))
	for _, p := range r.Unreachable {
		fmt.Fprintf(out, "   Unreachable gem: (%d, %d)\n", p.X, p.Y)
	}
}

func printSummary(out io.Writer, reports []BoardReport) {
	walledOff := 0
	totalNearest := 0
	for _, r := range reports {
		if len(r.Unreachable) > 0 {
			walledOff++
		}
		totalNearest += r.NearestGem[0] + r.NearestGem[1]
	}
	fmt.Fprintf(out, "\n=== Summary ===\n")
	fmt.Fprintf(out, "Boards: %d\n", len(reports))
	fmt.Fprintf(out, "Boards with unreachable gems: %d\n", walledOff)
	fmt.Fprintf(out, "Average nearest gem distance: %.2f\n", float64(totalNearest)/float64(2*len(reports)))
}
