// Command gemhunters runs a two-player Gem Hunters game in the terminal.
//
// Players take turns moving with U/D/L/R (or the arrow keys) on a 6x6 board,
// collecting gems and avoiding obstacles. After 30 successful moves the player
// with more gems wins.
//
// Flags choose the configuration directory and config, pin the board seed,
// force line-buffered input and control logging. Every flag can also be set
// through an environment variable, and a .env file in the working directory
// is loaded first.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/gem-hunters/game/config"
	"github.com/wricardo/gem-hunters/game/engine"
	"github.com/wricardo/gem-hunters/transport/console"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Gem Hunters"
)

func main() {
	logger := logrus.New()

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file: %v", err)
		}
	}

	if err := newApp(logger).Run(context.Background(), os.Args); err != nil {
		logger.WithError(err).Fatal("gem hunters stopped")
	}
}

// newApp builds the root command. The logger is configured from flags before
// any action runs.
func newApp(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:    "gemhunters",
		Usage:   "two-player console game: collect the most gems in 30 moves",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing game configurations",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "configuration to play (default: classic.json or the built-in board)",
				Sources: cli.EnvVars("GEMHUNTERS_CONFIG"),
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "seed for board generation, overrides the config",
				Sources: cli.EnvVars("GEMHUNTERS_SEED"),
			},
			&cli.BoolFlag{
				Name:    "line",
				Usage:   "read moves line by line instead of single key presses",
				Sources: cli.EnvVars("GEMHUNTERS_LINE_INPUT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("GEMHUNTERS_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "log-json",
				Usage:   "write logs as JSON",
				Sources: cli.EnvVars("GEMHUNTERS_LOG_JSON"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, configureLogger(logger, cmd.String("log-level"), cmd.Bool("log-json"))
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return play(ctx, cmd, logger)
		},
		Commands: []*cli.Command{
			{
				Name:  "configs",
				Usage: "list available game configurations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return listConfigs(cmd, logger)
				},
			},
		},
	}
}

// configureLogger applies level and format settings
func configureLogger(logger *logrus.Logger, level string, json bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

// play loads the selected configuration and runs one game on the console
func play(ctx context.Context, cmd *cli.Command, logger *logrus.Logger) error {
	manager, err := config.NewManager(cmd.String("config-dir"), logger)
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	loaded, err := manager.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	gameConfig := *loaded
	if cmd.IsSet("seed") {
		gameConfig.Seed = cmd.Uint64("seed")
	}

	game, err := engine.NewGame(&gameConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	term, err := console.Open(input(cmd), output(cmd), cmd.Bool("line"), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := term.Close(); err != nil {
			logger.WithError(err).Warn("terminal not restored")
		}
	}()

	logger.WithFields(logrus.Fields{
		"game_id": game.ID(),
		"config":  game.Config().Name,
		"seed":    game.Seed(),
		"raw":     term.Raw(),
	}).Info("starting game")

	return game.Start(ctx, term, term.Writer())
}

// listConfigs prints the configurations the manager can load
func listConfigs(cmd *cli.Command, logger *logrus.Logger) error {
	manager, err := config.NewManager(cmd.String("config-dir"), logger)
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(output(cmd), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBOARD\tDESCRIPTION")
	for _, c := range configs {
		board := "random"
		if c.FixedLayout {
			board = "fixed"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ConfigID, c.Name, board, c.Description)
	}
	return w.Flush()
}

func input(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
