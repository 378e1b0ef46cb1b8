package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownDirection = errors.New("unknown direction")
	ErrGameOver         = errors.New("game is over")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// KeyReader supplies one key press per call, blocking until it arrives
type KeyReader interface {
	ReadKey() (rune, error)
}

// Game orchestrates turns between two players on one board
type Game struct {
	id       string
	seed     uint64
	config   *GameConfig
	messages Messages
	board    *Board
	players  [2]*Player
	current  int
	turns    int
	state    State
	history  []MoveHistoryEntry
	log      logrus.FieldLogger
}

// NewGame creates a game from the provided configuration. A nil logger falls
// back to the logrus standard logger.
func NewGame(config *GameConfig, logger logrus.FieldLogger) (*Game, error) {
	if config == nil {
		config = DefaultGameConfig()
	}
	cfg := *config
	cfg.Messages = cfg.Messages.WithDefaults()
	config = &cfg
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	g := &Game{
		id:       uuid.NewString(),
		config:   config,
		messages: config.Messages,
		players: [2]*Player{
			NewPlayer("P1", Player1Start),
			NewPlayer("P2", Player2Start),
		},
		state: NotStarted,
	}

	if len(config.Layout) > 0 {
		board, err := ParseLayout(config.Layout)
		if err != nil {
			return nil, err
		}
		g.board = board
	} else {
		g.seed = config.Seed
		if g.seed == 0 {
			g.seed = rand.Uint64()
		}
		g.board = NewBoardFromSeed(g.seed)
	}

	g.log = logger.WithFields(logrus.Fields{
		"game_id": g.id,
		"config":  config.Name,
		"seed":    g.seed,
	})
	g.log.WithFields(logrus.Fields{
		"obstacles": g.board.Count(Obstacle),
		"gems":      g.board.Count(Gem),
		"layout":    g.board.Layout(),
	}).Debug("board ready")
	if unreachable := UnreachableGems(g.board, Player1Start, Player2Start); len(unreachable) > 0 {
		g.log.WithField("positions", unreachable).Debug("some gems cannot be reached")
	}

	return g, nil
}

// ID returns the unique game identifier
func (g *Game) ID() string { return g.id }

// Config returns the validated configuration the game was built from
func (g *Game) Config() *GameConfig { return g.config }

// Seed returns the seed the board was generated from, 0 for fixed layouts
func (g *Game) Seed() uint64 { return g.seed }

// Board returns the game board
func (g *Game) Board() *Board { return g.board }

// Player1 returns the player who moves first
func (g *Game) Player1() *Player { return g.players[0] }

// Player2 returns the second player
func (g *Game) Player2() *Player { return g.players[1] }

// CurrentTurn returns the player whose turn it is
func (g *Game) CurrentTurn() *Player { return g.players[g.current] }

// TotalTurns returns the number of successful moves so far
func (g *Game) TotalTurns() int { return g.turns }

// State returns the lifecycle state
func (g *Game) State() State { return g.state }

// History returns every move attempt in order
func (g *Game) History() []MoveHistoryEntry { return g.history }

// IsGameOver reports whether the turn limit has been reached
func (g *Game) IsGameOver() bool {
	return g.turns >= MaxTurns
}

// SwitchTurn hands the turn to the other player
func (g *Game) SwitchTurn() {
	g.current = 1 - g.current
}

// Attempt plays one turn attempt for the current player. Invalid moves leave
// the turn and the turn counter untouched.
func (g *Game) Attempt(d Direction) (*MoveResult, error) {
	if g.IsGameOver() {
		g.state = Over
		return nil, ErrGameOver
	}
	if g.state == NotStarted {
		g.state = InProgress
	}

	player := g.CurrentTurn()
	from := player.Position()
	result := &MoveResult{
		Player:    player.Name(),
		Direction: d,
		From:      from,
		To:        from,
		Turn:      g.turns,
	}

	if !g.board.IsValidMove(player, d) {
		g.addMoveToHistory(player.Name(), d, from, from, false, false)
		g.log.WithFields(logrus.Fields{
			"turn":      g.turns + 1,
			"player":    player.Name(),
			"direction": d.String(),
		}).Debug("invalid move")
		return result, nil
	}

	if err := player.Move(d); err != nil {
		// IsValidMove already rejected unknown directions
		return nil, fmt.Errorf("move %s: %w", player.Name(), err)
	}
	result.Valid = true
	result.To = player.Position()
	result.GemCollected = g.board.CollectGem(player)
	g.addMoveToHistory(player.Name(), d, from, result.To, true, result.GemCollected)

	g.SwitchTurn()
	g.turns++
	result.Turn = g.turns

	entry := g.log.WithFields(logrus.Fields{
		"turn":   g.turns,
		"player": player.Name(),
		"from":   from,
		"to":     result.To,
	})
	if result.GemCollected {
		entry.WithField("gems", player.GemCount()).Info("gem collected")
	} else {
		entry.Debug("moved")
	}

	if g.IsGameOver() {
		g.state = Over
		result.GameOver = true
		res := g.Result()
		g.log.WithFields(logrus.Fields{
			"player1_gems": res.Player1Gems,
			"player2_gems": res.Player2Gems,
			"winner":       res.Winner,
		}).Info("game over")
	}
	return result, nil
}

// Start runs the console loop until the turn limit is reached, then announces
// the winner. It returns early when the input fails or ctx is done.
func (g *Game) Start(ctx context.Context, in KeyReader, out io.Writer) error {
	if g.state == Over || g.IsGameOver() {
		return ErrGameOver
	}
	g.state = InProgress
	g.log.Info("game started")

	for !g.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		player := g.CurrentTurn()
		fmt.Fprintf(out, "\n"+g.messages.TurnBanner+"\n", g.turns+1, player.Name())
		if err := g.board.Render(out, g.players[:]...); err != nil {
			return fmt.Errorf("render board: %w", err)
		}
		fmt.Fprint(out, "\n"+g.messages.Prompt)

		key, err := in.ReadKey()
		if err != nil {
			return fmt.Errorf("read move for %s: %w", player.Name(), err)
		}

		result, err := g.Attempt(ParseDirection(key))
		if err != nil {
			return err
		}
		if !result.Valid {
			fmt.Fprint(out, "\n"+g.messages.InvalidMove+"\n")
			continue
		}
		if result.GemCollected {
			fmt.Fprintf(out, "\n"+g.messages.GemCollected+"\n", player.Name())
		}
	}

	g.state = Over
	g.AnnounceWinner(out)
	return nil
}

// Result returns both gem counts and the winner; strictly more gems wins
func (g *Game) Result() Result {
	r := Result{
		Player1Gems: g.players[0].GemCount(),
		Player2Gems: g.players[1].GemCount(),
	}
	switch {
	case r.Player1Gems > r.Player2Gems:
		r.Winner = 1
	case r.Player2Gems > r.Player1Gems:
		r.Winner = 2
	}
	return r
}

// AnnounceWinner prints both gem counts and the winner or a tie
func (g *Game) AnnounceWinner(out io.Writer) {
	r := g.Result()
	fmt.Fprintf(out, "\n"+g.messages.PlayerGems+"\n", 1, r.Player1Gems)
	fmt.Fprintf(out, "\n"+g.messages.PlayerGems+"\n", 2, r.Player2Gems)
	fmt.Fprint(out, "\n"+g.messages.GameOver+"\n")

	if r.Tie() {
		fmt.Fprint(out, "\n"+g.messages.Tie+"\n")
		return
	}
	fmt.Fprintf(out, g.messages.Win+"\n", r.Winner)
}
