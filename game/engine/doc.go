// Package engine provides the core game logic for Gem Hunters.
//
// The engine package implements the game mechanics including:
//   - Random board generation with obstacles and gems
//   - Grid-based movement and obstacle detection
//   - Gem collection and scoring
//   - Turn sequencing between the two players
//   - Configuration validation and fixed layouts
//
// Core Types:
//
// Game owns the Board and both Players and drives the turn loop. Board is a
// fixed 6x6 grid indexed [y][x]; it validates moves and resolves gem pickup.
// Player tracks its own Position, which is authoritative: players are never
// written into the grid and are overlaid when the board is rendered.
//
// Usage:
//
//	game, err := engine.NewGame(engine.DefaultGameConfig(), logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Drive the console loop
//	err = game.Start(ctx, keys, os.Stdout)
//
//	// Or play turns directly
//	result, err := game.Attempt(engine.Right)
//
// Game Rules:
//
// Players alternate moving one cell up, down, left or right. Moves off the
// board or onto an obstacle are rejected and the same player tries again.
// Landing on a gem collects it. After 30 successful moves in total the player
// with more gems wins; equal counts are a tie.
package engine
