// Package console provides the terminal transport for Gem Hunters.
//
// The console package implements:
//   - Single-key input: raw terminal mode when stdin is a TTY, so a move is
//     taken as soon as the key is pressed
//   - Line-buffered fallback for pipes, files and tests, skipping whitespace
//   - Arrow keys mapped to U/D/L/R
//   - Newline translation for output written while the terminal is raw
//
// Usage:
//
//	term, err := console.Open(os.Stdin, os.Stdout, false, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer term.Close()
//
//	err = game.Start(ctx, term, term.Writer())
//
// In raw mode the terminal does not turn Ctrl-C into a signal; ReadKey
// reports it as ErrInterrupted so the caller can unwind and Close restores
// the terminal state.
package console
