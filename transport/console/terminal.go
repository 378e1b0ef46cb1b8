package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var ErrInterrupted = errors.New("interrupted")

const (
	keyCtrlC  = 0x03
	keyCtrlD  = 0x04
	keyEscape = 0x1b
)

// arrowKeys maps the final byte of an ANSI arrow sequence to a direction key
var arrowKeys = map[rune]rune{
	'A': 'U',
	'B': 'D',
	'C': 'R',
	'D': 'L',
}

// Terminal reads one key per move and owns the output stream
type Terminal struct {
	reader *bufio.Reader
	out    io.Writer
	raw    bool
	fd     int
	state  *term.State
	log    logrus.FieldLogger
}

// Open wraps in and out. When in is a terminal and forceLine is false the
// terminal is switched to raw mode until Close.
func Open(in io.Reader, out io.Writer, forceLine bool, logger logrus.FieldLogger) (*Terminal, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	t := &Terminal{
		reader: bufio.NewReader(in),
		out:    out,
		log:    logger,
	}

	f, ok := in.(*os.File)
	if forceLine || !ok || !term.IsTerminal(int(f.Fd())) {
		t.log.Debug("console in line mode")
		return t, nil
	}

	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.raw = true
	t.fd = fd
	t.state = state
	t.out = NewCRLFWriter(out)
	t.log.Debug("console in raw mode")
	return t, nil
}

// Raw reports whether the terminal is in raw single-key mode
func (t *Terminal) Raw() bool {
	return t.raw
}

// Writer returns the stream game output should be written to
func (t *Terminal) Writer() io.Writer {
	return t.out
}

// ReadKey blocks until one key is available. In line mode whitespace is
// skipped so the newline after each typed key is not taken as a move.
func (t *Terminal) ReadKey() (rune, error) {
	for {
		r, _, err := t.reader.ReadRune()
		if err != nil {
			return 0, err
		}

		if r == keyEscape {
			if key, ok := t.readArrow(); ok {
				r = key
			}
		}

		if t.raw {
			if r == keyCtrlC || r == keyCtrlD {
				return 0, ErrInterrupted
			}
			// Raw mode does not echo
			fmt.Fprint(t.out, string(r))
			return r, nil
		}

		if unicode.IsSpace(r) {
			continue
		}
		return r, nil
	}
}

// readArrow consumes the rest of an "ESC [ A" style sequence if it has
// already arrived. A lone escape is returned to the caller as is.
func (t *Terminal) readArrow() (rune, bool) {
	if t.reader.Buffered() < 2 {
		return 0, false
	}
	next, err := t.reader.Peek(2)
	if err != nil || next[0] != '[' {
		return 0, false
	}
	key, ok := arrowKeys[rune(next[1])]
	if !ok {
		return 0, false
	}
	t.reader.Discard(2)
	return key, true
}

// Close restores the terminal state if raw mode was entered
func (t *Terminal) Close() error {
	if !t.raw || t.state == nil {
		return nil
	}
	t.raw = false
	if err := term.Restore(t.fd, t.state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// CRLFWriter rewrites "\n" as "\r\n", which a raw terminal needs to return
// the cursor to column zero.
type CRLFWriter struct {
	w io.Writer
}

// NewCRLFWriter wraps w
func NewCRLFWriter(w io.Writer) *CRLFWriter {
	return &CRLFWriter{w: w}
}

func (c *CRLFWriter) Write(p []byte) (int, error) {
	start := 0
	for i, b := range p {
		if b != '\n' || (i > 0 && p[i-1] == '\r') {
			continue
		}
		if _, err := c.w.Write(p[start:i]); err != nil {
			return start, err
		}
		if _, err := io.WriteString(c.w, "\r\n"); err != nil {
			return i, err
		}
		start = i + 1
	}
	if _, err := c.w.Write(p[start:]); err != nil {
		return start, err
	}
	return len(p), nil
}
