package console

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func readAll(t *testing.T, term *Terminal) []rune {
	t.Helper()
	var keys []rune
	for {
		r, err := term.ReadKey()
		if err == io.EOF {
			return keys
		}
		require.NoError(t, err)
		keys = append(keys, r)
	}
}

func TestOpen_NonFileIsLineMode(t *testing.T) {
	var out bytes.Buffer
	term, err := Open(strings.NewReader("R"), &out, false, quietLogger())
	require.NoError(t, err)
	defer term.Close()

	assert.False(t, term.Raw())
	assert.Same(t, &out, term.Writer())
}

func TestReadKey_LineModeSkipsWhitespace(t *testing.T) {
	term, err := Open(strings.NewReader("r\nU \t d\r\n\nx\n"), io.Discard, true, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, []rune{'r', 'U', 'd', 'x'}, readAll(t, term))
}

func TestReadKey_ArrowKeys(t *testing.T) {
	input := "\x1b[A\x1b[B\x1b[C\x1b[D"
	term, err := Open(strings.NewReader(input), io.Discard, true, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, []rune{'U', 'D', 'R', 'L'}, readAll(t, term))
}

func TestReadKey_UnknownEscapeSequence(t *testing.T) {
	term, err := Open(strings.NewReader("\x1b[Z"), io.Discard, true, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, []rune{0x1b, '[', 'Z'}, readAll(t, term))
}

func TestReadKey_RawModeInterruptAndEcho(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"ctrl-c", "\x03"},
		{"ctrl-d", "\x04"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			term := &Terminal{
				reader: bufio.NewReader(strings.NewReader("l" + test.input)),
				out:    &out,
				raw:    true,
				log:    quietLogger(),
			}

			r, err := term.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, 'l', r)
			assert.Equal(t, "l", out.String(), "raw mode echoes the key")

			_, err = term.ReadKey()
			assert.ErrorIs(t, err, ErrInterrupted)
		})
	}
}

func TestReadKey_RawModeKeepsSpaces(t *testing.T) {
	term := &Terminal{
		reader: bufio.NewReader(strings.NewReader(" ")),
		out:    io.Discard,
		raw:    true,
		log:    quietLogger(),
	}

	r, err := term.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, ' ', r, "a space is a (rejected) move in raw mode")
}

func TestClose_LineModeIsNoop(t *testing.T) {
	term, err := Open(strings.NewReader(""), io.Discard, false, quietLogger())
	require.NoError(t, err)
	assert.NoError(t, term.Close())
	assert.NoError(t, term.Close())
}

func TestCRLFWriter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no newline", "abc", "abc"},
		{"single newline", "a\nb", "a\r\nb"},
		{"leading and trailing", "\nboard\n", "\r\nboard\r\n"},
		{"already crlf", "a\r\nb", "a\r\nb"},
		{"consecutive", "\n\n", "\r\n\r\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := NewCRLFWriter(&buf).Write([]byte(test.input))
			require.NoError(t, err)
			assert.Equal(t, len(test.input), n)
			assert.Equal(t, test.expected, buf.String())
		})
	}
}
