// internal/console/console.go
//
// Line-oriented terminal front end shared by all three programs.
// Responsibilities:
//   - Prompt, read one line, and report end of input as io.EOF.
//   - Keep every read/write on injected io.Reader/io.Writer so loops are testable.
//   - Count rejected input through the metrics recorder.
//
// Notes:
//   - Output is plain text; the screen is never cleared.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/metrics"
)

// Console reads player input and writes prompts and results.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	src      game.Source
	recorder metrics.Recorder
}

// Option customises a Console.
type Option func(*Console)

// WithSource sets the random source used for targets.
func WithSource(src game.Source) Option {
	return func(c *Console) { c.src = src }
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Console) {
		if r != nil {
			c.recorder = r
		}
	}
}

// New builds a Console over in/out. Without WithSource targets come from a
// randomly seeded source.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:       bufio.NewReader(in),
		out:      out,
		src:      game.NewRandomSource(),
		recorder: metrics.NoopRecorder{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// readLine prints prompt and returns the next line without its line ending.
// Lines of any length are accepted. End of input yields io.EOF once a
// final unterminated line has been returned.
func (c *Console) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// pause waits for Enter; end of input is left for the next read to report.
func (c *Console) pause() {
	_, _ = c.readLine("\nPress Enter to continue...")
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// noteInvalid records a rejected input by kind.
func (c *Console) noteInvalid(err error) {
	var re *game.RangeError
	if errors.As(err, &re) {
		c.recorder.IncInvalidInput("range")
		return
	}
	c.recorder.IncInvalidInput("parse")
}

func rule(ch string, n int) string { return strings.Repeat(ch, n) }

// isEOF reports whether err means the input stream ended.
func isEOF(err error) bool { return errors.Is(err, io.EOF) }
