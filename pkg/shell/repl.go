package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"golang.org/x/term"
)

// LineReader reads one input line after showing prompt. It returns io.EOF
// when input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Console is the interactive surface of the loop: a line source plus the
// streams command output and diagnostics are written to.
type Console interface {
	LineReader
	Stdio() *core.Stdio
	Close() error
}

// NewConsole returns a console over stdio. When both input and output are
// terminals, input is read in raw mode through x/term, which provides line
// editing and recall of earlier lines; otherwise lines are scanned from the
// input stream.
func NewConsole(stdio *core.Stdio) (Console, error) {
	in, inOK := stdio.In.(*os.File)
	out, outOK := stdio.Out.(*os.File)
	if inOK && outOK && term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd())) {
		return newTTYConsole(in, out)
	}
	return newStreamConsole(stdio), nil
}

type streamConsole struct {
	stdio   *core.Stdio
	scanner *bufio.Scanner
}

func newStreamConsole(stdio *core.Stdio) *streamConsole {
	scanner := bufio.NewScanner(stdio.In)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &streamConsole{stdio: stdio, scanner: scanner}
}

func (c *streamConsole) ReadLine(prompt string) (string, error) {
	c.stdio.Print(prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

func (c *streamConsole) Stdio() *core.Stdio { return c.stdio }

func (c *streamConsole) Close() error { return nil }

type ttyConsole struct {
	fd    int
	state *term.State
	term  *term.Terminal
	stdio *core.Stdio
}

func newTTYConsole(in, out *os.File) (*ttyConsole, error) {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, "")
	return &ttyConsole{
		fd:    fd,
		state: state,
		term:  t,
		stdio: &core.Stdio{In: in, Out: t, Err: t},
	}, nil
}

func (c *ttyConsole) ReadLine(prompt string) (string, error) {
	c.term.SetPrompt(prompt)
	return c.term.ReadLine()
}

func (c *ttyConsole) Stdio() *core.Stdio { return c.stdio }

func (c *ttyConsole) Close() error {
	return term.Restore(c.fd, c.state)
}

// Prompt returns the text shown before each line is read.
func Prompt(sess *core.Session) string {
	return sess.Dir() + "> "
}

// Run drives the read-eval loop until exit or end of input and returns the
// process exit code.
func Run(stdio *core.Stdio, sess *core.Session) int {
	console, err := NewConsole(stdio)
	if err != nil {
		stdio.Errorf("terminal: %v\n", err)
		return core.ExitFailure
	}
	defer console.Close()

	return Loop(console, NewDispatcher(sess, console.Stdio()))
}

// Loop reads lines from r and dispatches them until exit or end of input.
// Each cycle prints a blank line before the prompt.
func Loop(r LineReader, d *Dispatcher) int {
	for {
		d.Stdio.Println()
		line, err := r.ReadLine(Prompt(d.Session))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return core.ExitSuccess
			}
			d.Stdio.Errorf("terminal: %v\n", err)
			return core.ExitFailure
		}
		if d.Dispatch(line) {
			return core.ExitSuccess
		}
	}
}
