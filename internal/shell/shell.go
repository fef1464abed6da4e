// Package shell runs the interactive command loop over a pair of
// streams.
package shell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/smileynet/rolo/internal/command"
)

// Shell drives the read-dispatch-print loop. It also satisfies
// command.Interactor, so prompts issued mid-command read from the same
// input stream as the loop itself.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Shell reading lines from r and writing to w.
func New(r io.Reader, w io.Writer) *Shell {
	return &Shell{in: bufio.NewScanner(r), out: w}
}

// Run prints the greeting, then dispatches one input line per
// iteration until a quit command or the end of input. A clean end of
// input returns nil.
func (s *Shell) Run(d *command.Dispatcher) error {
	fmt.Fprintln(s.out, command.Greeting)
	for {
		line, err := s.Prompt(command.PromptLabel)
		if err != nil {
			return s.in.Err()
		}
		res := d.Dispatch(line)
		if res.Text != "" {
			fmt.Fprintln(s.out, res.Text)
		}
		if res.Quit {
			return nil
		}
	}
}

// Prompt writes label without a newline and returns the next input
// line. Exhausted input reports io.EOF.
func (s *Shell) Prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// Show prints one line of incremental output.
func (s *Shell) Show(text string) {
	fmt.Fprintln(s.out, text)
}

// Pause blocks on label until the next input line, discarding it.
func (s *Shell) Pause(label string) error {
	_, err := s.Prompt(label)
	return err
}
