// Package console runs a Simulator as an interactive line-oriented session.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"toyrobot/internal/interpreter"
)

type Console struct {
	sim      *interpreter.Simulator
	exit     string
	showGrid bool
	errOut   io.Writer
}

type Option func(*Console)

// WithGrid draws the table on the error stream after every command.
func WithGrid(show bool) Option {
	return func(c *Console) { c.showGrid = show }
}

// New wraps sim. Lines equal to exit, ignoring case and surrounding blanks,
// end the session. Rejected lines are reported on errOut.
func New(sim *interpreter.Simulator, exit string, errOut io.Writer, opts ...Option) *Console {
	c := &Console{sim: sim, exit: strings.TrimSpace(exit), errOut: errOut}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Banner writes the welcome text and the command list.
func (c *Console) Banner(w io.Writer) {
	table := c.sim.Table()
	fmt.Fprintln(w, "Welcome to Toy Robot Simulator!")
	fmt.Fprintf(w, "The table is %dx%d.\n", table.Width(), table.Height())
	fmt.Fprintln(w, "The following commands are available:")
	for _, command := range interpreter.CommandsWithParameters() {
		fmt.Fprintf(w, "- %s\n", command)
	}
	fmt.Fprintf(w, "- %s\n", c.exit)
	fmt.Fprintln(w)
}

// Run executes lines from in until EOF or the exit command. Lines of any
// length reach the simulator; only a read failure ends the session early.
func (c *Console) Run(in io.Reader) error {
	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			if strings.EqualFold(strings.TrimSpace(line), c.exit) {
				return nil
			}
			if err := c.execute(line); err != nil {
				return err
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) execute(line string) error {
	if err := c.sim.Execute(line); err != nil {
		fmt.Fprintln(c.errOut, err)
	}
	if c.showGrid {
		return Display(c.errOut, c.sim)
	}
	return nil
}
