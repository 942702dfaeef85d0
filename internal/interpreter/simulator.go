package interpreter

import (
	"errors"
	"fmt"
	"io"

	"toyrobot/internal/robot"
)

// Simulator owns one table and one robot and executes command lines against
// them. REPORT results go to the main output; every rejection goes to the
// log output as a single "LOG: " line.
//
// A Simulator is not safe for concurrent use.
type Simulator struct {
	table *robot.Table
	robot *robot.Robot
	out   io.Writer
	log   io.Writer
}

// New creates a simulator on a width x height table. log may be nil, in
// which case log lines are discarded.
func New(width, height int, out, log io.Writer) (*Simulator, error) {
	if out == nil {
		return nil, ErrNilOutput
	}
	table, err := robot.NewTable(width, height)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = io.Discard
	}
	return &Simulator{
		table: table,
		robot: robot.NewRobot(),
		out:   out,
		log:   log,
	}, nil
}

// Execute runs one command line. It only returns an error for a line that
// does not parse (ErrInvalidCommand, as a *CommandError) or when the main
// output cannot be written. Commands the robot refuses are logged and
// Execute returns nil.
func (s *Simulator) Execute(command string) error {
	return s.ExecuteInput(&command)
}

// ExecuteInput is Execute for an optional line; nil fails with
// ErrNullCommand.
func (s *Simulator) ExecuteInput(command *string) error {
	if command == nil {
		s.logf("%s", ErrNullCommand)
		return ErrNullCommand
	}

	text := Normalize(*command)
	cmd, err := parse(text)
	if err != nil {
		cerr := &CommandError{Command: text, Err: err}
		s.logf("%s", cerr)
		return cerr
	}

	err = s.dispatch(cmd)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, robot.ErrNotPlaced), errors.Is(err, robot.ErrPositionUnavailable):
		s.logf("\"%s\" command is not allowed at this moment (\"%s\")", text, err)
		return nil
	default:
		return err
	}
}

func (s *Simulator) dispatch(cmd Command) error {
	switch cmd.Kind {
	case Place:
		return s.robot.Place(s.table, cmd.Position, cmd.Facing)
	case Move:
		return s.robot.Move()
	case Left:
		return s.robot.RotateLeft()
	case Right:
		return s.robot.RotateRight()
	case Report:
		status, err := s.robot.Status()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(s.out, status); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown command kind %s", cmd.Kind)
}

// Snapshot returns the robot status without logging anything. ok is false
// while the robot is unplaced.
func (s *Simulator) Snapshot() (status robot.Status, ok bool) {
	status, err := s.robot.Status()
	return status, err == nil
}

func (s *Simulator) Table() *robot.Table {
	return s.table
}

func (s *Simulator) logf(format string, args ...any) {
	fmt.Fprintln(s.log, "LOG: "+fmt.Sprintf(format, args...))
}
