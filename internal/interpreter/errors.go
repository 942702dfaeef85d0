package interpreter

import (
	"errors"
	"fmt"
)

var (
	ErrNullCommand    = errors.New(`null passed as "command" to execute`)
	ErrInvalidCommand = errors.New("invalid command")
	ErrNilOutput      = errors.New("interpreter: nil main output")
)

// CommandError reports a line that does not parse. Command holds the
// normalized text and Err the parse failure, if any.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("Invalid command \"%s\" passed to execute", e.Command)
}

func (e *CommandError) Unwrap() error { return e.Err }

func (e *CommandError) Is(target error) bool {
	return target == ErrInvalidCommand
}
