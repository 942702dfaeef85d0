package interpreter

import (
	"fmt"
	"strings"

	"toyrobot/internal/robot"
)

// Kind identifies a command verb.
type Kind int

const (
	Place Kind = iota
	Move
	Left
	Right
	Report
)

var kindNames = []string{
	Place:  "PLACE",
	Move:   "MOVE",
	Left:   "LEFT",
	Right:  "RIGHT",
	Report: "REPORT",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is one parsed input line. Position and Facing are only set for
// PLACE.
type Command struct {
	Kind     Kind
	Position robot.Position
	Facing   robot.Orientation
}

// CommandNames lists the verbs the simulator understands.
func CommandNames() []string {
	return append([]string(nil), kindNames...)
}

// CommandsWithParameters lists the verbs with their argument syntax, for
// help text.
func CommandsWithParameters() []string {
	orientations := robot.Orientations()
	names := make([]string, len(orientations))
	for i, o := range orientations {
		names[i] = o.String()
	}
	commands := CommandNames()
	commands[Place] = fmt.Sprintf("%s X,Y,{%s}", Place, strings.Join(names, "|"))
	return commands
}
