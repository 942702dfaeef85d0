package robot

import (
	"errors"
	"fmt"
)

var (
	ErrNotPlaced           = errors.New("The robot is not currently placed on the table")
	ErrPositionUnavailable = errors.New("Desired robot position is not available")
)

// Status is a read-only snapshot of a placed robot.
type Status struct {
	Position Position
	Facing   Orientation
}

func (s Status) String() string {
	return fmt.Sprintf("%s,%s", s.Position, s.Facing)
}

// state is either unplaced or placed.
type state interface {
	isState()
}

type unplaced struct{}

type placed struct {
	surface Surface
	Status
}

func (unplaced) isState() {}
func (placed) isState()   {}

// Robot starts unplaced. Every operation except Place fails with
// ErrNotPlaced until a Place succeeds, and a rejected operation never
// changes the state.
type Robot struct {
	state state
}

func NewRobot() *Robot {
	return &Robot{state: unplaced{}}
}

// Place puts the robot on surface at p facing o, replacing any previous
// placement.
func (r *Robot) Place(surface Surface, p Position, o Orientation) error {
	if surface == nil {
		return errors.New("robot: nil surface")
	}
	if !o.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidOrientation, int(o))
	}
	if !surface.Contains(p) {
		return ErrPositionUnavailable
	}
	r.state = placed{surface: surface, Status: Status{Position: p, Facing: o}}
	return nil
}

// Move steps one cell in the facing direction.
func (r *Robot) Move() error {
	switch s := r.current().(type) {
	case placed:
		next := s.Position.Add(s.Facing.Forward())
		if !s.surface.Contains(next) {
			return ErrPositionUnavailable
		}
		s.Position = next
		r.state = s
		return nil
	default:
		return ErrNotPlaced
	}
}

func (r *Robot) RotateLeft() error {
	return r.rotate(Orientation.RotateLeft)
}

func (r *Robot) RotateRight() error {
	return r.rotate(Orientation.RotateRight)
}

func (r *Robot) rotate(turn func(Orientation) Orientation) error {
	switch s := r.current().(type) {
	case placed:
		s.Facing = turn(s.Facing)
		r.state = s
		return nil
	default:
		return ErrNotPlaced
	}
}

// Status reports where the robot is and which way it faces.
func (r *Robot) Status() (Status, error) {
	switch s := r.current().(type) {
	case placed:
		return s.Status, nil
	default:
		return Status{}, ErrNotPlaced
	}
}

// Placed reports whether a Place has succeeded.
func (r *Robot) Placed() bool {
	_, ok := r.current().(placed)
	return ok
}

// current treats the zero Robot as unplaced.
func (r *Robot) current() state {
	if r.state == nil {
		return unplaced{}
	}
	return r.state
}

func (r *Robot) String() string {
	if s, err := r.Status(); err == nil {
		return s.String()
	}
	return "unplaced"
}
