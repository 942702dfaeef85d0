package robot

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidOrientation = errors.New("invalid orientation")

// Orientation is the compass direction the robot faces. The declaration
// order is the clockwise order.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

var clockwise = [...]Orientation{North, East, South, West}

// Orientations returns every orientation in clockwise order. The slice is a
// fresh copy on each call.
func Orientations() []Orientation {
	return append([]Orientation(nil), clockwise[:]...)
}

var orientationNames = map[Orientation]string{
	North: "NORTH",
	East:  "EAST",
	South: "SOUTH",
	West:  "WEST",
}

var forward = map[Orientation]Position{
	North: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: -1},
	West:  {X: -1, Y: 0},
}

func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Valid reports whether o is one of the four compass directions.
func (o Orientation) Valid() bool {
	_, ok := orientationNames[o]
	return ok
}

// RotateLeft turns 90 degrees counterclockwise.
func (o Orientation) RotateLeft() Orientation {
	return (o + 3) % 4
}

// RotateRight turns 90 degrees clockwise.
func (o Orientation) RotateRight() Orientation {
	return (o + 1) % 4
}

// Forward is the offset of one step in direction o.
func (o Orientation) Forward() Position {
	return forward[o]
}

// ParseOrientation matches text against the four direction names, ignoring
// case.
func ParseOrientation(text string) (Orientation, error) {
	for _, o := range clockwise {
		if strings.EqualFold(text, orientationNames[o]) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, text)
}
