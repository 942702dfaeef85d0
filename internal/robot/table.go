package robot

import (
	"errors"
	"fmt"
)

var ErrInvalidDimensions = errors.New("table width and height have to be greater than or equal to 1")

// Surface tells whether a position can be occupied.
type Surface interface {
	Contains(p Position) bool
}

// Table is a rectangular surface with cells 0 <= x < Width, 0 <= y < Height.
type Table struct {
	width, height int
}

func NewTable(width, height int) (*Table, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Table{width: width, height: height}, nil
}

func (t *Table) Width() int  { return t.width }
func (t *Table) Height() int { return t.height }

func (t *Table) Contains(p Position) bool {
	return p.X >= 0 && p.X < t.width && p.Y >= 0 && p.Y < t.height
}

func (t *Table) String() string {
	return fmt.Sprintf("%dx%d", t.width, t.height)
}
