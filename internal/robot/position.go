package robot

import "fmt"

// Position is a cell coordinate. Any integer is representable; whether the
// cell exists depends on the surface.
type Position struct {
	X, Y int
}

// Add returns the component-wise sum of p and o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
