package robot

import (
	"errors"
	"testing"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(5, 5)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	return table
}

func testStatus(t *testing.T, r *Robot, want Status) {
	t.Helper()
	got, err := r.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if got != want {
		t.Fatalf("Status = %v, want %v", got, want)
	}
}

func TestUnplacedRobotRejectsEverything(t *testing.T) {
	r := NewRobot()
	ops := map[string]func() error{
		"Move":        r.Move,
		"RotateLeft":  r.RotateLeft,
		"RotateRight": r.RotateRight,
		"Status": func() error {
			_, err := r.Status()
			return err
		},
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrNotPlaced) {
			t.Errorf("%s on unplaced robot: err = %v, want ErrNotPlaced", name, err)
		}
	}
	if r.Placed() {
		t.Error("robot should still be unplaced")
	}
}

func TestZeroRobotIsUnplaced(t *testing.T) {
	var r Robot
	if err := r.Move(); !errors.Is(err, ErrNotPlaced) {
		t.Fatalf("Move on zero Robot: err = %v", err)
	}
}

func TestPlace(t *testing.T) {
	table := newTestTable(t)
	r := NewRobot()
	if err := r.Place(table, Position{3, 2}, South); err != nil {
		t.Fatalf("Place: %v", err)
	}
	testStatus(t, r, Status{Position{3, 2}, South})

	if err := r.Place(table, Position{0, 4}, West); err != nil {
		t.Fatalf("second Place: %v", err)
	}
	testStatus(t, r, Status{Position{0, 4}, West})
}

func TestRejectedPlaceKeepsState(t *testing.T) {
	table := newTestTable(t)
	r := NewRobot()
	if err := r.Place(table, Position{5, 5}, North); !errors.Is(err, ErrPositionUnavailable) {
		t.Fatalf("Place off table: err = %v", err)
	}
	if r.Placed() {
		t.Fatal("rejected Place must not place the robot")
	}

	if err := r.Place(table, Position{1, 1}, East); err != nil {
		t.Fatal(err)
	}
	for _, p := range []Position{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if err := r.Place(table, p, North); !errors.Is(err, ErrPositionUnavailable) {
			t.Fatalf("Place %v: err = %v", p, err)
		}
		testStatus(t, r, Status{Position{1, 1}, East})
	}
}

func TestPlaceInvalidOrientation(t *testing.T) {
	r := NewRobot()
	if err := r.Place(newTestTable(t), Position{}, Orientation(7)); !errors.Is(err, ErrInvalidOrientation) {
		t.Fatalf("err = %v, want ErrInvalidOrientation", err)
	}
}

func TestMove(t *testing.T) {
	table := newTestTable(t)
	tests := []struct {
		facing Orientation
		want   Position
	}{
		{North, Position{1, 2}},
		{East, Position{2, 1}},
		{South, Position{1, 0}},
		{West, Position{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			r := NewRobot()
			if err := r.Place(table, Position{1, 1}, tt.facing); err != nil {
				t.Fatal(err)
			}
			if err := r.Move(); err != nil {
				t.Fatalf("Move: %v", err)
			}
			testStatus(t, r, Status{tt.want, tt.facing})
		})
	}
}

func TestMoveOffEdge(t *testing.T) {
	table := newTestTable(t)
	tests := []Status{
		{Position{2, 4}, North},
		{Position{4, 2}, East},
		{Position{2, 0}, South},
		{Position{0, 2}, West},
	}
	for _, start := range tests {
		r := NewRobot()
		if err := r.Place(table, start.Position, start.Facing); err != nil {
			t.Fatal(err)
		}
		if err := r.Move(); !errors.Is(err, ErrPositionUnavailable) {
			t.Fatalf("Move from %v: err = %v", start, err)
		}
		testStatus(t, r, start)
	}
}

func TestMoveTurnAroundMoveReturns(t *testing.T) {
	table := newTestTable(t)
	for _, o := range Orientations() {
		r := NewRobot()
		start := Position{2, 2}
		if err := r.Place(table, start, o); err != nil {
			t.Fatal(err)
		}
		steps := []func() error{r.Move, r.RotateLeft, r.RotateLeft, r.Move}
		for _, step := range steps {
			if err := step(); err != nil {
				t.Fatalf("%s: %v", o, err)
			}
		}
		testStatus(t, r, Status{start, o.RotateLeft().RotateLeft()})
	}
}

func TestRotateKeepsPosition(t *testing.T) {
	r := NewRobot()
	if err := r.Place(newTestTable(t), Position{0, 0}, North); err != nil {
		t.Fatal(err)
	}
	if err := r.RotateLeft(); err != nil {
		t.Fatal(err)
	}
	testStatus(t, r, Status{Position{0, 0}, West})
	if err := r.RotateRight(); err != nil {
		t.Fatal(err)
	}
	if err := r.RotateRight(); err != nil {
		t.Fatal(err)
	}
	testStatus(t, r, Status{Position{0, 0}, East})
}

func TestRobotString(t *testing.T) {
	r := NewRobot()
	if r.String() != "unplaced" {
		t.Errorf("String() = %q", r.String())
	}
	if err := r.Place(newTestTable(t), Position{3, 3}, North); err != nil {
		t.Fatal(err)
	}
	if r.String() != "3,3,NORTH" {
		t.Errorf("String() = %q", r.String())
	}
}
