package console

import (
	"bufio"
	"io"

	"toyrobot/internal/interpreter"
)

// Display draws the table with the robot, north at the top. The robot is
// shown as R, empty cells as '.'.
func Display(w io.Writer, sim *interpreter.Simulator) error {
	table := sim.Table()
	status, placed := sim.Snapshot()
	bw := bufio.NewWriter(w)
	for y := table.Height() - 1; y >= 0; y-- {
		for x := 0; x < table.Width(); x++ {
			if placed && status.Position.X == x && status.Position.Y == y {
				bw.WriteString("R ")
			} else {
				bw.WriteString(". ")
			}
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}
