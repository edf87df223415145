package core

import "fmt"

// Position identifies a board cell by row and column, both in [0, N).
type Position struct {
	Row, Col int
}

// NewPosition creates a position with the given row and column.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns a new position shifted by the given offset.
func (p Position) Add(other Position) Position {
	return Position{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

// Sub returns a new position that is the difference between this position and another.
func (p Position) Sub(other Position) Position {
	return Position{Row: p.Row - other.Row, Col: p.Col - other.Col}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// OrthogonalOffsets are the four side-neighbor offsets shared by the
// legality checks and the placement search.
var OrthogonalOffsets = [4]Position{
	{Row: -1, Col: 0}, // North
	{Row: 0, Col: 1},  // East
	{Row: 1, Col: 0},  // South
	{Row: 0, Col: -1}, // West
}

// DiagonalOffsets are the four corner-neighbor offsets.
var DiagonalOffsets = [4]Position{
	{Row: -1, Col: -1},
	{Row: -1, Col: 1},
	{Row: 1, Col: -1},
	{Row: 1, Col: 1},
}
