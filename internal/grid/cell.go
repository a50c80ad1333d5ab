// Package grid provides the obstacle grid model used by the path engine.
// Cells live in a flat row-major arena and predecessors are stored as arena
// indices, so a Grid can be copied and compared without chasing pointers.
// Every mutating operation is copy-on-write: it returns a new Grid and leaves
// the receiver untouched.
package grid

import (
	"fmt"
	"math"
)

// Infinity is the tentative distance of a cell that has not been discovered.
const Infinity = math.MaxInt

// NoPredecessor marks a cell without a backlink.
const NoPredecessor = -1

// Coord identifies a cell by row and column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.Row-other.Row) + abs(c.Col-other.Col)
}

// Chebyshev returns the king-move distance to another coordinate.
func (c Coord) Chebyshev(other Coord) int {
	return max(abs(c.Row-other.Row), abs(c.Col-other.Col))
}

// Cell is one addressable unit of the grid.
type Cell struct {
	Row int
	Col int

	IsStart   bool
	IsFinish  bool
	IsBlocked bool // wall

	// Traversal state, owned by a single engine run.
	Distance    int  // Infinity until discovered
	Visited     bool // distance finalized
	Predecessor int  // arena index, NoPredecessor if none
}

// newCell returns a fresh, unblocked and undiscovered cell.
func newCell(row, col int) Cell {
	return Cell{
		Row:         row,
		Col:         col,
		Distance:    Infinity,
		Predecessor: NoPredecessor,
	}
}

// Coord returns the cell position.
func (c Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// HasPredecessor reports whether the cell carries a backlink.
func (c Cell) HasPredecessor() bool {
	return c.Predecessor != NoPredecessor
}

// Reached reports whether the cell was assigned a finite distance.
func (c Cell) Reached() bool {
	return c.Distance != Infinity
}

// ResetTraversal clears distance, visited flag and predecessor.
func (c *Cell) ResetTraversal() {
	c.Distance = Infinity
	c.Visited = false
	c.Predecessor = NoPredecessor
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
