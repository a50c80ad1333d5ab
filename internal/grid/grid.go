package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular arrangement of cells stored in row-major order:
// index = row*cols + col. A Grid owns its cells; Clone is the only way two
// grids end up with equal cells.
type Grid struct {
	rows   int
	cols   int
	cells  []Cell
	start  Coord
	finish Coord
}

// MaxCells bounds rows*cols for a single grid.
const MaxCells = 1 << 20

// Build creates a grid of the given dimensions with every cell unblocked and
// undiscovered, and the start and finish cells flagged.
// Start and finish may name the same cell.
func Build(rows, cols int, start, finish Coord) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, rows, cols)
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimension, rows, cols, MaxCells)
	}

	g := &Grid{
		rows:   rows,
		cols:   cols,
		start:  start,
		finish: finish,
	}
	if !g.InBounds(start) {
		return nil, g.outOfBounds("start", start)
	}
	if !g.InBounds(finish) {
		return nil, g.outOfBounds("finish", finish)
	}
	g.cells = make([]Cell, rows*cols)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.cells[g.index(row, col)] = newCell(row, col)
		}
	}
	g.cells[g.Index(start)].IsStart = true
	g.cells[g.Index(finish)].IsFinish = true

	return g, nil
}

// Resize is equivalent to Build. Painted walls are discarded because the
// previous coordinates no longer describe the new extent.
func Resize(rows, cols int, start, finish Coord) (*Grid, error) {
	return Build(rows, cols, start, finish)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the total number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// Start returns the start coordinate.
func (g *Grid) Start() Coord {
	return g.start
}

// Finish returns the finish coordinate.
func (g *Grid) Finish() Coord {
	return g.finish
}

// index converts a row and column to a flat array index.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Index converts a coordinate to its arena index. The coordinate must be in bounds.
func (g *Grid) Index(c Coord) int {
	return g.index(c.Row, c.Col)
}

// CoordOf converts an arena index back to a coordinate.
func (g *Grid) CoordOf(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// InBounds returns true if the coordinate lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Cell returns a copy of the cell at (row, col).
// The second result is false for out-of-bounds coordinates.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	c := Coord{Row: row, Col: col}
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return g.cells[g.Index(c)], true
}

// At returns a copy of the cell stored at arena index idx.
func (g *Grid) At(idx int) Cell {
	return g.cells[idx]
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// IsBlocked reports whether the cell at c is a wall.
// Out-of-bounds coordinates are reported as blocked.
func (g *Grid) IsBlocked(c Coord) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.cells[g.Index(c)].IsBlocked
}

// Walls returns the coordinates of all blocked cells in row-major order.
func (g *Grid) Walls() []Coord {
	walls := make([]Coord, 0)
	for _, cell := range g.cells {
		if cell.IsBlocked {
			walls = append(walls, cell.Coord())
		}
	}
	return walls
}

// WallCount returns the number of blocked cells.
func (g *Grid) WallCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.IsBlocked {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:   g.rows,
		cols:   g.cols,
		cells:  cells,
		start:  g.start,
		finish: g.finish,
	}
}

// Equal returns true if two grids have the same dimensions, roles and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	if g.start != other.start || g.finish != other.finish {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as an ASCII map (see Glyph).
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))

	for row := 0; row < g.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			sb.WriteRune(Glyph(g.cells[g.index(row, col)]))
		}
	}
	return sb.String()
}

// Glyph returns the ASCII map rune for a cell: '.' open, '#' wall,
// 'S' start, 'F' finish, '*' both. Role cells that are also walls use
// lowercase 's' and 'f', and '%' when they are both.
func Glyph(c Cell) rune {
	switch {
	case c.IsStart && c.IsFinish && c.IsBlocked:
		return '%'
	case c.IsStart && c.IsFinish:
		return '*'
	case c.IsStart && c.IsBlocked:
		return 's'
	case c.IsStart:
		return 'S'
	case c.IsFinish && c.IsBlocked:
		return 'f'
	case c.IsFinish:
		return 'F'
	case c.IsBlocked:
		return '#'
	default:
		return '.'
	}
}

func (g *Grid) outOfBounds(what string, c Coord) error {
	return fmt.Errorf("%w: %s %s outside %dx%d", ErrOutOfBounds, what, c, g.rows, g.cols)
}
