// Package patterns registers the built-in wall patterns.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/tui-pathfinder/internal/patterns"
package patterns

import (
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/registry"
)

func init() {
	registry.Register(registry.Pattern{ID: "blank", Title: "Blank", Walls: Blank})
	registry.Register(registry.Pattern{ID: "border", Title: "Border", Walls: Border})
	registry.Register(registry.Pattern{ID: "divider", Title: "Divider (no path)", Walls: Divider})
	registry.Register(registry.Pattern{ID: "gate", Title: "Gate", Walls: Gate})
	registry.Register(registry.Pattern{ID: "comb", Title: "Comb", Walls: Comb})
	registry.Register(registry.Pattern{ID: "maze", Title: "Maze", Walls: Maze})
}

// Blank has no walls.
func Blank(_, _ int, _, _ grid.Coord) []grid.Coord {
	return nil
}

// Border walls the outer ring of the grid.
func Border(rows, cols int, _, _ grid.Coord) []grid.Coord {
	var walls []grid.Coord
	for c := range cols {
		walls = append(walls, grid.At(0, c))
		if rows > 1 {
			walls = append(walls, grid.At(rows-1, c))
		}
	}
	for r := 1; r < rows-1; r++ {
		walls = append(walls, grid.At(r, 0))
		if cols > 1 {
			walls = append(walls, grid.At(r, cols-1))
		}
	}
	return walls
}

// Divider draws a full wall strictly between start and finish, so the
// finish is unreachable with 4-connectivity. A column is preferred; a row is
// used when start and finish are too close horizontally. Returns nil when
// no line fits between them.
func Divider(rows, cols int, start, finish grid.Coord) []grid.Coord {
	walls, _ := divider(rows, cols, start, finish)
	return walls
}

// Gate is a Divider with a single opening in the middle.
func Gate(rows, cols int, start, finish grid.Coord) []grid.Coord {
	walls, vertical := divider(rows, cols, start, finish)
	if len(walls) == 0 {
		return nil
	}

	gap := rows / 2
	if !vertical {
		gap = cols / 2
	}
	for i, w := range walls {
		if (vertical && w.Row == gap) || (!vertical && w.Col == gap) {
			return append(walls[:i], walls[i+1:]...)
		}
	}
	return walls
}

// divider returns the separating line and whether it is a column.
func divider(rows, cols int, start, finish grid.Coord) ([]grid.Coord, bool) {
	if lo, hi := min(start.Col, finish.Col), max(start.Col, finish.Col); hi-lo >= 2 {
		col := lo + (hi-lo)/2
		walls := make([]grid.Coord, 0, rows)
		for r := range rows {
			walls = append(walls, grid.At(r, col))
		}
		return walls, true
	}
	if lo, hi := min(start.Row, finish.Row), max(start.Row, finish.Row); hi-lo >= 2 {
		row := lo + (hi-lo)/2
		walls := make([]grid.Coord, 0, cols)
		for c := range cols {
			walls = append(walls, grid.At(row, c))
		}
		return walls, false
	}
	return nil, false
}

// Comb fills every other column with a wall, leaving the opening alternately
// at the bottom and the top so the open cells form one serpentine corridor.
func Comb(rows, cols int, _, _ grid.Coord) []grid.Coord {
	var walls []grid.Coord
	for c := 1; c < cols; c += 2 {
		gap := rows - 1
		if (c/2)%2 == 1 {
			gap = 0
		}
		for r := range rows {
			if r != gap {
				walls = append(walls, grid.At(r, c))
			}
		}
	}
	return walls
}
