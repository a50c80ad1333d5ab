// Package layout loads and saves grid layouts as YAML files.
//
// A layout is written either as an ASCII map:
//
//	id: corridor
//	name: Corridor
//	map:
//	  - "S..#...."
//	  - "...#..F."
//
// or with explicit coordinates:
//
//	id: corridor
//	size: { rows: 2, cols: 8 }
//	start: { row: 0, col: 0 }
//	finish: { row: 1, col: 6 }
//	walls: [{ row: 0, col: 3 }, { row: 1, col: 3 }]
//
// Map glyphs match grid.Glyph.
package layout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// ErrInvalid is wrapped by every parse failure.
var ErrInvalid = errors.New("layout: invalid layout")

// ErrNotFound is returned when no layout has the requested ID.
var ErrNotFound = errors.New("layout: not found")

// Layout is a parsed layout ready to be turned into a grid.
type Layout struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Start    grid.Coord
	Finish   grid.Coord
	Walls    []grid.Coord
	Metadata map[string]string
	FilePath string // empty unless loaded from disk
}

// Title returns the display name, falling back to the ID.
func (l Layout) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// ToGrid builds the grid the layout describes.
// Layouts larger than config.MaxGridSide on either side are rejected.
func (l Layout) ToGrid() (*grid.Grid, error) {
	if l.Rows > config.MaxGridSide || l.Cols > config.MaxGridSide {
		return nil, fmt.Errorf("%w: layout %q is %dx%d, at most %dx%d allowed",
			ErrInvalid, l.ID, l.Rows, l.Cols, config.MaxGridSide, config.MaxGridSide)
	}
	g, err := grid.Build(l.Rows, l.Cols, l.Start, l.Finish)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", l.ID, err)
	}
	g, err = g.WithWalls(l.Walls)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", l.ID, err)
	}
	return g, nil
}

// FromGrid captures a grid as a layout.
func FromGrid(id, name string, g *grid.Grid) Layout {
	return Layout{
		ID:     id,
		Name:   name,
		Rows:   g.Rows(),
		Cols:   g.Cols(),
		Start:  g.Start(),
		Finish: g.Finish(),
		Walls:  g.Walls(),
	}
}

// ValidID reports whether id can name a layout file and a storage key:
// letters, digits, '-', '_' and '.', not starting with '.'.
func ValidID(id string) bool {
	if id == "" || id[0] == '.' {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
