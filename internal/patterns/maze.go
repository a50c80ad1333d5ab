package patterns

import (
	"math/rand"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// Maze builds a recursive-division maze. Walls sit on odd rows and columns
// and openings on even ones, so every open cell stays connected. The result
// depends only on the grid size.
func Maze(rows, cols int, _, _ grid.Coord) []grid.Coord {
	m := &mazeBuilder{
		rng: rand.New(rand.NewSource(int64(rows)*1000 + int64(cols))),
	}
	m.divide(0, 0, rows-1, cols-1)
	return m.walls
}

type mazeBuilder struct {
	rng   *rand.Rand
	walls []grid.Coord
}

// divide splits the chamber [top..bottom] x [left..right] (inclusive).
func (m *mazeBuilder) divide(top, left, bottom, right int) {
	height := bottom - top + 1
	width := right - left + 1

	horizontal := height > width
	if height == width {
		horizontal = m.rng.Intn(2) == 0
	}

	if horizontal {
		if !m.splitRows(top, left, bottom, right) {
			m.splitCols(top, left, bottom, right)
		}
		return
	}
	if !m.splitCols(top, left, bottom, right) {
		m.splitRows(top, left, bottom, right)
	}
}

// splitRows draws a horizontal wall and recurses on both halves.
func (m *mazeBuilder) splitRows(top, left, bottom, right int) bool {
	row, ok := m.pick(top+1, bottom-1, 1)
	if !ok {
		return false
	}
	gap, _ := m.pick(left, right, 0)
	for c := left; c <= right; c++ {
		if c != gap {
			m.walls = append(m.walls, grid.At(row, c))
		}
	}
	m.divide(top, left, row-1, right)
	m.divide(row+1, left, bottom, right)
	return true
}

// splitCols draws a vertical wall and recurses on both halves.
func (m *mazeBuilder) splitCols(top, left, bottom, right int) bool {
	col, ok := m.pick(left+1, right-1, 1)
	if !ok {
		return false
	}
	gap, _ := m.pick(top, bottom, 0)
	for r := top; r <= bottom; r++ {
		if r != gap {
			m.walls = append(m.walls, grid.At(r, col))
		}
	}
	m.divide(top, left, bottom, col-1)
	m.divide(top, col+1, bottom, right)
	return true
}

// pick returns a random value in [lo, hi] with the given parity.
func (m *mazeBuilder) pick(lo, hi, parity int) (int, bool) {
	var candidates []int
	for v := lo; v <= hi; v++ {
		if v%2 == parity {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[m.rng.Intn(len(candidates))], true
}
