package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	g, err := Build(3, 4, At(0, 1), At(2, 3))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 12, g.Size())
	assert.Equal(t, At(0, 1), g.Start())
	assert.Equal(t, At(2, 3), g.Finish())

	starts, finishes := 0, 0
	for i, cell := range g.Cells() {
		assert.Equal(t, g.CoordOf(i), cell.Coord())
		assert.False(t, cell.IsBlocked)
		assert.False(t, cell.Visited)
		assert.Equal(t, Infinity, cell.Distance)
		assert.Equal(t, NoPredecessor, cell.Predecessor)
		if cell.IsStart {
			starts++
		}
		if cell.IsFinish {
			finishes++
		}
	}
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, finishes)

	cell, ok := g.Cell(0, 1)
	require.True(t, ok)
	assert.True(t, cell.IsStart)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		start      Coord
		finish     Coord
		want       error
	}{
		{"zero rows", 0, 5, At(0, 0), At(0, 1), ErrInvalidDimension},
		{"negative cols", 3, -1, At(0, 0), At(0, 1), ErrInvalidDimension},
		{"start row outside", 3, 3, At(3, 0), At(0, 1), ErrOutOfBounds},
		{"start col negative", 3, 3, At(0, -1), At(0, 1), ErrOutOfBounds},
		{"finish outside", 3, 3, At(0, 0), At(1, 3), ErrOutOfBounds},
		{"product overflows int", math.MaxInt / 2, 4, At(0, 0), At(0, 1), ErrInvalidDimension},
		{"too many cells", MaxCells, 2, At(0, 0), At(0, 1), ErrInvalidDimension},
		{"huge grid, start outside", MaxCells, MaxCells, At(-1, 0), At(0, 1), ErrInvalidDimension},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Build(tc.rows, tc.cols, tc.start, tc.finish)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestBuildAtCellLimit(t *testing.T) {
	g, err := Build(1, MaxCells, At(0, 0), At(0, MaxCells-1))
	require.NoError(t, err)
	assert.Equal(t, MaxCells, g.Size())
}

func TestBuildSameStartFinish(t *testing.T) {
	g, err := Build(2, 2, At(1, 1), At(1, 1))
	require.NoError(t, err)

	cell, _ := g.Cell(1, 1)
	assert.True(t, cell.IsStart)
	assert.True(t, cell.IsFinish)
	assert.Equal(t, "..\n.*", g.String())
}

func TestToggleWallCopyOnWrite(t *testing.T) {
	g, err := Build(3, 3, At(0, 0), At(2, 2))
	require.NoError(t, err)

	toggled, err := g.ToggleWall(1, 1)
	require.NoError(t, err)

	assert.False(t, g.IsBlocked(At(1, 1)), "input grid must not change")
	assert.True(t, toggled.IsBlocked(At(1, 1)))
	assert.False(t, g.Equal(toggled))

	// A further edit on the new snapshot leaves the first one alone.
	again, err := toggled.ToggleWall(0, 1)
	require.NoError(t, err)
	assert.False(t, toggled.IsBlocked(At(0, 1)))
	assert.True(t, again.IsBlocked(At(0, 1)))
}

func TestToggleWallRoundTrip(t *testing.T) {
	g, err := Build(4, 5, At(0, 0), At(3, 4))
	require.NoError(t, err)

	once, err := g.ToggleWall(2, 3)
	require.NoError(t, err)
	twice, err := once.ToggleWall(2, 3)
	require.NoError(t, err)

	assert.True(t, g.Equal(twice))
}

func TestToggleWallOnRoleCells(t *testing.T) {
	g, err := Build(3, 3, At(0, 0), At(2, 2))
	require.NoError(t, err)

	g, err = g.ToggleWall(0, 0)
	require.NoError(t, err)
	g, err = g.ToggleWall(2, 2)
	require.NoError(t, err)

	start, _ := g.Cell(0, 0)
	finish, _ := g.Cell(2, 2)
	assert.True(t, start.IsStart && start.IsBlocked)
	assert.True(t, finish.IsFinish && finish.IsBlocked)
	assert.Equal(t, At(0, 0), g.Start())
	assert.Equal(t, At(2, 2), g.Finish())
}

func TestToggleWallOutOfBounds(t *testing.T) {
	g, err := Build(3, 3, At(0, 0), At(2, 2))
	require.NoError(t, err)

	for _, c := range []Coord{At(-1, 0), At(0, 3), At(3, 3)} {
		next, err := g.ToggleWall(c.Row, c.Col)
		assert.Nil(t, next)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
	assert.Equal(t, 0, g.WallCount())
}

func TestSetWall(t *testing.T) {
	g, err := Build(2, 2, At(0, 0), At(1, 1))
	require.NoError(t, err)

	same, err := g.SetWall(0, 1, false)
	require.NoError(t, err)
	assert.Same(t, g, same)

	blocked, err := g.SetWall(0, 1, true)
	require.NoError(t, err)
	assert.True(t, blocked.IsBlocked(At(0, 1)))
}

func TestRelocate(t *testing.T) {
	g, err := Build(3, 3, At(0, 0), At(2, 2))
	require.NoError(t, err)

	moved, err := g.RelocateStart(1, 0)
	require.NoError(t, err)
	assert.Equal(t, At(1, 0), moved.Start())
	oldStart, _ := moved.Cell(0, 0)
	newStart, _ := moved.Cell(1, 0)
	assert.False(t, oldStart.IsStart)
	assert.True(t, newStart.IsStart)
	assert.Equal(t, At(0, 0), g.Start(), "input grid must not change")

	moved, err = moved.RelocateFinish(0, 2)
	require.NoError(t, err)
	assert.Equal(t, At(0, 2), moved.Finish())
	oldFinish, _ := moved.Cell(2, 2)
	assert.False(t, oldFinish.IsFinish)

	same, err := moved.RelocateFinish(0, 2)
	require.NoError(t, err)
	assert.Same(t, moved, same)

	_, err = moved.RelocateStart(5, 5)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = moved.RelocateFinish(-1, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestRelocateKeepsWalls(t *testing.T) {
	g, err := Build(3, 3, At(0, 0), At(2, 2))
	require.NoError(t, err)
	g, err = g.ToggleWall(1, 1)
	require.NoError(t, err)

	moved, err := g.RelocateStart(1, 1)
	require.NoError(t, err)
	cell, _ := moved.Cell(1, 1)
	assert.True(t, cell.IsStart)
	assert.True(t, cell.IsBlocked)
}

func TestResizeDiscardsWalls(t *testing.T) {
	g, err := Build(3, 3, At(0, 0), At(2, 2))
	require.NoError(t, err)
	g, err = g.WithWalls([]Coord{At(0, 1), At(1, 1)})
	require.NoError(t, err)
	require.Equal(t, 2, g.WallCount())

	resized, err := Resize(5, 6, At(0, 0), At(4, 5))
	require.NoError(t, err)
	assert.Equal(t, 0, resized.WallCount())
	assert.Equal(t, 30, resized.Size())

	_, err = Resize(0, 6, At(0, 0), At(4, 5))
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestWithWallsAllOrNothing(t *testing.T) {
	g, err := Build(3, 3, At(0, 0), At(2, 2))
	require.NoError(t, err)

	next, err := g.WithWalls([]Coord{At(0, 1), At(9, 9)})
	assert.Nil(t, next)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, 0, g.WallCount())

	next, err = g.WithWalls([]Coord{At(0, 1), At(1, 1)})
	require.NoError(t, err)
	assert.Equal(t, []Coord{At(0, 1), At(1, 1)}, next.Walls())
	assert.Equal(t, 0, next.ClearWalls().WallCount())
}

func TestGridString(t *testing.T) {
	g, err := Build(2, 3, At(0, 0), At(1, 2))
	require.NoError(t, err)
	g, err = g.ToggleWall(0, 1)
	require.NoError(t, err)

	assert.Equal(t, "S#.\n..F", g.String())

	g, err = g.ToggleWall(0, 0)
	require.NoError(t, err)
	g, err = g.ToggleWall(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "s#.\n..f", g.String())

	same, err := Build(1, 2, At(0, 1), At(0, 1))
	require.NoError(t, err)
	assert.Equal(t, ".*", same.String())
	same, err = same.ToggleWall(0, 1)
	require.NoError(t, err)
	assert.Equal(t, ".%", same.String())
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := Build(4, 7, At(0, 0), At(3, 6))
	require.NoError(t, err)

	for i := 0; i < g.Size(); i++ {
		assert.Equal(t, i, g.Index(g.CoordOf(i)))
	}
	assert.True(t, g.IsBlocked(At(-1, 0)), "out of bounds reads as blocked")
}

func TestCoordDistances(t *testing.T) {
	a, b := At(1, 2), At(4, 0)
	assert.Equal(t, 5, a.Manhattan(b))
	assert.Equal(t, 3, a.Chebyshev(b))
	assert.Equal(t, At(2, 1), a.Add(1, -1))
	assert.Equal(t, "(1,2)", a.String())
}
