package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

func TestDrawGrid(t *testing.T) {
	g, err := grid.Build(2, 3, grid.At(0, 0), grid.At(1, 2))
	require.NoError(t, err)
	g, err = g.ToggleWall(0, 2)
	require.NoError(t, err)

	s := core.NewScreen(10, 4)
	o := newOverlay([]grid.Coord{grid.At(0, 0), grid.At(0, 1)}, nil)
	drawGrid(s, g, 1, 1, o)

	assert.Contains(t, s.Row(1), "│▶▶▓▓██")
	assert.Contains(t, s.Row(2), "│····◎◎")
	assert.NotEqual(t, ' ', s.Get(0, 0), "grid should be boxed")
}

func TestOverlayPathHidesFrontier(t *testing.T) {
	visited := []grid.Coord{grid.At(0, 0), grid.At(0, 1)}
	o := newOverlay(visited, []grid.Coord{grid.At(0, 0)})
	assert.False(t, o.hasFront, "frontier should not show while tracing")

	r, color := cellLook(grid.Cell{Row: 0, Col: 1}, o)
	assert.Equal(t, '░', r)
	assert.Equal(t, core.ColorVisited, color)
}

func TestCellAt(t *testing.T) {
	g, err := grid.Build(2, 3, grid.At(0, 0), grid.At(1, 2))
	require.NoError(t, err)

	tests := []struct {
		x, y int
		want grid.Coord
		ok   bool
	}{
		{5, 1, grid.At(0, 0), true},
		{6, 1, grid.At(0, 0), true},
		{7, 2, grid.At(1, 1), true},
		{10, 2, grid.At(1, 2), true},
		{4, 1, grid.Coord{}, false},
		{11, 1, grid.Coord{}, false},
		{5, 3, grid.Coord{}, false},
	}
	for _, tt := range tests {
		got, ok := cellAt(tt.x, tt.y, 5, 1, g)
		require.Equal(t, tt.ok, ok, "cellAt(%d,%d)", tt.x, tt.y)
		if ok {
			assert.Equal(t, tt.want, got, "cellAt(%d,%d)", tt.x, tt.y)
		}
	}
}
