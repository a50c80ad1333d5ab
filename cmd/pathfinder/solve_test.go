package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    config.Point
		wantErr bool
	}{
		{"0,0", config.Point{Row: 0, Col: 0}, false},
		{"4,8", config.Point{Row: 4, Col: 8}, false},
		{" 12 , 3 ", config.Point{Row: 12, Col: 3}, false},
		{"4", config.Point{}, true},
		{"4,8,1", config.Point{}, true},
		{"a,1", config.Point{}, true},
		{"1,b", config.Point{}, true},
		{"", config.Point{}, true},
	}

	for _, tt := range tests {
		got, err := parsePoint(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "parsePoint(%q) = %+v", tt.in, got)
			continue
		}
		if assert.NoError(t, err, "parsePoint(%q)", tt.in) {
			assert.Equal(t, tt.want, got, "parsePoint(%q)", tt.in)
		}
	}
}

func solveSmall(t *testing.T, walls ...grid.Coord) (*grid.Grid, pathfind.Result) {
	t.Helper()
	g, err := grid.Build(3, 3, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 2})
	require.NoError(t, err)
	if len(walls) > 0 {
		g, err = g.WithWalls(walls)
		require.NoError(t, err)
	}
	res, err := pathfind.RunGrid(g)
	require.NoError(t, err)
	return g, res
}

func TestRenderSolution(t *testing.T) {
	g, res := solveSmall(t)

	got := strings.Split(renderSolution(g, res, false), "\n")
	assert.Equal(t, []string{"S..", "o..", "ooF"}, got)

	withVisited := renderSolution(g, res, true)
	assert.Equal(t, 4, strings.Count(withVisited, "+"), "visited markers in %q", withVisited)
}

func TestRenderSolutionKeepsWalls(t *testing.T) {
	g, res := solveSmall(t, grid.Coord{Row: 1, Col: 0}, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 1, Col: 2})

	out := renderSolution(g, res, true)
	assert.NotContains(t, out, "o", "no path should cross a full wall")
	assert.Equal(t, 3, strings.Count(out, "#"), "walls in %q", out)
}

func TestSolutionSummary(t *testing.T) {
	_, res := solveSmall(t)
	got := solutionSummary(res, time.Millisecond)
	assert.True(t, strings.HasPrefix(got, "Path of 5 cells (4 steps), 9 cells visited"), "summary %q", got)

	_, blocked := solveSmall(t, grid.Coord{Row: 1, Col: 0}, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 1, Col: 2})
	got = solutionSummary(blocked, time.Millisecond)
	assert.True(t, strings.HasPrefix(got, "No path: finish unreachable after visiting 3 cells"), "summary %q", got)
}
