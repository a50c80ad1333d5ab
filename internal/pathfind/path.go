package pathfind

import "github.com/vovakirdan/tui-pathfinder/internal/grid"

// ReconstructPath walks predecessor links from finish back to the cell that
// has none and returns the cells in start-to-finish order.
//
// finish must come from a traversed snapshot (Result.Snapshot). A finish with
// no predecessor that is not itself the search origin was never reached; the
// result is then empty, which callers treat as "no path".
func ReconstructPath(g *grid.Grid, finish grid.Cell) []grid.Cell {
	if g == nil {
		return nil
	}
	if !finish.HasPredecessor() {
		// Only the origin has distance 0 and no backlink.
		if finish.Distance == 0 {
			return []grid.Cell{finish}
		}
		return []grid.Cell{}
	}

	path := []grid.Cell{finish}
	current := finish
	// Bounded by the cell count so a corrupted chain cannot loop forever.
	for steps := 0; current.HasPredecessor() && steps < g.Size(); steps++ {
		current = g.At(current.Predecessor)
		path = append(path, current)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
