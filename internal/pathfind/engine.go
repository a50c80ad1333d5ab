package pathfind

import (
	"container/heap"
	"fmt"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// Run searches from start to finish on a private clone of g.
//
// Returns an error only for a nil grid (ErrNilGrid) or coordinates outside the
// snapshot (grid.ErrOutOfBounds). An unreachable finish is not an error:
// Result.Reached is false and Result.Path is empty.
func Run(g *grid.Grid, start, finish grid.Coord, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("pathfind: %w: start %s outside %dx%d", grid.ErrOutOfBounds, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(finish) {
		return Result{}, fmt.Errorf("pathfind: %w: finish %s outside %dx%d", grid.ErrOutOfBounds, finish, g.Rows(), g.Cols())
	}

	r := &runner{
		g:       g.Clone(),
		options: cfg,
		start:   g.Index(start),
		finish:  g.Index(finish),
		order:   make([]int, 0, g.Size()),
	}
	r.init()
	r.process()

	return r.result(), nil
}

// RunGrid searches between the start and finish flagged on g itself.
func RunGrid(g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	return Run(g, g.Start(), g.Finish(), opts...)
}

// runner holds the mutable state of a single execution.
type runner struct {
	g       *grid.Grid // private clone, written in place
	options Options
	start   int
	finish  int
	pq      frontier
	seq     int
	order   []int // arena indices in visitation order
	reached bool
}

// init resets every cell and seeds the frontier with the start at distance 0.
func (r *runner) init() {
	r.g.ResetTraversal()
	r.g.Update(r.start, func(c *grid.Cell) {
		c.Distance = 0
	})

	heap.Init(&r.pq)
	r.push(r.start, 0)
}

// push adds idx to the frontier with the next discovery sequence number.
func (r *runner) push(idx, dist int) {
	heap.Push(&r.pq, frontierItem{idx: idx, dist: dist, seq: r.seq})
	r.seq++
}

// process extracts cells in (distance, discovery) order until the finish is
// finalized or the frontier runs dry. Cells never pushed keep distance
// Infinity, so an empty frontier means everything left is unreachable.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem)
		cell := r.g.At(item.idx)

		// Stale entry from a lazy decrease-key.
		if cell.Visited || item.dist != cell.Distance {
			continue
		}

		r.g.Update(item.idx, func(c *grid.Cell) {
			c.Visited = true
		})
		r.order = append(r.order, item.idx)

		if item.idx == r.finish {
			r.reached = true
			return
		}

		r.relax(item.idx, item.dist)
	}
}

// relax offers dist+1 to every traversable, unvisited neighbor of idx.
func (r *runner) relax(idx, dist int) {
	from := r.g.CoordOf(idx)
	candidate := dist + 1

	for _, off := range r.options.Conn.offsets() {
		to := from.Add(off[0], off[1])
		if !r.g.InBounds(to) {
			continue
		}

		nIdx := r.g.Index(to)
		neighbor := r.g.At(nIdx)
		if neighbor.Visited || !r.enterable(nIdx, neighbor) {
			continue
		}

		// Strictly better only, so the first discoverer keeps the backlink.
		if candidate >= neighbor.Distance {
			continue
		}

		r.g.Update(nIdx, func(c *grid.Cell) {
			c.Distance = candidate
			c.Predecessor = idx
		})
		r.push(nIdx, candidate)
	}
}

// enterable reports whether the search may step onto the cell.
func (r *runner) enterable(idx int, c grid.Cell) bool {
	if !c.IsBlocked {
		return true
	}
	return idx == r.finish && r.options.Finish == FinishIgnoresWalls
}

// result materializes the visited cells from the final snapshot.
func (r *runner) result() Result {
	visited := make([]grid.Cell, len(r.order))
	for i, idx := range r.order {
		visited[i] = r.g.At(idx)
	}
	return Result{
		VisitedInOrder: visited,
		Finish:         r.g.At(r.finish),
		Reached:        r.reached,
		snapshot:       r.g,
	}
}
