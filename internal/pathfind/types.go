package pathfind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// ErrNilGrid indicates Run was called without a grid snapshot.
var ErrNilGrid = errors.New("pathfind: grid is nil")

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 expands up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 additionally expands the four diagonals.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// ParseConnectivity accepts "4"/"8" (and "conn4"/"conn8").
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "4", "conn4", "":
		return Conn4, nil
	case "8", "conn8":
		return Conn8, nil
	default:
		return Conn4, fmt.Errorf("pathfind: unknown connectivity %q (want 4 or 8)", s)
	}
}

// offsets4 follows the up, down, left, right order.
var offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// offsets8 appends the diagonals after the orthogonal moves.
var offsets8 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// offsets returns the neighbor offsets for the connectivity as (drow, dcol) pairs.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// FinishPolicy decides whether a blocked finish cell can be entered.
type FinishPolicy int

const (
	// FinishRespectsWalls treats a blocked finish like any other wall.
	FinishRespectsWalls FinishPolicy = iota
	// FinishIgnoresWalls lets the search enter the finish even if it is blocked.
	FinishIgnoresWalls
)

// String returns the config spelling of the policy.
func (p FinishPolicy) String() string {
	if p == FinishIgnoresWalls {
		return "ignore"
	}
	return "walls"
}

// ParseFinishPolicy accepts "walls" or "ignore".
func ParseFinishPolicy(s string) (FinishPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "walls", "respect", "":
		return FinishRespectsWalls, nil
	case "ignore", "ignore-walls":
		return FinishIgnoresWalls, nil
	default:
		return FinishRespectsWalls, fmt.Errorf("pathfind: unknown blocked-finish policy %q (want walls or ignore)", s)
	}
}

// Options configures a run.
type Options struct {
	Conn   Connectivity
	Finish FinishPolicy
}

// DefaultOptions returns 4-connectivity with the finish respecting walls.
func DefaultOptions() Options {
	return Options{
		Conn:   Conn4,
		Finish: FinishRespectsWalls,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithConnectivity selects 4- or 8-connected expansion.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithFinishPolicy selects how a blocked finish is treated.
func WithFinishPolicy(p FinishPolicy) Option {
	return func(o *Options) {
		o.Finish = p
	}
}

// WithOptions replaces the whole option set.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// Result is the outcome of a single run.
type Result struct {
	// VisitedInOrder holds the cells in the order their distance was finalized.
	VisitedInOrder []grid.Cell
	// Finish is the finish cell with its final predecessor link.
	Finish grid.Cell
	// Reached reports whether the finish was visited.
	Reached bool

	snapshot *grid.Grid
}

// Snapshot returns the traversed clone carrying distances and predecessors.
func (r Result) Snapshot() *grid.Grid {
	return r.snapshot
}

// Path returns the shortest path from start to finish, or nil if the finish was not reached.
func (r Result) Path() []grid.Cell {
	if r.snapshot == nil {
		return nil
	}
	return ReconstructPath(r.snapshot, r.Finish)
}

// PathCoords returns Path as coordinates.
func (r Result) PathCoords() []grid.Coord {
	return coords(r.Path())
}

// VisitedCoords returns VisitedInOrder as coordinates.
func (r Result) VisitedCoords() []grid.Coord {
	return coords(r.VisitedInOrder)
}

// Stats summarizes a run.
type Stats struct {
	Visited    int  // cells finalized
	PathLength int  // cells on the path, 0 if unreached
	Reached    bool // finish visited
}

// Stats returns the run summary.
func (r Result) Stats() Stats {
	return Stats{
		Visited:    len(r.VisitedInOrder),
		PathLength: len(r.Path()),
		Reached:    r.Reached,
	}
}

func coords(cells []grid.Cell) []grid.Coord {
	if cells == nil {
		return nil
	}
	out := make([]grid.Coord, len(cells))
	for i, c := range cells {
		out[i] = c.Coord()
	}
	return out
}
