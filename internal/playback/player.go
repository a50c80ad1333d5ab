// Package playback replays a finished search as a timed animation.
// The Player is driven by elapsed time only; the UI decides how often to call
// Advance, so the same Player works with a tick loop, a test clock or a
// synchronous loop with sleeps.
package playback

import (
	"time"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// Phase is the current stage of the replay.
type Phase int

const (
	PhaseIdle     Phase = iota // nothing loaded
	PhaseVisiting              // revealing visited cells
	PhaseTracing               // revealing the shortest path
	PhaseDone                  // everything revealed
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseVisiting:
		return "visiting"
	case PhaseTracing:
		return "tracing"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Player reveals visited cells one per visitEvery, then path cells one per pathEvery.
type Player struct {
	visited    []grid.Coord
	path       []grid.Coord
	visitEvery time.Duration
	pathEvery  time.Duration

	phase        Phase
	elapsed      time.Duration // time spent in the current phase
	shownVisited int
	shownPath    int
}

// New creates a player for the given sequences.
// Non-positive intervals reveal the whole phase at once.
func New(visited, path []grid.Coord, visitEvery, pathEvery time.Duration) *Player {
	p := &Player{
		visited:    visited,
		path:       path,
		visitEvery: visitEvery,
		pathEvery:  pathEvery,
		phase:      PhaseVisiting,
	}
	p.settle()
	return p
}

// Advance moves the replay forward by dt and returns the phase after the step.
func (p *Player) Advance(dt time.Duration) Phase {
	if p.phase == PhaseIdle || p.phase == PhaseDone {
		return p.phase
	}
	if dt < 0 {
		dt = 0
	}
	p.elapsed += dt

	switch p.phase {
	case PhaseVisiting:
		p.shownVisited = reveal(p.elapsed, p.visitEvery, len(p.visited))
	case PhaseTracing:
		p.shownPath = reveal(p.elapsed, p.pathEvery, len(p.path))
	}

	p.settle()
	return p.phase
}

// settle moves to the next phase when the current one is fully revealed.
// Time left over at the end of the visiting phase is not carried into tracing.
func (p *Player) settle() {
	if p.phase == PhaseVisiting && p.visitEvery <= 0 {
		p.shownVisited = len(p.visited)
	}
	if p.phase == PhaseVisiting && p.shownVisited >= len(p.visited) {
		p.phase = PhaseTracing
		p.elapsed = 0
	}
	if p.phase == PhaseTracing && p.pathEvery <= 0 {
		p.shownPath = len(p.path)
	}
	if p.phase == PhaseTracing && p.shownPath >= len(p.path) {
		p.phase = PhaseDone
	}
}

// reveal returns how many items are shown after elapsed.
// The first item appears immediately, the next after one interval, and so on.
func reveal(elapsed, every time.Duration, total int) int {
	if every <= 0 {
		return total
	}
	n := int(elapsed/every) + 1
	if n > total {
		n = total
	}
	return n
}

// Skip reveals everything.
func (p *Player) Skip() {
	if p.phase == PhaseIdle {
		return
	}
	p.shownVisited = len(p.visited)
	p.shownPath = len(p.path)
	p.phase = PhaseDone
}

// Retime switches to new intervals and keeps what is already revealed.
// The next item waits one full new interval.
func (p *Player) Retime(visitEvery, pathEvery time.Duration) {
	p.visitEvery = visitEvery
	p.pathEvery = pathEvery

	switch p.phase {
	case PhaseVisiting:
		p.elapsed = elapsedFor(p.shownVisited, visitEvery)
	case PhaseTracing:
		p.elapsed = elapsedFor(p.shownPath, pathEvery)
	default:
		return
	}
	p.settle()
}

// elapsedFor is the inverse of reveal: the phase time at which shown items
// have just been revealed.
func elapsedFor(shown int, every time.Duration) time.Duration {
	if shown <= 1 || every <= 0 {
		return 0
	}
	return time.Duration(shown-1) * every
}

// Phase returns the current phase.
func (p *Player) Phase() Phase {
	return p.phase
}

// Done reports whether everything is revealed.
func (p *Player) Done() bool {
	return p.phase == PhaseDone
}

// Visited returns the revealed prefix of the visitation order.
func (p *Player) Visited() []grid.Coord {
	return p.visited[:p.shownVisited]
}

// Path returns the revealed prefix of the shortest path.
func (p *Player) Path() []grid.Coord {
	return p.path[:p.shownPath]
}

// Interval returns the tick interval the UI should use for the current phase.
func (p *Player) Interval() time.Duration {
	if p.phase == PhaseTracing {
		return p.pathEvery
	}
	return p.visitEvery
}

// Progress returns revealed and total counts across both phases.
func (p *Player) Progress() (shown, total int) {
	return p.shownVisited + p.shownPath, len(p.visited) + len(p.path)
}
