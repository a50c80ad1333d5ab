// Package registry provides a global registry of named wall patterns.
// Patterns register themselves in init() functions, so the UI and the CLI
// can list and apply them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// ErrUnknownPattern is returned for IDs that were never registered.
var ErrUnknownPattern = errors.New("registry: unknown pattern")

// WallFunc computes the walls of a pattern for a grid of the given size.
// It may return coordinates outside the grid or on the start and finish;
// Apply filters those out.
type WallFunc func(rows, cols int, start, finish grid.Coord) []grid.Coord

// Pattern is a named generator of walls.
type Pattern struct {
	ID    string
	Title string
	Walls WallFunc
}

// PatternInfo contains metadata about a registered pattern.
type PatternInfo struct {
	ID    string
	Title string
}

var (
	patterns = make(map[string]Pattern)
	mu       sync.RWMutex
)

// Register adds a pattern to the registry.
// Typically called from an init() function.
// Panics if the ID is already taken or the pattern has no WallFunc.
func Register(p Pattern) {
	mu.Lock()
	defer mu.Unlock()

	if p.ID == "" || p.Walls == nil {
		panic(fmt.Sprintf("registry: pattern %q is incomplete", p.ID))
	}
	if _, exists := patterns[p.ID]; exists {
		panic(fmt.Sprintf("registry: pattern %q already registered", p.ID))
	}
	if p.Title == "" {
		p.Title = p.ID
	}
	patterns[p.ID] = p
}

// List returns information about all registered patterns, sorted by ID.
func List() []PatternInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PatternInfo, 0, len(patterns))
	for id, p := range patterns {
		result = append(result, PatternInfo{
			ID:    id,
			Title: p.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns the pattern with the given ID.
func Get(id string) (Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := patterns[id]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, id)
	}
	return p, nil
}

// Exists checks if a pattern with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := patterns[id]
	return ok
}

// Apply replaces the walls of g with the pattern's walls.
// Coordinates outside g and the start and finish cells are skipped, so a
// pattern never walls over a role cell. g itself is not modified.
func Apply(id string, g *grid.Grid) (*grid.Grid, error) {
	p, err := Get(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("registry: apply %q: nil grid", id)
	}

	raw := p.Walls(g.Rows(), g.Cols(), g.Start(), g.Finish())
	walls := make([]grid.Coord, 0, len(raw))
	for _, c := range raw {
		if !g.InBounds(c) || c == g.Start() || c == g.Finish() {
			continue
		}
		walls = append(walls, c)
	}

	return g.ClearWalls().WithWalls(walls)
}

// Next returns the ID after current in List order, wrapping around.
// An unknown or empty current yields the first pattern.
func Next(current string) (string, bool) {
	infos := List()
	if len(infos) == 0 {
		return "", false
	}
	for i, info := range infos {
		if info.ID == current {
			return infos[(i+1)%len(infos)].ID, true
		}
	}
	return infos[0].ID, true
}
