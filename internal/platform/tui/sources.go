package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/layout"
	"github.com/vovakirdan/tui-pathfinder/internal/registry"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// ErrUnknownSource is returned when a name matches no pattern or layout.
var ErrUnknownSource = errors.New("tui: no pattern or layout with that name")

// SourceKind tells where a grid comes from.
type SourceKind int

const (
	SourcePattern SourceKind = iota // registered wall pattern
	SourceSaved                     // layout stored in the database
	SourceFile                      // layout file in the layouts directory
)

// String returns the kind label shown in the menu.
func (k SourceKind) String() string {
	switch k {
	case SourcePattern:
		return "pattern"
	case SourceSaved:
		return "saved"
	case SourceFile:
		return "file"
	default:
		return "unknown"
	}
}

// Source is a selectable starting grid.
type Source struct {
	Kind   SourceKind
	ID     string
	Title  string
	Detail string
	Path   string // layout file path for SourceFile
}

// Sources lists patterns, saved layouts and layout files in that order.
// Storage and loader errors are logged and their section is skipped.
func Sources(store *storage.Store, loader *layout.Loader, logger *log.Logger) []Source {
	var out []Source
	for _, p := range registry.List() {
		out = append(out, Source{Kind: SourcePattern, ID: p.ID, Title: p.Title})
	}

	if store != nil {
		entries, err := store.ListLayouts()
		if err != nil && logger != nil {
			logger.Warn("could not list saved layouts", "error", err)
		}
		for _, e := range entries {
			out = append(out, Source{
				Kind:   SourceSaved,
				ID:     e.ID,
				Title:  titleOr(e.Name, e.ID),
				Detail: fmt.Sprintf("%dx%d, %d walls", e.Rows, e.Cols, e.Walls),
			})
		}
	}

	if loader != nil {
		layouts, err := loader.LoadAll()
		if err != nil && logger != nil {
			logger.Warn("could not load layout files", "dir", loader.Root, "error", err)
		}
		for _, l := range layouts {
			out = append(out, Source{
				Kind:   SourceFile,
				ID:     l.ID,
				Title:  l.Title(),
				Detail: fmt.Sprintf("%dx%d, %d walls", l.Rows, l.Cols, len(l.Walls)),
				Path:   l.FilePath,
			})
		}
	}
	return out
}

func titleOr(name, id string) string {
	if name != "" {
		return name
	}
	return id
}

// Grid builds the grid a source describes. Patterns are applied to the
// grid from cfg.
func (s Source) Grid(cfg config.Config, store *storage.Store, loader *layout.Loader) (*grid.Grid, error) {
	switch s.Kind {
	case SourcePattern:
		base, err := cfg.BuildGrid()
		if err != nil {
			return nil, err
		}
		return registry.Apply(s.ID, base)

	case SourceSaved:
		if store == nil {
			return nil, fmt.Errorf("tui: no database for layout %q", s.ID)
		}
		l, err := store.LoadLayout(s.ID)
		if err != nil {
			return nil, err
		}
		return l.ToGrid()

	case SourceFile:
		var (
			l   layout.Layout
			err error
		)
		switch {
		case s.Path != "":
			l, err = fileLoader(loader).LoadFile(s.Path)
		case loader != nil:
			l, err = loader.LoadByID(s.ID)
		default:
			return nil, fmt.Errorf("tui: no layouts directory for %q", s.ID)
		}
		if err != nil {
			return nil, err
		}
		return l.ToGrid()
	}
	return nil, fmt.Errorf("tui: unknown source kind %d", s.Kind)
}

// FindSource resolves a command-line name: an existing file path, then a
// pattern ID, then a saved layout, then a layout file ID.
func FindSource(name string, store *storage.Store, loader *layout.Loader) (Source, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return Source{Kind: SourceFile, ID: filepath.Base(name), Title: name, Path: name}, nil
	}
	if registry.Exists(name) {
		return Source{Kind: SourcePattern, ID: name, Title: name}, nil
	}
	if store != nil {
		if l, err := store.LoadLayout(name); err == nil {
			return Source{Kind: SourceSaved, ID: l.ID, Title: l.Title()}, nil
		}
	}
	if loader != nil {
		if l, err := loader.LoadByID(name); err == nil {
			return Source{Kind: SourceFile, ID: l.ID, Title: l.Title(), Path: l.FilePath}, nil
		}
	}
	return Source{}, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

// fileLoader returns a loader able to read an arbitrary path.
func fileLoader(loader *layout.Loader) *layout.Loader {
	if loader != nil {
		return loader
	}
	return layout.NewLoader(config.UserPath("layouts"))
}
