package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/layout"
	_ "github.com/vovakirdan/tui-pathfinder/internal/patterns"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// testConfig returns a 3x3 grid from (0,0) to (2,2) without a splash.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Splash.Enabled = false
	cfg.Grid.Rows = 3
	cfg.Grid.Cols = 3
	cfg.Grid.Start = config.Point{Row: 0, Col: 0}
	cfg.Grid.Finish = config.Point{Row: 2, Col: 2}
	cfg.Animation.Speed = config.SpeedNormal
	cfg.Animation.VisitInterval = 10 * time.Millisecond
	cfg.Animation.PathInterval = 50 * time.Millisecond
	return cfg
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestVisualizer(t *testing.T, store *storage.Store, loader *layout.Loader) VisualizerModel {
	t.Helper()
	return NewVisualizerModel(VisualizerOptions{
		Config: testConfig(),
		Store:  store,
		Loader: loader,
		Width:  80,
		Height: 24,
	})
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEscape}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	ctrlSKey = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func updateVisualizer(t *testing.T, m VisualizerModel, msg tea.Msg) (VisualizerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	vm, ok := next.(VisualizerModel)
	require.True(t, ok, "Update returned %T, expected VisualizerModel", next)
	return vm, cmd
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
