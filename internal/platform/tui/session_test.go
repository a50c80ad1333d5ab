package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/layout"
	"github.com/vovakirdan/tui-pathfinder/internal/registry"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok, "Update returned %T, expected SessionModel", next)
	return sm, cmd
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	cfg := testConfig()
	cfg.Splash.Enabled = true
	store := openTestStore(t)
	loader := layout.NewLoader(t.TempDir())
	return NewSessionModel(cfg, store, loader, nil, core.DefaultConfig())
}

func TestSessionMenuToVisualizerAndBack(t *testing.T) {
	m := newTestSession(t)

	m, _ = updateSession(t, m, enterKey)
	require.Equal(t, screenVisualizer, m.current, "enter should open the visualizer")
	assert.Equal(t, registry.List()[0].ID, m.visualizer.Source())
	assert.True(t, m.visualizer.splash, "first visualizer should show the splash")

	m, _ = updateSession(t, m, splashDoneMsg{})
	m, _ = updateSession(t, m, escKey)
	require.Equal(t, screenMenu, m.current, "esc should return to the menu")
	assert.False(t, m.quitting, "going back should not quit the session")

	m, _ = updateSession(t, m, enterKey)
	assert.False(t, m.visualizer.splash, "splash should show only once per session")
}

func TestSessionHistory(t *testing.T) {
	m := NewSessionModel(testConfig(), openTestStore(t), nil, discardLogger(), core.DefaultConfig())

	m, _ = updateSession(t, m, tabKey)
	require.Equal(t, screenHistory, m.current, "tab should open the history")
	m, _ = updateSession(t, m, escKey)
	assert.Equal(t, screenMenu, m.current, "esc should return to the menu")
	assert.False(t, m.quitting)
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testConfig(), nil, nil, discardLogger(), core.DefaultConfig())
	m, cmd := updateSession(t, m, runeKey("q"))
	assert.True(t, m.quitting, "q in the menu should quit the session")
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View(), "View should be empty after quitting")
}

func TestSessionBadSourceStaysInMenu(t *testing.T) {
	m := NewSessionModel(testConfig(), nil, nil, discardLogger(), core.DefaultConfig())
	m.menu.items = []Source{{Kind: SourceSaved, ID: "gone", Title: "Gone"}}

	m, _ = updateSession(t, m, enterKey)
	require.Equal(t, screenMenu, m.current, "a broken source should keep the menu")
	assert.NotEmpty(t, m.menu.notice, "menu should explain why the grid did not open")
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, nil, nil, core.DefaultConfig())
	require.NotEmpty(t, m.items, "menu should list the built-in patterns")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	assert.Equal(t, 0, m.cursor, "cursor should stay at the top")
	for range len(m.items) + 3 {
		next, _ = m.Update(downKey)
		m = next.(MenuModel)
	}
	assert.Equal(t, len(m.items)-1, m.cursor, "cursor should stop at the last item")

	next, cmd := m.Update(enterKey)
	m = next.(MenuModel)
	require.NotNil(t, m.Selected(), "enter should select the item under the cursor")
	assert.Equal(t, m.items[len(m.items)-1].ID, m.Selected().ID)
	assert.NotNil(t, cmd)
}
