package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

func seedRuns(t *testing.T, store *storage.Store) {
	t.Helper()
	runs := []storage.RunRecord{
		{Source: "maze", Rows: 9, Cols: 9, Connectivity: "4", Visited: 40, PathLength: 17, Reached: true, Duration: time.Millisecond},
		{Source: "divider", Rows: 9, Cols: 9, Connectivity: "4", Visited: 30},
		{Source: "maze", Rows: 9, Cols: 9, Connectivity: "8", Visited: 20, PathLength: 9, Reached: true},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}
}

func updateHistory(t *testing.T, m HistoryModel, msg tea.Msg) (HistoryModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	hm, ok := next.(HistoryModel)
	require.True(t, ok, "Update returned %T, expected HistoryModel", next)
	return hm, cmd
}

func TestHistoryFilters(t *testing.T) {
	store := openTestStore(t)
	seedRuns(t, store)

	m := NewHistoryModel(store, 100, 30)
	require.Equal(t, allSources, m.Source())
	assert.Len(t, m.Runs(), 3)
	require.Len(t, m.sources, 3, "sources should be all plus two")

	counts := map[string]int{"maze": 2, "divider": 1}
	for range 2 {
		m, _ = updateHistory(t, m, rightKey)
		assert.Len(t, m.Runs(), counts[m.Source()], "%s runs", m.Source())
	}

	m, _ = updateHistory(t, m, rightKey)
	assert.Equal(t, allSources, m.Source(), "filter should wrap back to all")
	m, _ = updateHistory(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.NotEqual(t, allSources, m.Source(), "left from all should wrap to the last source")
}

func TestHistoryView(t *testing.T) {
	store := openTestStore(t)
	seedRuns(t, store)

	view := NewHistoryModel(store, 120, 30).View()
	for _, want := range []string{"RUN HISTORY", "3 runs", "2 reached", "maze", "divider"} {
		assert.Contains(t, view, want)
	}

	empty := NewHistoryModel(openTestStore(t), 120, 30).View()
	assert.Contains(t, empty, "No runs recorded yet")

	none := NewHistoryModel(nil, 120, 30).View()
	assert.Contains(t, none, "unavailable", "history without a database should say so")
}

func TestHistoryBackAndQuit(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)

	back, cmd := updateHistory(t, m, escKey)
	assert.True(t, back.IsGoingBack(), "esc should leave the history")
	assert.NotNil(t, cmd)

	quit, _ := updateHistory(t, m, runeKey("q"))
	assert.True(t, quit.IsQuitting(), "q should quit")
}
