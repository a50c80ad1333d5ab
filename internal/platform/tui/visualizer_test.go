package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/layout"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
	"github.com/vovakirdan/tui-pathfinder/internal/playback"
	"github.com/vovakirdan/tui-pathfinder/internal/registry"
)

// mouseAt returns a mouse message over the given grid cell.
func mouseAt(m VisualizerModel, at grid.Coord, action tea.MouseAction) tea.MouseMsg {
	originX, originY := m.gridOrigin()
	return tea.MouseMsg{
		X:      originX + at.Col*cellWidth,
		Y:      originY + at.Row + headerLines,
		Action: action,
		Button: tea.MouseButtonLeft,
	}
}

func TestVisualizerToggleWallAtCursor(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	require.Equal(t, grid.At(0, 0), m.cursor, "cursor should start on the start cell")

	m, _ = updateVisualizer(t, m, rightKey)
	m, _ = updateVisualizer(t, m, spaceKey)
	assert.True(t, m.Grid().IsBlocked(grid.At(0, 1)), "space should wall the cell under the cursor")
	assert.Equal(t, SourceCustom, m.Source())

	m, _ = updateVisualizer(t, m, spaceKey)
	assert.False(t, m.Grid().IsBlocked(grid.At(0, 1)), "second space should clear the wall")
}

func TestVisualizerCursorStaysInside(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	for range 10 {
		m, _ = updateVisualizer(t, m, rightKey)
		m, _ = updateVisualizer(t, m, downKey)
	}
	assert.Equal(t, grid.At(2, 2), m.cursor, "cursor should clamp at the corner")
}

func TestVisualizerPlaceStartAndFinish(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	m, _ = updateVisualizer(t, m, downKey)
	m, _ = updateVisualizer(t, m, runeKey("s"))
	m, _ = updateVisualizer(t, m, rightKey)
	m, _ = updateVisualizer(t, m, runeKey("f"))

	assert.Equal(t, grid.At(1, 0), m.Grid().Start())
	assert.Equal(t, grid.At(1, 1), m.Grid().Finish())
}

func TestVisualizerReplay(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)

	m, cmd := updateVisualizer(t, m, enterKey)
	require.NotNil(t, cmd, "visualize should schedule a tick")
	require.NotNil(t, m.player)
	require.Equal(t, playback.PhaseVisiting, m.player.Phase())
	assert.Len(t, m.player.Visited(), 1, "first visited cell should show at once")

	m, cmd = updateVisualizer(t, m, TickMsg{Gen: m.gen, Time: m.lastTick.Add(time.Hour)})
	require.Equal(t, playback.PhaseTracing, m.player.Phase())
	assert.NotNil(t, cmd, "tracing should keep ticking")

	m, cmd = updateVisualizer(t, m, TickMsg{Gen: m.gen, Time: m.lastTick.Add(time.Hour)})
	require.True(t, m.player.Done(), "Phase() = %v, expected done", m.player.Phase())
	assert.Nil(t, cmd, "a finished replay should stop ticking")
	assert.Len(t, m.player.Visited(), 9)
	assert.Len(t, m.player.Path(), 5)
	assert.Equal(t, "path of 5 cells, 9 cells visited", m.status)
}

func TestVisualizerEditCancelsReplay(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	m, _ = updateVisualizer(t, m, enterKey)
	staleGen := m.gen

	m, _ = updateVisualizer(t, m, rightKey)
	m, _ = updateVisualizer(t, m, spaceKey)
	require.Nil(t, m.player, "editing should drop the replay")

	_, cmd := updateVisualizer(t, m, TickMsg{Gen: staleGen, Time: time.Now()})
	assert.Nil(t, cmd, "ticks of a cancelled replay should be ignored")
}

func TestVisualizerSkip(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	m, _ = updateVisualizer(t, m, enterKey)
	gen := m.gen

	m, _ = updateVisualizer(t, m, runeKey("x"))
	assert.True(t, m.player.Done(), "x should finish the replay")

	_, cmd := updateVisualizer(t, m, TickMsg{Gen: gen, Time: time.Now()})
	assert.Nil(t, cmd, "pending tick after skip should be ignored")
}

func TestVisualizerInstantSpeed(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	m.speed = config.SpeedInstant

	m, cmd := updateVisualizer(t, m, enterKey)
	assert.Nil(t, cmd, "instant replay should not tick")
	assert.True(t, m.player.Done(), "instant replay should finish at once")
}

func TestVisualizerUnreachableFinish(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	m.speed = config.SpeedInstant

	// Wall the finish in.
	for _, c := range []grid.Coord{grid.At(1, 2), grid.At(2, 1), grid.At(1, 1)} {
		next, err := m.grid.ToggleWall(c.Row, c.Col)
		require.NoError(t, err)
		m.grid = next
	}

	m, _ = updateVisualizer(t, m, enterKey)
	assert.Empty(t, m.player.Path())
	assert.Regexp(t, `^no path`, m.status)
}

func TestVisualizerToggleConnectivity(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	m.speed = config.SpeedInstant

	m, _ = updateVisualizer(t, m, runeKey("t"))
	require.Equal(t, pathfind.Conn8, m.opts.Conn)
	m, _ = updateVisualizer(t, m, enterKey)
	assert.Len(t, m.player.Path(), 3, "diagonal path")

	m, _ = updateVisualizer(t, m, runeKey("t"))
	assert.Equal(t, pathfind.Conn4, m.opts.Conn)
}

func TestVisualizerCycleSpeed(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	m, _ = updateVisualizer(t, m, runeKey(">"))
	assert.Equal(t, config.SpeedFast, m.speed)
}

func TestVisualizerCycleSpeedDuringReplay(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	m, _ = updateVisualizer(t, m, enterKey)
	m, _ = updateVisualizer(t, m, TickMsg{Gen: m.gen, Time: m.lastTick.Add(25 * time.Millisecond)})
	require.Len(t, m.player.Visited(), 3)

	m, _ = updateVisualizer(t, m, runeKey(">"))
	assert.Equal(t, 2*time.Millisecond, m.player.Interval(), "replay should take the fast pace")
	assert.Len(t, m.player.Visited(), 3, "speed change should keep progress")

	m, _ = updateVisualizer(t, m, runeKey(">"))
	require.True(t, m.player.Done(), "instant should finish the replay, phase %v", m.player.Phase())
	assert.Equal(t, "path of 5 cells, 9 cells visited", m.status)
}

func TestVisualizerMouseDrag(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)

	m, _ = updateVisualizer(t, m, mouseAt(m, grid.At(1, 0), tea.MouseActionPress))
	m, _ = updateVisualizer(t, m, mouseAt(m, grid.At(1, 1), tea.MouseActionMotion))
	m, _ = updateVisualizer(t, m, mouseAt(m, grid.At(1, 2), tea.MouseActionMotion))
	m, _ = updateVisualizer(t, m, mouseAt(m, grid.At(1, 2), tea.MouseActionRelease))
	m, _ = updateVisualizer(t, m, mouseAt(m, grid.At(0, 1), tea.MouseActionMotion))

	for _, c := range []grid.Coord{grid.At(1, 0), grid.At(1, 1), grid.At(1, 2)} {
		assert.True(t, m.Grid().IsBlocked(c), "%v should be walled by the drag", c)
	}
	assert.False(t, m.Grid().IsBlocked(grid.At(0, 1)), "motion after release should not paint")

	// A drag that starts on a wall erases.
	m, _ = updateVisualizer(t, m, mouseAt(m, grid.At(1, 1), tea.MouseActionPress))
	m, _ = updateVisualizer(t, m, mouseAt(m, grid.At(1, 2), tea.MouseActionMotion))
	assert.False(t, m.Grid().IsBlocked(grid.At(1, 1)), "drag from a wall should clear walls")
	assert.False(t, m.Grid().IsBlocked(grid.At(1, 2)), "drag from a wall should clear walls")
	assert.True(t, m.Grid().IsBlocked(grid.At(1, 0)), "cells outside the drag should keep their walls")
}

func TestVisualizerMouseDragsStart(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)

	m, _ = updateVisualizer(t, m, mouseAt(m, grid.At(0, 0), tea.MouseActionPress))
	m, _ = updateVisualizer(t, m, mouseAt(m, grid.At(0, 1), tea.MouseActionMotion))
	m, _ = updateVisualizer(t, m, mouseAt(m, grid.At(1, 1), tea.MouseActionMotion))
	m, _ = updateVisualizer(t, m, mouseAt(m, grid.At(1, 1), tea.MouseActionRelease))

	assert.Equal(t, grid.At(1, 1), m.Grid().Start())
	assert.Zero(t, m.Grid().WallCount(), "dragging the start should not paint walls")
}

func TestVisualizerMouseOutsideGrid(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	m, _ = updateVisualizer(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, dragNone, m.drag, "a press outside the grid should not start a drag")
	assert.Zero(t, m.Grid().WallCount())
}

func TestVisualizerClearAndRefresh(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	m, _ = updateVisualizer(t, m, rightKey)
	m, _ = updateVisualizer(t, m, spaceKey)
	m, _ = updateVisualizer(t, m, runeKey("c"))
	assert.Zero(t, m.Grid().WallCount(), "c should clear walls")

	m, _ = updateVisualizer(t, m, runeKey("s"))
	m, _ = updateVisualizer(t, m, runeKey("r"))
	assert.Equal(t, grid.At(0, 0), m.Grid().Start(), "refresh should restore the configured start")
}

func TestVisualizerNextPattern(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	infos := registry.List()
	require.GreaterOrEqual(t, len(infos), 2, "expected built-in patterns")

	m, _ = updateVisualizer(t, m, runeKey("n"))
	assert.Equal(t, infos[0].ID, m.Source())
	m, _ = updateVisualizer(t, m, runeKey("n"))
	assert.Equal(t, infos[1].ID, m.Source())
}

func TestVisualizerForm(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)

	m, _ = updateVisualizer(t, m, runeKey("e"))
	require.Equal(t, modeForm, m.mode)
	m, _ = updateVisualizer(t, m, escKey)
	require.Equal(t, modeEdit, m.mode, "esc should close the form")

	m, _ = updateVisualizer(t, m, runeKey("e"))
	m.form.inputs[fieldRows].SetValue("5")
	m.form.inputs[fieldCols].SetValue("7")
	m, _ = updateVisualizer(t, m, ctrlSKey)
	require.Equal(t, modeEdit, m.mode, "submit should close the form, err %q", m.form.Err())
	assert.Equal(t, 5, m.Grid().Rows())
	assert.Equal(t, 7, m.Grid().Cols())
}

func TestVisualizerRecordsRunsAndSavesLayouts(t *testing.T) {
	store := openTestStore(t)
	loader := layout.NewLoader(t.TempDir())
	m := newTestVisualizer(t, store, loader)
	m.speed = config.SpeedInstant

	m, _ = updateVisualizer(t, m, enterKey)
	runs, err := store.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 5, runs[0].PathLength)
	assert.Equal(t, SourceCustom, runs[0].Source)

	m, _ = updateVisualizer(t, m, ctrlSKey)
	require.Equal(t, modeSave, m.mode, "ctrl+s should open the save prompt")
	m.nameInput.SetValue("bad id!")
	m, _ = updateVisualizer(t, m, enterKey)
	assert.Equal(t, modeSave, m.mode, "an invalid id should keep the prompt open")
	assert.True(t, m.statusErr)

	m.nameInput.SetValue("corner")
	m, _ = updateVisualizer(t, m, enterKey)
	require.Equal(t, modeEdit, m.mode, "save failed: %s", m.status)
	assert.Equal(t, "corner", m.Source())

	saved, err := store.LoadLayout("corner")
	require.NoError(t, err)
	assert.Equal(t, 3, saved.Rows)
	assert.Equal(t, grid.At(2, 2), saved.Finish)

	_, err = loader.LoadByID("corner")
	assert.NoError(t, err, "layout file not written")
}

func TestVisualizerBackAndQuit(t *testing.T) {
	m := newTestVisualizer(t, nil, nil)
	back, cmd := updateVisualizer(t, m, escKey)
	assert.True(t, back.BackToMenu(), "esc should ask for the menu")
	assert.Nil(t, cmd, "embedded visualizer should not quit the program on back")

	m.standalone = true
	_, cmd = updateVisualizer(t, m, escKey)
	assert.NotNil(t, cmd, "standalone visualizer should quit on back")

	quit, cmd := updateVisualizer(t, m, runeKey("q"))
	assert.True(t, quit.IsQuitting(), "q should quit")
	assert.NotNil(t, cmd)
	assert.Empty(t, quit.View(), "View should be empty after quitting")
}

func TestVisualizerSplash(t *testing.T) {
	cfg := testConfig()
	cfg.Splash.Enabled = true
	cfg.Splash.Duration = time.Second
	m := NewVisualizerModel(VisualizerOptions{Config: cfg, Width: 80, Height: 24})

	require.NotNil(t, m.Init(), "Init should schedule the splash timeout")
	assert.Contains(t, m.View(), cfg.Splash.Title)

	m, _ = updateVisualizer(t, m, spaceKey)
	assert.False(t, m.splash, "a key should dismiss the splash")
	assert.Zero(t, m.Grid().WallCount(), "the dismissing key should not reach the editor")

	m.splash = true
	m, _ = updateVisualizer(t, m, splashDoneMsg{})
	assert.False(t, m.splash, "splash should hide after its duration")
}

func TestVisualizerView(t *testing.T) {
	view := newTestVisualizer(t, nil, nil).View()
	for _, want := range []string{"P A T H F I N D E R", "custom", "3x3"} {
		assert.Contains(t, view, want)
	}
}
