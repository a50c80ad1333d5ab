package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
)

// VisualizerKeyMap defines the key bindings of the grid editor.
type VisualizerKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	ToggleWall  key.Binding
	PlaceStart  key.Binding
	PlaceFinish key.Binding
	Visualize   key.Binding
	Skip        key.Binding
	ClearWalls  key.Binding
	NextPattern key.Binding
	EditForm    key.Binding
	Save        key.Binding
	Refresh     key.Binding
	ToggleConn  key.Binding
	CycleSpeed  key.Binding
	Help        key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k VisualizerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Visualize, k.ToggleWall, k.PlaceStart, k.PlaceFinish, k.ClearWalls, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k VisualizerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ToggleWall, k.PlaceStart, k.PlaceFinish, k.ClearWalls, k.NextPattern},
		{k.Visualize, k.Skip, k.ToggleConn, k.CycleSpeed},
		{k.EditForm, k.Save, k.Refresh, k.Back, k.Quit},
	}
}

// DefaultVisualizerKeyMap returns default key bindings.
func DefaultVisualizerKeyMap() VisualizerKeyMap {
	return VisualizerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		ToggleWall: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "wall"),
		),
		PlaceStart: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start here"),
		),
		PlaceFinish: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "finish here"),
		),
		Visualize: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter/v", "visualize"),
		),
		Skip: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "skip replay"),
		),
		ClearWalls: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear walls"),
		),
		NextPattern: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next pattern"),
		),
		EditForm: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit size"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save layout"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		ToggleConn: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "4/8 moves"),
		),
		CycleSpeed: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "speed"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a visualizer action.
func (k VisualizerKeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Back, core.ActionBack},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.ToggleWall, core.ActionToggleWall},
		{k.PlaceStart, core.ActionPlaceStart},
		{k.PlaceFinish, core.ActionPlaceFinish},
		{k.Visualize, core.ActionVisualize},
		{k.Skip, core.ActionSkip},
		{k.ClearWalls, core.ActionClearWalls},
		{k.NextPattern, core.ActionNextPattern},
		{k.EditForm, core.ActionEditForm},
		{k.Save, core.ActionSave},
		{k.Refresh, core.ActionRefresh},
		{k.ToggleConn, core.ActionToggleConn},
		{k.CycleSpeed, core.ActionCycleSpeed},
		{k.Help, core.ActionHelp},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MenuKeyMap defines the key bindings of the layout picker.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	History key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
