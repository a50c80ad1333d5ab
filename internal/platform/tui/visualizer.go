package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/layout"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
	"github.com/vovakirdan/tui-pathfinder/internal/playback"
	"github.com/vovakirdan/tui-pathfinder/internal/registry"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

// SourceCustom names grids that were drawn by hand.
const SourceCustom = "custom"

// headerLines is the number of lines drawn above the grid screen.
const headerLines = 2

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	splashStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 4).Align(lipgloss.Center)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true)
)

// mode is what the visualizer is currently accepting input for.
type mode int

const (
	modeEdit mode = iota
	modeForm
	modeSave
)

// dragKind is what a mouse drag is moving.
type dragKind int

const (
	dragNone dragKind = iota
	dragWalls
	dragStart
	dragFinish
)

// VisualizerOptions configures a visualizer.
type VisualizerOptions struct {
	Config config.Config
	Store  *storage.Store // optional; runs and saves skip it when nil
	Loader *layout.Loader // optional; saved layouts are also written here
	Logger *log.Logger
	Grid   *grid.Grid // initial grid; nil builds one from Config
	Source string     // pattern or layout ID of Grid
	Width  int
	Height int
}

// VisualizerModel edits a grid and replays searches on it.
type VisualizerModel struct {
	cfg    config.Config
	store  *storage.Store
	loader *layout.Loader
	logger *log.Logger
	keys   VisualizerKeyMap
	help   help.Model
	now    func() time.Time

	grid   *grid.Grid
	source string
	opts   pathfind.Options
	speed  config.SpeedPreset
	cursor grid.Coord

	player   *playback.Player
	result   *pathfind.Result
	gen      int
	lastTick time.Time

	drag     dragKind
	dragWall bool
	dragLast grid.Coord

	mode      mode
	form      FormModel
	nameInput textinput.Model

	splash    bool
	status    string
	statusErr bool

	width  int
	height int
	screen *core.Screen

	standalone bool
	quitting   bool
	backToMenu bool
}

// NewVisualizerModel creates a visualizer. Invalid search settings fall back
// to the defaults so a bad config never blocks the UI.
func NewVisualizerModel(o VisualizerOptions) VisualizerModel {
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := o.Grid
	if g == nil {
		built, err := o.Config.BuildGrid()
		if err != nil {
			logger.Warn("invalid grid config, using defaults", "error", err)
			built, _ = config.Default().BuildGrid()
		}
		g = built
	}

	opts, err := o.Config.SearchOptions()
	if err != nil {
		logger.Warn("invalid search config, using defaults", "error", err)
		opts = pathfind.DefaultOptions()
	}

	speed, err := config.ParseSpeedPreset(string(o.Config.Animation.Speed))
	if err != nil {
		speed = config.SpeedNormal
	}

	source := o.Source
	if source == "" {
		source = SourceCustom
	}

	h := help.New()
	h.ShowAll = false

	ti := textinput.New()
	ti.Prompt = "Save as: "
	ti.CharLimit = 64
	ti.Width = 32

	return VisualizerModel{
		cfg:       o.Config,
		store:     o.Store,
		loader:    o.Loader,
		logger:    logger,
		keys:      DefaultVisualizerKeyMap(),
		help:      h,
		now:       time.Now,
		grid:      g,
		source:    source,
		opts:      opts,
		speed:     speed,
		cursor:    g.Start(),
		nameInput: ti,
		splash:    o.Config.Splash.Enabled && o.Config.Splash.Duration > 0,
		width:     o.Width,
		height:    o.Height,
		screen:    core.NewScreen(o.Width, o.Height),
	}
}

// Init shows the splash, if any.
func (m VisualizerModel) Init() tea.Cmd {
	if m.splash {
		return splashCmd(m.cfg.Splash.Duration)
	}
	return nil
}

// Update handles messages.
func (m VisualizerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case splashDoneMsg:
		m.splash = false
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		if m.splash {
			m.splash = false
			return m, nil
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeSave:
			return m.updateSave(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.mode != modeEdit {
			return m, nil
		}
		m.splash = false
		return m.handleMouse(msg)
	}

	if m.mode == modeSave {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input in edit mode.
func (m VisualizerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dr, dc := action.Delta()
		m.cursor = grid.At(
			core.Clamp(m.cursor.Row+dr, 0, m.grid.Rows()-1),
			core.Clamp(m.cursor.Col+dc, 0, m.grid.Cols()-1),
		)

	case core.ActionToggleWall:
		if next, err := m.grid.ToggleWall(m.cursor.Row, m.cursor.Col); err == nil {
			m.setGrid(next, SourceCustom)
		}

	case core.ActionPlaceStart:
		if next, err := m.grid.RelocateStart(m.cursor.Row, m.cursor.Col); err == nil {
			m.setGrid(next, m.source)
		}

	case core.ActionPlaceFinish:
		if next, err := m.grid.RelocateFinish(m.cursor.Row, m.cursor.Col); err == nil {
			m.setGrid(next, m.source)
		}

	case core.ActionVisualize:
		return m.visualize()

	case core.ActionSkip:
		if m.player != nil {
			m.player.Skip()
			m.gen++
			m.setStatus(m.summary())
		}

	case core.ActionClearWalls:
		m.setGrid(m.grid.ClearWalls(), SourceCustom)
		m.setStatus("walls cleared")

	case core.ActionNextPattern:
		m.nextPattern()

	case core.ActionEditForm:
		m.cancelReplay()
		m.form = NewFormModel(m.grid)
		m.mode = modeForm

	case core.ActionSave:
		m.cancelReplay()
		m.nameInput.SetValue(m.suggestedID())
		m.nameInput.CursorEnd()
		m.mode = modeSave
		return m, m.nameInput.Focus()

	case core.ActionRefresh:
		m.refresh()

	case core.ActionToggleConn:
		if m.opts.Conn == pathfind.Conn4 {
			m.opts.Conn = pathfind.Conn8
		} else {
			m.opts.Conn = pathfind.Conn4
		}
		m.cancelReplay()
		m.setStatus(fmt.Sprintf("%s-way moves", m.opts.Conn))

	case core.ActionCycleSpeed:
		m.speed = m.speed.Next()
		m.setStatus(fmt.Sprintf("speed: %s", m.speed))
		if m.player != nil && !m.player.Done() {
			m.player.Retime(m.intervals())
			if m.player.Done() {
				m.setStatus(m.summary())
			}
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleMouse paints walls or drags the start and finish.
// A press on an open or walled cell toggles it, and every cell entered while
// the button is held takes the same state.
func (m VisualizerModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	originX, originY := m.gridOrigin()
	at, inside := cellAt(msg.X, msg.Y-headerLines, originX, originY, m.grid)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return m, nil
		}
		m.cursor = at
		m.dragLast = at
		switch {
		case at == m.grid.Start():
			m.drag = dragStart
		case at == m.grid.Finish():
			m.drag = dragFinish
		default:
			next, err := m.grid.ToggleWall(at.Row, at.Col)
			if err != nil {
				return m, nil
			}
			m.drag = dragWalls
			m.dragWall = next.IsBlocked(at)
			m.setGrid(next, SourceCustom)
		}

	case tea.MouseActionMotion:
		if m.drag == dragNone || !inside || at == m.dragLast {
			return m, nil
		}
		m.dragLast = at
		m.cursor = at
		m.dragTo(at)

	case tea.MouseActionRelease:
		m.drag = dragNone
	}

	return m, nil
}

// dragTo applies the current drag to a newly entered cell.
func (m *VisualizerModel) dragTo(at grid.Coord) {
	var (
		next *grid.Grid
		err  error
	)
	source := m.source
	switch m.drag {
	case dragWalls:
		if at == m.grid.Start() || at == m.grid.Finish() {
			return
		}
		next, err = m.grid.SetWall(at.Row, at.Col, m.dragWall)
		source = SourceCustom
	case dragStart:
		next, err = m.grid.RelocateStart(at.Row, at.Col)
	case dragFinish:
		next, err = m.grid.RelocateFinish(at.Row, at.Col)
	default:
		return
	}
	if err != nil || next == m.grid {
		return
	}
	m.setGrid(next, source)
}

// setGrid replaces the grid and cancels any replay of the previous one.
func (m *VisualizerModel) setGrid(g *grid.Grid, source string) {
	m.grid = g
	m.source = source
	m.cursor = grid.At(
		core.Clamp(m.cursor.Row, 0, g.Rows()-1),
		core.Clamp(m.cursor.Col, 0, g.Cols()-1),
	)
	m.cancelReplay()
}

// cancelReplay drops the current run so pending ticks are ignored.
func (m *VisualizerModel) cancelReplay() {
	m.gen++
	m.player = nil
	m.result = nil
	m.status = ""
	m.statusErr = false
}

func (m *VisualizerModel) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *VisualizerModel) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// nextPattern replaces the walls with the next registered pattern.
func (m *VisualizerModel) nextPattern() {
	id, ok := registry.Next(m.source)
	if !ok {
		m.setStatus("no patterns registered")
		return
	}
	next, err := registry.Apply(id, m.grid)
	if err != nil {
		m.setError(err)
		return
	}
	m.setGrid(next, id)
	if p, err := registry.Get(id); err == nil {
		m.setStatus("pattern: " + p.Title)
	}
}

// refresh rebuilds the grid from the config.
func (m *VisualizerModel) refresh() {
	g, err := m.cfg.BuildGrid()
	if err != nil {
		m.setError(err)
		return
	}
	m.setGrid(g, SourceCustom)
	m.cursor = g.Start()
	m.setStatus("grid refreshed")
}

// visualize runs the search and starts the replay.
func (m VisualizerModel) visualize() (tea.Model, tea.Cmd) {
	m.cancelReplay()

	began := m.now()
	res, err := pathfind.RunGrid(m.grid, pathfind.WithOptions(m.opts))
	elapsed := m.now().Sub(began)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.result = &res
	m.recordRun(res, elapsed)

	visit, path := m.intervals()
	m.player = playback.New(res.VisitedCoords(), res.PathCoords(), visit, path)
	m.player.Advance(0)
	m.lastTick = m.now()

	if m.player.Done() {
		m.setStatus(m.summary())
		return m, nil
	}
	return m, tickCmd(m.gen, m.player.Interval())
}

// intervals returns the replay intervals for the current speed.
func (m VisualizerModel) intervals() (visit, path time.Duration) {
	return config.ScaleInterval(m.cfg.Animation.VisitInterval, m.speed),
		config.ScaleInterval(m.cfg.Animation.PathInterval, m.speed)
}

// recordRun stores the run in the history. Failures are logged only.
func (m VisualizerModel) recordRun(res pathfind.Result, elapsed time.Duration) {
	if m.store == nil {
		return
	}
	rec := storage.NewRunRecord(m.source, m.grid, m.opts, res, elapsed)
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// handleTick advances the replay by the time since the previous tick.
func (m VisualizerModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.player == nil {
		return m, nil
	}

	dt := msg.Time.Sub(m.lastTick)
	m.lastTick = msg.Time
	if m.player.Advance(dt) == playback.PhaseDone {
		m.setStatus(m.summary())
		return m, nil
	}
	return m, tickCmd(m.gen, m.player.Interval())
}

// summary describes the finished run.
func (m VisualizerModel) summary() string {
	if m.result == nil {
		return ""
	}
	stats := m.result.Stats()
	if !stats.Reached {
		return fmt.Sprintf("no path: finish unreachable (%d cells visited)", stats.Visited)
	}
	return fmt.Sprintf("path of %d cells, %d cells visited", stats.PathLength, stats.Visited)
}

// updateForm forwards input to the grid form.
func (m VisualizerModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	switch {
	case m.form.Cancelled():
		m.mode = modeEdit
	case m.form.Submitted():
		m.mode = modeEdit
		m.setGrid(m.form.Result(), SourceCustom)
		m.cursor = m.grid.Start()
		m.setStatus(fmt.Sprintf("grid is now %dx%d", m.grid.Rows(), m.grid.Cols()))
	}
	return m, cmd
}

// updateSave handles the layout name prompt.
func (m VisualizerModel) updateSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.nameInput.Blur()
		m.mode = modeEdit
		return m, nil
	case "enter":
		id := strings.TrimSpace(m.nameInput.Value())
		if err := m.saveLayout(id); err != nil {
			m.setError(err)
			return m, nil
		}
		m.nameInput.Blur()
		m.mode = modeEdit
		m.source = id
		m.setStatus("saved layout " + id)
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// saveLayout writes the grid to the database and the layouts directory.
func (m VisualizerModel) saveLayout(id string) error {
	if !layout.ValidID(id) {
		return fmt.Errorf("%w: bad layout id %q", layout.ErrInvalid, id)
	}
	if m.store == nil && m.loader == nil {
		return fmt.Errorf("nowhere to save layout %q", id)
	}

	lay := layout.FromGrid(id, id, m.grid)
	if m.store != nil {
		if err := m.store.SaveLayout(lay); err != nil {
			return err
		}
	}
	if m.loader != nil {
		path, err := m.loader.Save(lay)
		if err != nil {
			return err
		}
		m.logger.Info("layout saved", "id", id, "path", path)
	}
	return nil
}

// suggestedID proposes a layout ID for the save prompt.
func (m VisualizerModel) suggestedID() string {
	if m.source != SourceCustom && !registry.Exists(m.source) && layout.ValidID(m.source) {
		return m.source
	}
	return fmt.Sprintf("layout-%s", m.now().Format("20060102-150405"))
}

// gridOrigin returns the screen position of the top-left grid cell.
func (m VisualizerModel) gridOrigin() (int, int) {
	w := m.grid.Cols() * cellWidth
	x := (m.width - w) / 2
	if x < 1 {
		x = 1
	}
	return x, 1
}

// replayOverlay returns the replay state to draw.
func (m VisualizerModel) replayOverlay() overlay {
	var o overlay
	if m.player != nil {
		o = newOverlay(m.player.Visited(), m.player.Path())
	} else {
		o = newOverlay(nil, nil)
	}
	o.cursor = m.cursor
	o.cursorOn = m.mode == modeEdit
	return o
}

// View renders the visualizer.
func (m VisualizerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.splash {
		return m.viewSplash()
	}
	if m.mode == modeForm {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.View())
	}

	originX, originY := m.gridOrigin()
	w := originX + m.grid.Cols()*cellWidth + 1
	if m.width > w {
		w = m.width
	}
	m.screen.Resize(w, m.grid.Rows()+2)
	m.screen.Clear()
	drawGrid(m.screen, m.grid, originX, originY, m.replayOverlay())

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("P A T H F I N D E R")+"  "+infoStyle.Render(m.info()), m.width))
	b.WriteString("\n\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	switch {
	case m.mode == modeSave:
		b.WriteString(m.nameInput.View())
	case m.statusErr:
		b.WriteString(errorStyle.Render(m.status))
	case m.player != nil && !m.player.Done():
		shown, total := m.player.Progress()
		b.WriteString(statusStyle.Render(fmt.Sprintf("%s %d/%d", m.player.Phase(), shown, total)))
	default:
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")

	if m.cfg.UI.ShowHelp || m.help.ShowAll {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// info is the one-line summary next to the title.
func (m VisualizerModel) info() string {
	return fmt.Sprintf("%s • %dx%d • %d walls • %s-way • %s",
		m.source, m.grid.Rows(), m.grid.Cols(), m.grid.WallCount(), m.opts.Conn, m.speed)
}

func (m VisualizerModel) viewSplash() string {
	box := splashStyle.Render(titleStyle.Render(m.cfg.Splash.Title) + "\n\n" + subtitleStyle.Render(m.cfg.Splash.Subtitle))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Grid returns the grid being edited.
func (m VisualizerModel) Grid() *grid.Grid {
	return m.grid
}

// Source returns the pattern or layout ID of the grid.
func (m VisualizerModel) Source() string {
	return m.source
}

// BackToMenu reports whether the user asked to return to the menu.
func (m VisualizerModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the user asked to quit.
func (m VisualizerModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a standalone visualizer program. It returns true when the user
// asked to go back to the menu rather than quit.
func Run(o VisualizerOptions) (bool, error) {
	model := NewVisualizerModel(o)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(VisualizerModel)
	return ok && m.BackToMenu(), nil
}
