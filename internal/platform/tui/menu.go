package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/layout"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var (
	menuSectionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	menuDetailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the grid picker.
type MenuModel struct {
	items       []Source
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keys        MenuKeyMap
	help        help.Model
	quitting    bool
	selected    *Source
	openHistory bool
	notice      string
}

// NewMenuModel creates a menu listing patterns and layouts.
func NewMenuModel(store *storage.Store, loader *layout.Loader, logger *log.Logger, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  Sources(store, loader, logger),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.History):
		m.openHistory = true
		return m, tea.Quit
	}
	return m, nil
}

// visibleRange returns the slice of items that fits the terminal.
func (m MenuModel) visibleRange() (int, int) {
	rows := m.height - 10
	if rows < 5 {
		rows = 5
	}
	if len(m.items) <= rows {
		return 0, len(m.items)
	}
	from := m.cursor - rows/2
	from = core.Clamp(from, 0, len(m.items)-rows)
	return from, from + rows
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("P A T H F I N D E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(infoStyle.Render("Pick a starting grid"), m.width))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(centerText(errorStyle.Render(m.notice), m.width))
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString(centerText(menuDetailStyle.Render("nothing to show"), m.width))
		b.WriteString("\n")
	}

	from, to := m.visibleRange()
	lastKind := SourceKind(-1)
	for i := from; i < to; i++ {
		item := m.items[i]
		if item.Kind != lastKind {
			b.WriteString(centerText(menuSectionStyle.Render(sectionTitle(item.Kind)), m.width))
			b.WriteString("\n")
			lastKind = item.Kind
		}

		line := "  " + menuItemStyle.Render(item.Title)
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.Title)
		}
		if item.Detail != "" {
			line += " " + menuDetailStyle.Render(fmt.Sprintf("(%s)", item.Detail))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

func sectionTitle(k SourceKind) string {
	switch k {
	case SourcePattern:
		return "Patterns"
	case SourceSaved:
		return "Saved layouts"
	case SourceFile:
		return "Layout files"
	default:
		return ""
	}
}

// WithNotice returns the menu with a message shown above the list.
func (m MenuModel) WithNotice(notice string) MenuModel {
	m.notice = notice
	return m
}

// Selected returns the selected source, or nil if none selected.
func (m MenuModel) Selected() *Source {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the run history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Source       *Source
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, loader *layout.Loader, logger *log.Logger, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, loader, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.Selected() != nil:
		result.Source = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
