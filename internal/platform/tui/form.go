package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// Form field order.
const (
	fieldStartRow = iota
	fieldStartCol
	fieldFinishRow
	fieldFinishCol
	fieldRows
	fieldCols
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Start row",
	"Start col",
	"Finish row",
	"Finish col",
	"Rows",
	"Cols",
}

var errFieldNotNumber = errors.New("must be a whole number")

var (
	formTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	formLabelStyle = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("250"))
	formFocusStyle = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("213")).Bold(true)
	formErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	formHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	formBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 2)
)

// FormModel edits the grid size and the start and finish positions.
// Submitting rebuilds the grid, so painted walls are dropped.
type FormModel struct {
	inputs    [fieldCount]textinput.Model
	focus     int
	err       string
	result    *grid.Grid
	submitted bool
	cancelled bool
}

// NewFormModel creates a form prefilled from g.
func NewFormModel(g *grid.Grid) FormModel {
	values := [fieldCount]int{
		g.Start().Row, g.Start().Col,
		g.Finish().Row, g.Finish().Col,
		g.Rows(), g.Cols(),
	}

	var f FormModel
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 4
		ti.Width = 6
		ti.Prompt = ""
		ti.SetValue(strconv.Itoa(values[i]))
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()
	return f
}

// Update handles one message.
func (f FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			f.cancelled = true
			return f, nil
		case "enter":
			if f.focus < fieldCount-1 {
				return f.setFocus(f.focus + 1), nil
			}
			return f.submit(), nil
		case "ctrl+s":
			return f.submit(), nil
		case "tab", "down":
			return f.setFocus((f.focus + 1) % fieldCount), nil
		case "shift+tab", "up":
			return f.setFocus((f.focus + fieldCount - 1) % fieldCount), nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f FormModel) setFocus(i int) FormModel {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
	return f
}

// submit validates the fields and builds the new grid.
func (f FormModel) submit() FormModel {
	var values [fieldCount]int
	for i, in := range f.inputs {
		v, err := strconv.Atoi(strings.TrimSpace(in.Value()))
		if err != nil {
			f.err = fmt.Sprintf("%s: %v", fieldLabels[i], errFieldNotNumber)
			return f.setFocus(i)
		}
		values[i] = v
	}

	rows, cols := values[fieldRows], values[fieldCols]
	if rows > config.MaxGridSide || cols > config.MaxGridSide {
		f.err = fmt.Sprintf("grid must be at most %dx%d", config.MaxGridSide, config.MaxGridSide)
		return f
	}

	g, err := grid.Resize(rows, cols,
		grid.At(values[fieldStartRow], values[fieldStartCol]),
		grid.At(values[fieldFinishRow], values[fieldFinishCol]))
	if err != nil {
		f.err = err.Error()
		return f
	}

	f.err = ""
	f.result = g
	f.submitted = true
	return f
}

// Submitted reports whether the form produced a grid.
func (f FormModel) Submitted() bool {
	return f.submitted
}

// Cancelled reports whether the user left without submitting.
func (f FormModel) Cancelled() bool {
	return f.cancelled
}

// Result returns the grid built on submit.
func (f FormModel) Result() *grid.Grid {
	return f.result
}

// Err returns the last validation message, if any.
func (f FormModel) Err() string {
	return f.err
}

// View renders the form.
func (f FormModel) View() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render("Grid settings"))
	b.WriteString("\n\n")
	for i, in := range f.inputs {
		label := formLabelStyle
		if i == f.focus {
			label = formFocusStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if f.err != "" {
		b.WriteString(formErrStyle.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString(formHintStyle.Render("tab: next • enter: apply • esc: cancel"))
	return formBoxStyle.Render(b.String())
}
