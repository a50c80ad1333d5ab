package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorAccent:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorWall:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorStart:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorFinish:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorVisited:  lipgloss.NewStyle().Foreground(lipgloss.Color("31")),
	core.ColorFrontier: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorPath:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorCursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
	core.ColorError:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// cellWidth is the number of screen columns per grid cell; two columns make
// cells look roughly square in most terminal fonts.
const cellWidth = 2

// overlay is the replay state drawn on top of the grid.
type overlay struct {
	visited  map[grid.Coord]bool
	path     map[grid.Coord]bool
	frontier grid.Coord
	hasFront bool
	cursor   grid.Coord
	cursorOn bool
}

func newOverlay(visited, path []grid.Coord) overlay {
	o := overlay{
		visited: make(map[grid.Coord]bool, len(visited)),
		path:    make(map[grid.Coord]bool, len(path)),
	}
	for _, c := range visited {
		o.visited[c] = true
	}
	for _, c := range path {
		o.path[c] = true
	}
	if len(visited) > 0 && len(path) == 0 {
		o.frontier = visited[len(visited)-1]
		o.hasFront = true
	}
	return o
}

// gridRect returns the screen area covered by a rows x cols grid drawn at
// origin, excluding the surrounding box.
func gridRect(originX, originY, rows, cols int) core.Rect {
	return core.NewRect(originX, originY, cols*cellWidth, rows)
}

// drawGrid paints g into dst at origin with a box around it.
func drawGrid(dst *core.Screen, g *grid.Grid, originX, originY int, o overlay) {
	area := gridRect(originX, originY, g.Rows(), g.Cols())
	dst.DrawBox(core.NewRect(area.X-1, area.Y-1, area.W+2, area.H+2), core.ColorDim)

	for row := range g.Rows() {
		for col := range g.Cols() {
			c, _ := g.Cell(row, col)
			r, color := cellLook(c, o)
			x := originX + col*cellWidth
			y := originY + row
			dst.SetColored(x, y, r, color)
			dst.SetColored(x+1, y, r, color)
			if o.cursorOn && o.cursor == c.Coord() {
				dst.SetColored(x, y, '[', core.ColorCursor)
				dst.SetColored(x+1, y, ']', core.ColorCursor)
			}
		}
	}
}

// cellLook picks the glyph and color of one grid cell.
func cellLook(c grid.Cell, o overlay) (rune, core.Color) {
	at := c.Coord()
	switch {
	case c.IsStart:
		return '▶', core.ColorStart
	case c.IsFinish:
		return '◎', core.ColorFinish
	case c.IsBlocked:
		return '█', core.ColorWall
	case o.path[at]:
		return '●', core.ColorPath
	case o.hasFront && o.frontier == at:
		return '▓', core.ColorFrontier
	case o.visited[at]:
		return '░', core.ColorVisited
	default:
		return '·', core.ColorDim
	}
}

// cellAt maps a screen position to a grid coordinate.
func cellAt(x, y, originX, originY int, g *grid.Grid) (grid.Coord, bool) {
	if !gridRect(originX, originY, g.Rows(), g.Cols()).Contains(x, y) {
		return grid.Coord{}, false
	}
	return grid.At(y-originY, (x-originX)/cellWidth), true
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
