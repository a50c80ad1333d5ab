package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var (
	flagRows        int
	flagCols        int
	flagStart       string
	flagFinish      string
	flagRecord      bool
	flagShowVisited bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print the shortest path for a grid",
	Long: `Run the search once and print the grid with the path marked.

Legend:
  S F   - start and finish
  #     - wall
  o     - path
  +     - visited (with --visited)

The grid comes from --layout, --pattern or the config; --rows, --cols,
--start and --finish override the configured grid.

Examples:
  pathfinder solve
  pathfinder solve --pattern maze --conn 8
  pathfinder solve --rows 10 --cols 20 --start 0,0 --finish 9,19
  pathfinder solve --layout ./corridor.yaml --record`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagLayout, "layout", "", "Layout file path or saved layout name")
	solveCmd.Flags().StringVar(&flagPattern, "pattern", "", "Wall pattern ID")
	solveCmd.Flags().StringVar(&flagConn, "conn", "", "Neighbor connectivity: 4 or 8")
	solveCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (overrides config)")
	solveCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid cols (overrides config)")
	solveCmd.Flags().StringVar(&flagStart, "start", "", "Start cell as row,col")
	solveCmd.Flags().StringVar(&flagFinish, "finish", "", "Finish cell as row,col")
	solveCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the run to the history")
	solveCmd.Flags().BoolVar(&flagShowVisited, "visited", false, "Mark visited cells")
}

func runSolve(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if err := applyGridFlags(&cfg); err != nil {
		fail("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	logger := newLogger(os.Stderr)
	var store *storage.Store
	if flagRecord || flagLayout != "" {
		store = openStore(cfg, logger)
		if store != nil {
			defer store.Close()
		}
	}

	g, source, err := initialGrid(cfg, store, newLoader(cfg))
	if err != nil {
		fail("%v", err)
	}
	opts, err := cfg.SearchOptions()
	if err != nil {
		fail("%v", err)
	}

	began := time.Now()
	res, err := pathfind.RunGrid(g, pathfind.WithOptions(opts))
	elapsed := time.Since(began)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println(renderSolution(g, res, flagShowVisited))
	fmt.Println()
	fmt.Println(solutionSummary(res, elapsed))

	if flagRecord {
		if store == nil {
			fail("cannot record run without a database")
		}
		rec, err := store.SaveRun(storage.NewRunRecord(source, g, opts, res, elapsed))
		if err != nil {
			fail("%v", err)
		}
		logger.Info("run recorded", "id", rec.RunID, "source", source)
	}
}

// applyGridFlags overrides the configured grid with --rows, --cols, --start and --finish.
func applyGridFlags(cfg *config.Config) error {
	if flagConn != "" {
		cfg.Search.Connectivity = flagConn
	}
	if flagRows > 0 {
		cfg.Grid.Rows = flagRows
	}
	if flagCols > 0 {
		cfg.Grid.Cols = flagCols
	}
	if flagStart != "" {
		p, err := parsePoint(flagStart)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		cfg.Grid.Start = p
	}
	if flagFinish != "" {
		p, err := parsePoint(flagFinish)
		if err != nil {
			return fmt.Errorf("--finish: %w", err)
		}
		cfg.Grid.Finish = p
	}
	return nil
}

// parsePoint parses "row,col".
func parsePoint(s string) (config.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return config.Point{}, fmt.Errorf("expected row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return config.Point{}, fmt.Errorf("bad row in %q", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return config.Point{}, fmt.Errorf("bad col in %q", s)
	}
	return config.Point{Row: row, Col: col}, nil
}

var (
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	visitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("31"))
	roleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// renderSolution draws g with the path and optionally the visited cells.
// Role and wall cells keep their grid glyph.
func renderSolution(g *grid.Grid, res pathfind.Result, showVisited bool) string {
	onPath := make(map[grid.Coord]bool)
	for _, c := range res.PathCoords() {
		onPath[c] = true
	}
	visited := make(map[grid.Coord]bool)
	if showVisited {
		for _, c := range res.VisitedCoords() {
			visited[c] = true
		}
	}

	var b strings.Builder
	for row := range g.Rows() {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := range g.Cols() {
			c, _ := g.Cell(row, col)
			at := c.Coord()
			switch {
			case c.IsStart || c.IsFinish:
				b.WriteString(roleStyle.Render(string(grid.Glyph(c))))
			case onPath[at]:
				b.WriteString(pathStyle.Render("o"))
			case visited[at] && !c.IsBlocked:
				b.WriteString(visitedStyle.Render("+"))
			default:
				b.WriteRune(grid.Glyph(c))
			}
		}
	}
	return b.String()
}

// solutionSummary describes the run in one line.
func solutionSummary(res pathfind.Result, elapsed time.Duration) string {
	stats := res.Stats()
	if !stats.Reached {
		return fmt.Sprintf("No path: finish unreachable after visiting %d cells (%s)", stats.Visited, elapsed.Round(time.Microsecond))
	}
	return fmt.Sprintf("Path of %d cells (%d steps), %d cells visited (%s)",
		stats.PathLength, stats.PathLength-1, stats.Visited, elapsed.Round(time.Microsecond))
}
