package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/layout"
	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var (
	flagLayout  string
	flagPattern string
	flagConn    string
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Edit a grid and watch the shortest-path search",
	Long: `Open the grid editor. Paint walls with the mouse or the keyboard and
press Enter to replay the search.

Controls:
  Arrows/hjkl  - Move cursor
  Space        - Toggle wall (or click and drag)
  S / F        - Place start / finish
  Enter/V      - Visualize
  X            - Skip replay
  C            - Clear walls
  N            - Next pattern
  E            - Edit grid size and positions
  Ctrl+S       - Save layout
  R            - Refresh grid
  T            - Toggle 4/8-way moves
  >            - Cycle speed
  Esc          - Back to menu
  Q            - Quit

Examples:
  pathfinder visualize
  pathfinder visualize --pattern comb
  pathfinder visualize --layout corridor --conn 8`,
	Args: cobra.NoArgs,
	Run:  runVisualize,
}

func init() {
	visualizeCmd.Flags().StringVar(&flagLayout, "layout", "", "Layout file path or saved layout name")
	visualizeCmd.Flags().StringVar(&flagPattern, "pattern", "", "Wall pattern ID (see 'pathfinder patterns')")
	visualizeCmd.Flags().StringVar(&flagConn, "conn", "", "Neighbor connectivity: 4 or 8")
}

func runVisualize(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagConn != "" {
		cfg.Search.Connectivity = flagConn
		if err := cfg.Validate(); err != nil {
			fail("%v", err)
		}
	}

	logger, closeLog := tuiLogger()
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}
	loader := newLoader(cfg)

	g, source, err := initialGrid(cfg, store, loader)
	if err != nil {
		fail("%v", err)
	}

	back, err := runVisualizer(cfg, store, loader, logger, g, source)
	if err != nil {
		fail("%v", err)
	}
	if back {
		cfg.Splash.Enabled = false
		menuLoop(cfg, store, loader, logger)
	}
}

// initialGrid picks the grid from --layout, --pattern or the config.
func initialGrid(cfg config.Config, store *storage.Store, loader *layout.Loader) (*grid.Grid, string, error) {
	var (
		src tui.Source
		err error
	)
	switch {
	case flagLayout != "":
		src, err = tui.FindSource(flagLayout, store, loader)
	case flagPattern != "":
		src = tui.Source{Kind: tui.SourcePattern, ID: flagPattern}
	default:
		g, err := cfg.BuildGrid()
		return g, tui.SourceCustom, err
	}
	if err != nil {
		return nil, "", err
	}

	g, err := src.Grid(cfg, store, loader)
	if err != nil {
		return nil, "", err
	}
	return g, src.ID, nil
}

// runVisualizer runs one visualizer program sized to the terminal.
func runVisualizer(cfg config.Config, store *storage.Store, loader *layout.Loader, logger *log.Logger, g *grid.Grid, source string) (bool, error) {
	rt := runtimeConfig(cfg)
	logger.Debug("visualizer started", "source", source, "rows", g.Rows(), "cols", g.Cols())
	return tui.Run(tui.VisualizerOptions{
		Config: cfg,
		Store:  store,
		Loader: loader,
		Logger: logger,
		Grid:   g,
		Source: source,
		Width:  rt.ScreenW,
		Height: rt.ScreenH,
	})
}
