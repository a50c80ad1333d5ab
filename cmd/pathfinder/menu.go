package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/layout"
	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a pattern or layout, then visualize it",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to open a grid.
Leaving the visualizer with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Open grid
  Tab          - Run history
  Q            - Quit

Examples:
  pathfinder menu
  pathfinder menu --speed fast`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := tuiLogger()
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}
	menuLoop(cfg, store, newLoader(cfg), logger)
}

// menuLoop alternates between the menu, the visualizer and the history
// until the user quits. The splash is shown only before the first grid.
func menuLoop(cfg config.Config, store *storage.Store, loader *layout.Loader, logger *log.Logger) {
	rt := runtimeConfig(cfg)
	for {
		result, err := tui.RunMenu(store, loader, logger, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		rt = result.Config

		if result.Quit {
			return
		}

		if result.WantsHistory {
			goBack, err := tui.RunHistory(store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return
		}

		src := result.Source
		if src == nil {
			return
		}
		g, err := src.Grid(cfg, store, loader)
		if err != nil {
			logger.Warn("cannot open grid", "source", src.ID, "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		back, err := runVisualizer(cfg, store, loader, logger, g, src.ID)
		cfg.Splash.Enabled = false
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running visualizer: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
