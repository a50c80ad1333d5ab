// pathfinder draws obstacle grids in the terminal and animates a shortest-path
// search across them.
//
// Usage:
//
//	pathfinder visualize        - Edit a grid and watch the search
//	pathfinder solve            - Print the shortest path without a UI
//	pathfinder menu             - Pick a pattern or saved layout interactively
//	pathfinder patterns         - List built-in wall patterns
//	pathfinder layouts ...      - Manage saved layouts
//	pathfinder history          - Show recent runs
//	pathfinder serve            - Start SSH server for remote sessions
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.pathfinder/config.yaml)
//	--db <path>      - Database path (default: ~/.pathfinder/pathfinder.db)
//	--speed <preset> - Replay speed: slow, normal, fast, instant
//	--debug          - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pathfinder/internal/config"
	"github.com/vovakirdan/tui-pathfinder/internal/core"
	"github.com/vovakirdan/tui-pathfinder/internal/layout"
	// Import patterns to register them
	_ "github.com/vovakirdan/tui-pathfinder/internal/patterns"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSpeed  string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "Pathfinder - watch shortest-path searches in your terminal",
	Long: `Pathfinder lets you paint walls on a grid, place a start and a finish,
and watch a shortest-path search spread across it cell by cell.

Available commands:
  visualize - Edit a grid and replay the search
  solve     - Print the shortest path without a UI
  menu      - Pick a pattern or saved layout
  patterns  - List built-in wall patterns
  layouts   - List, show, import, export and delete layouts
  history   - Show recent runs
  serve     - Start SSH server for remote sessions

Examples:
  pathfinder visualize
  pathfinder visualize --pattern maze --conn 8
  pathfinder solve --layout ./corridor.yaml
  pathfinder serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Replay speed: slow, normal, fast, instant")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(visualizeCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates a logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pathfinder",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// tuiLogger logs to ~/.pathfinder/pathfinder.log, since the alternate screen
// owns the terminal while a UI is running. The returned func closes the file.
func tuiLogger() (*log.Logger, func()) {
	path := config.UserPath("pathfinder.log")
	if path == "" {
		return newLogger(io.Discard), func() {}
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(filepath.Dir(path), 0o755)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// loadConfig loads and validates the configuration with flag overrides applied.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagSpeed != "" {
		speed, err := config.ParseSpeedPreset(flagSpeed)
		if err != nil {
			fail("%v", err)
		}
		cfg.Animation.Speed = speed
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
	return cfg
}

// openStore opens the database, or returns nil with a warning so the
// pathfinder still works without history.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open database", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// mustOpenStore opens the database or exits.
func mustOpenStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	return store
}

// newLoader returns the loader for the configured layouts directory.
func newLoader(cfg config.Config) *layout.Loader {
	dir, err := config.ExpandHome(cfg.Storage.LayoutsDir)
	if err != nil {
		dir = cfg.Storage.LayoutsDir
	}
	return layout.NewLoader(dir)
}

// runtimeConfig sizes the UI to the current terminal.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.FPS = cfg.UI.FPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	return rt
}
