package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/platform/tui"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistorySource string
	flagHistoryClear  bool
	flagHistoryTUI    bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent search runs",
	Long: `Display the most recent runs recorded by the visualizer and 'solve --record'.

Examples:
  pathfinder history
  pathfinder history --limit 50
  pathfinder history --source maze
  pathfinder history --tui
  pathfinder history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().StringVar(&flagHistorySource, "source", "", "Only runs of this pattern or layout")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the whole history")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse the history interactively")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			fail("%v", err)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagHistoryTUI {
		rt := runtimeConfig(cfg)
		if _, err := tui.RunHistory(store, rt.ScreenW, rt.ScreenH); err != nil {
			fail("%v", err)
		}
		return
	}

	var (
		runs []storage.RunRecord
		err  error
	)
	if flagHistorySource != "" {
		runs, err = store.RunsForSource(flagHistorySource, flagHistoryLimit)
	} else {
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		fail("%v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	stats, err := store.Stats()
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("%d runs, %d reached, avg %.1f cells visited\n\n", stats.Runs, stats.Reached, stats.AvgVisited)

	fmt.Printf("  %-16s  %-14s  %-7s  %-5s  %5s  %7s  %5s  %s\n",
		"When", "Source", "Grid", "Moves", "Walls", "Visited", "Path", "Time")
	fmt.Printf("  %-16s  %-14s  %-7s  %-5s  %5s  %7s  %5s  %s\n",
		"----", "------", "----", "-----", "-----", "-------", "----", "----")
	for _, r := range runs {
		path := "-"
		if r.Reached {
			path = fmt.Sprintf("%d", r.PathLength)
		}
		fmt.Printf("  %-16s  %-14s  %-7s  %-5s  %5d  %7d  %5s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Source,
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			r.Connectivity,
			r.Walls,
			r.Visited,
			path,
			r.Duration.Round(time.Microsecond),
		)
	}
}
