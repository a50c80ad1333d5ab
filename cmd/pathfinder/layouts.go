package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pathfinder/internal/layout"
	"github.com/vovakirdan/tui-pathfinder/internal/storage"
)

var flagExportOut string

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Manage saved layouts",
	Long: `Layouts are grids saved from the visualizer (Ctrl+S) or imported from
YAML files. They live in the database and in the layouts directory.

Examples:
  pathfinder layouts list
  pathfinder layouts show corridor
  pathfinder layouts import ./corridor.yaml
  pathfinder layouts export corridor --out corridor.yaml
  pathfinder layouts delete corridor`,
}

var layoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts and layout files",
	Args:  cobra.NoArgs,
	Run:   runLayoutsList,
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a layout as a grid",
	Args:  cobra.ExactArgs(1),
	Run:   runLayoutsShow,
}

var layoutsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a layout from the database",
	Args:  cobra.ExactArgs(1),
	Run:   runLayoutsDelete,
}

var layoutsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a layout YAML file into the database",
	Args:  cobra.ExactArgs(1),
	Run:   runLayoutsImport,
}

var layoutsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write a saved layout as YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runLayoutsExport,
}

func init() {
	layoutsExportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default: stdout)")

	layoutsCmd.AddCommand(layoutsListCmd)
	layoutsCmd.AddCommand(layoutsShowCmd)
	layoutsCmd.AddCommand(layoutsDeleteCmd)
	layoutsCmd.AddCommand(layoutsImportCmd)
	layoutsCmd.AddCommand(layoutsExportCmd)
}

func runLayoutsList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	entries, err := store.ListLayouts()
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Saved layouts:")
	if len(entries) == 0 {
		fmt.Println("  (none)")
	}
	for _, e := range entries {
		fmt.Printf("  %-20s %-24s %3dx%-3d %4d walls  %s\n",
			e.ID, e.Name, e.Rows, e.Cols, e.Walls, e.UpdatedAt.Format("2006-01-02 15:04"))
	}

	loader := newLoader(cfg)
	files, err := loader.LoadAll()
	if err != nil {
		fail("%v", err)
	}
	fmt.Println()
	fmt.Printf("Layout files in %s:\n", loader.Root)
	if len(files) == 0 {
		fmt.Println("  (none)")
	}
	for _, l := range files {
		fmt.Printf("  %-20s %-24s %3dx%-3d %4d walls\n", l.ID, l.Name, l.Rows, l.Cols, len(l.Walls))
	}
}

// findLayout looks in the database first, then in the layouts directory.
func findLayout(store *storage.Store, loader *layout.Loader, id string) (layout.Layout, error) {
	l, err := store.LoadLayout(id)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return layout.Layout{}, err
	}
	return loader.LoadByID(id)
}

func runLayoutsShow(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	l, err := findLayout(store, newLoader(cfg), args[0])
	if err != nil {
		fail("%v", err)
	}
	g, err := l.ToGrid()
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("%s (%dx%d, %d walls)\n\n", l.Title(), g.Rows(), g.Cols(), g.WallCount())
	fmt.Println(g.String())
}

func runLayoutsDelete(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	if err := store.DeleteLayout(args[0]); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Deleted layout %q\n", args[0])
}

func runLayoutsImport(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	l, err := layout.NewLoader("").LoadFile(args[0])
	if err != nil {
		fail("%v", err)
	}
	if err := store.SaveLayout(l); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Imported layout %q (%dx%d, %d walls)\n", l.ID, l.Rows, l.Cols, len(l.Walls))
}

func runLayoutsExport(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	l, err := findLayout(store, newLoader(cfg), args[0])
	if err != nil {
		fail("%v", err)
	}
	data, err := layout.EncodeLayout(l)
	if err != nil {
		fail("%v", err)
	}

	if flagExportOut == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
		fail("writing %s: %v", flagExportOut, err)
	}
	fmt.Printf("Exported layout %q to %s\n", l.ID, flagExportOut)
}
