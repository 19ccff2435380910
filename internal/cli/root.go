// Package cli wires the cobra command surface, terminal styling, and the
// interactive prompt loop around the renamer.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mydehq/tunetidy/internal/metadata"
	"github.com/mydehq/tunetidy/internal/renamer"
	"github.com/spf13/cobra"
)

var (
	flagDryRun    bool
	flagRecursive bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// RootCmd is the tunetidy entry command. With a folder argument it scans
// once and exits; without one it drops into the interactive prompt loop.
var RootCmd = &cobra.Command{
	Use:   "tunetidy [folder]",
	Short: "Rename audio files to a canonical ARTIST - TITLE.ext form",
	Long: `TuneTidy renames local audio files to an uppercase "ARTIST - TITLE.ext"
form. Artist and title come from embedded tags when present, otherwise
from the filename after stripping promotional noise (#FREE DL#, [Official],
mix/edit parentheticals, random digit runs).`,
	Example: `  tunetidy ~/Music              rename files in a folder
  tunetidy ~/Music --dry-run    preview without touching anything
  tunetidy ~/Music --recursive  include subfolders
  tunetidy                      interactive mode`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			runInteractive()
			return
		}
		runScan(args[0], flagRecursive, flagDryRun)
	},
}

func init() {
	RootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "d", false, "preview changes without applying them")
	RootCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "include subfolders")
}

// Execute styles the logger and runs the root command.
func Execute() {
	configureStyles()
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runScan performs a single folder scan. A folder validation failure is
// the only fatal error; per-file problems are already counted and logged
// by the renamer.
func runScan(folder string, recursive, dryRun bool) {
	absPath, err := filepath.Abs(folder)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to resolve path: %v", err))
		os.Exit(1)
	}

	r := renamer.New(metadata.TagReader{}, logger)
	stats, err := r.ScanFolder(absPath, recursive, dryRun)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	printSummary(stats, dryRun)
}

// printSummary prints the three scan counters in a styled block.
func printSummary(stats renamer.Stats, dryRun bool) {
	if stats.Found == 0 {
		return
	}

	renamedLabel := "Renamed"
	if dryRun {
		renamedLabel = "Would rename"
	}

	fmt.Println()
	fmt.Println(StyleHeader.Render("Summary"))
	fmt.Printf("  %s %s\n", StyleName.Render(fmt.Sprintf("%-13s", renamedLabel+":")), fmt.Sprint(stats.Renamed))
	fmt.Printf("  %s %s\n", StyleDim.Render(fmt.Sprintf("%-13s", "Skipped:")), fmt.Sprint(stats.Skipped))
	fmt.Printf("  %s %s\n", styleFlag.Render(fmt.Sprintf("%-13s", "Errors:")), fmt.Sprint(stats.Errored))
}
