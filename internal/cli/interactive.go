package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mydehq/tunetidy/internal/metadata"
	"github.com/mydehq/tunetidy/internal/renamer"
)

// handleAbort maps huh.ErrUserAborted onto our navigation sentinel.
// ctrl+c always quits; esc becomes ErrUserBack.
func handleAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		if interceptedKey == "ctrl+c" {
			fmt.Println()
			logger.Info(StyleDim.Render("Bye"))
			os.Exit(0)
		}
		return ErrUserBack
	}
	return err
}

// runInteractive is the prompt loop entered when no folder argument is
// given: ask for a folder, offer a preview pass, require explicit
// confirmation to apply, then loop for another folder.
func runInteractive() {
	theme := tunetidyTheme()
	r := renamer.New(metadata.TagReader{}, logger)

	for {
		ClearAndPrintBanner(flagDryRun)
		fmt.Println(StyleDim.Render("  Renames audio files to ARTIST - TITLE.ext, cleaning"))
		fmt.Println(StyleDim.Render("  promo tags, bracketed notes and random digit runs."))
		fmt.Println()

		folder := ""
		err := RunForm(huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Folder").
					Description("\nPath to your audio files ('q' to quit)").
					Value(&folder).
					Validate(validateFolderInput),
			),
		).WithTheme(theme).WithKeyMap(tunetidyKeyMap()))
		if err != nil {
			// esc on the first prompt means leave, same as 'q'
			if errors.Is(handleAbort(err), ErrUserBack) {
				fmt.Println()
				logger.Info(StyleDim.Render("Bye"))
				return
			}
			logger.Error(err.Error())
			return
		}

		folder = cleanPathInput(folder)
		if isQuitWord(folder) {
			fmt.Println()
			logger.Info(StyleDim.Render("Bye"))
			return
		}

		absPath, err := filepath.Abs(folder)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to resolve path: %v", err))
			continue
		}

		fmt.Println()
		logger.Info(fmt.Sprintf("%s: %s", StyleHeader.Render("Selected folder"), StylePath.Render(absPath)))

		preview := true
		err = RunForm(huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Preview changes first?").
					Value(&preview),
			),
		).WithTheme(theme).WithKeyMap(tunetidyKeyMap()))
		if err != nil {
			if errors.Is(handleAbort(err), ErrUserBack) {
				continue
			}
			logger.Error(err.Error())
			return
		}

		if preview {
			stats, err := r.ScanFolder(absPath, false, true)
			if err != nil {
				logger.Error(err.Error())
				continue
			}
			printSummary(stats, true)

			if stats.Found == 0 || stats.Renamed == 0 {
				if !promptAnotherFolder(theme) {
					return
				}
				continue
			}

			apply := false
			err = RunForm(huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Apply these changes?").
						Value(&apply),
				),
			).WithTheme(theme).WithKeyMap(tunetidyKeyMap()))
			if err != nil {
				if errors.Is(handleAbort(err), ErrUserBack) {
					continue
				}
				logger.Error(err.Error())
				return
			}
			if !apply {
				logger.Info(StyleDim.Render("Cancelled"))
				if !promptAnotherFolder(theme) {
					return
				}
				continue
			}
		}

		if flagDryRun {
			logger.Info(StyleDim.Render("[DRY RUN] Skipping apply"))
			if !promptAnotherFolder(theme) {
				return
			}
			continue
		}

		stats, err := r.ScanFolder(absPath, false, false)
		if err != nil {
			logger.Error(err.Error())
			continue
		}
		printSummary(stats, false)

		if !promptAnotherFolder(theme) {
			return
		}
	}
}

// promptAnotherFolder asks whether to loop. esc and 'no' both end the
// session.
func promptAnotherFolder(theme *huh.Theme) bool {
	again := false
	err := RunForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Scan another folder?").
				Value(&again),
		),
	).WithTheme(theme).WithKeyMap(tunetidyKeyMap()))
	if err != nil {
		handleAbort(err)
		return false
	}
	if !again {
		fmt.Println()
		logger.Info(StyleDim.Render("Bye"))
	}
	return again
}

// validateFolderInput accepts quit words and otherwise requires an
// existing directory.
func validateFolderInput(s string) error {
	s = cleanPathInput(s)
	if s == "" {
		return fmt.Errorf("please enter a path")
	}
	if isQuitWord(s) {
		return nil
	}
	fi, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("folder %q does not exist", s)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%q is not a folder", s)
	}
	return nil
}

// cleanPathInput trims whitespace and surrounding quotes, which paths
// pasted from file managers tend to carry.
func cleanPathInput(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'`)
}

func isQuitWord(s string) bool {
	switch strings.ToLower(s) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
