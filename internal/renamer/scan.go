package renamer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// Stats aggregates the outcomes of one folder scan.
type Stats struct {
	Found   int
	Renamed int
	Skipped int
	Errored int
}

// ScanFolder processes every audio file under folder in lexicographic
// order. Per-file failures are logged and counted but never abort the
// batch; only a missing or non-directory target is fatal. Files renamed
// before an interruption stay renamed, there is no rollback.
func (r *Renamer) ScanFolder(folder string, recursive, dryRun bool) (Stats, error) {
	var stats Stats

	fi, err := os.Stat(folder)
	if err != nil {
		return stats, fmt.Errorf("folder %q does not exist", folder)
	}
	if !fi.IsDir() {
		return stats, fmt.Errorf("%q is not a folder", folder)
	}

	files, err := collectAudioFiles(folder, recursive)
	if err != nil {
		return stats, fmt.Errorf("failed to list %q: %w", folder, err)
	}
	stats.Found = len(files)

	if len(files) == 0 {
		r.logger.Info("No audio files found in folder")
		return stats, nil
	}

	r.logger.Info(fmt.Sprintf("Found %d audio file(s) in %s", len(files), folder))
	if dryRun {
		r.logger.Info("Dry run, no files will be touched")
	}

	slices.Sort(files)
	for _, path := range files {
		res := r.ProcessFile(path, dryRun)
		switch res.Outcome {
		case OutcomeRenamed:
			stats.Renamed++
			if dryRun {
				r.logger.Info(fmt.Sprintf("Would rename: %s → %s", res.OldName, res.NewName))
			} else {
				r.logger.Info(fmt.Sprintf("Renamed: %s → %s", res.OldName, res.NewName))
			}
		case OutcomeSkipped:
			stats.Skipped++
			r.logger.Info(fmt.Sprintf("Already correct: %s", res.OldName))
		case OutcomeFailed:
			stats.Errored++
			r.logger.Error(fmt.Sprintf("%s: %s", res.OldName, res.Message))
		}
	}

	return stats, nil
}

// collectAudioFiles lists allow-listed audio files directly in folder,
// or anywhere below it when recursive is set.
func collectAudioFiles(folder string, recursive bool) ([]string, error) {
	var files []string

	if recursive {
		err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && IsAudio(path) {
				files = append(files, path)
			}
			return nil
		})
		return files, err
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if !e.IsDir() && IsAudio(e.Name()) {
			files = append(files, filepath.Join(folder, e.Name()))
		}
	}
	return files, nil
}
