// Package renamer orchestrates per-file renaming and folder scans.
package renamer

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mydehq/tunetidy/internal/cleaner"
	"github.com/mydehq/tunetidy/internal/metadata"
	"github.com/mydehq/tunetidy/internal/namer"
)

// audioExtensions is the fixed allow-list of recognized audio files.
var audioExtensions = map[string]struct{}{
	".mp3":  {},
	".flac": {},
	".m4a":  {},
	".ogg":  {},
	".wav":  {},
	".wma":  {},
	".aac":  {},
	".opus": {},
}

// IsAudio reports whether path carries a recognized audio extension.
func IsAudio(path string) bool {
	_, ok := audioExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Outcome classifies the result of processing one file.
type Outcome int

const (
	// OutcomeRenamed covers both real renames and dry-run previews.
	OutcomeRenamed Outcome = iota
	// OutcomeSkipped means the file already carried its canonical name.
	OutcomeSkipped
	// OutcomeFailed means no name could be determined or the rename failed.
	OutcomeFailed
)

// Result is the per-file processing report.
type Result struct {
	Outcome Outcome
	OldName string
	NewName string // final resolved name, empty when no name was determined
	Message string
}

// Renamer processes audio files using a metadata provider with filename
// parsing as the fallback. It holds no state across files beyond the
// injected collaborators.
type Renamer struct {
	meta   metadata.Provider
	logger *log.Logger
}

// New creates a Renamer. A nil logger discards all output, which keeps
// tests quiet.
func New(meta metadata.Provider, logger *log.Logger) *Renamer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Renamer{meta: meta, logger: logger}
}

// ProcessFile decides the canonical name for one file and applies it,
// unless dryRun is set. Embedded tags win over filename parsing: when
// both tag fields are present they are cleaned and used as-is, the
// filename is never consulted. When either is missing, the filename is
// parsed and fills only the missing fields.
func (r *Renamer) ProcessFile(path string, dryRun bool) Result {
	oldName := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(path))

	if !IsAudio(path) {
		return Result{Outcome: OutcomeFailed, OldName: oldName, Message: "unsupported extension"}
	}

	artist, title := r.meta.ReadTags(path)
	if artist != "" && title != "" {
		artist = cleaner.Clean(artist)
		title = cleaner.Clean(title)
	} else {
		parsedArtist, parsedTitle := namer.Parse(oldName)
		if artist == "" {
			artist = parsedArtist
		}
		if title == "" {
			title = parsedTitle
		}
	}

	newName, ok := namer.Generate(artist, title, ext)
	if !ok {
		return Result{Outcome: OutcomeFailed, OldName: oldName, Message: "cannot determine new name"}
	}

	if newName == oldName {
		return Result{Outcome: OutcomeSkipped, OldName: oldName, NewName: newName, Message: "already correct"}
	}

	target := namer.ResolveCollision(filepath.Join(filepath.Dir(path), newName))
	finalName := filepath.Base(target)

	if dryRun {
		return Result{Outcome: OutcomeRenamed, OldName: oldName, NewName: finalName, Message: "would rename"}
	}

	if err := os.Rename(path, target); err != nil {
		return Result{Outcome: OutcomeFailed, OldName: oldName, NewName: finalName, Message: err.Error()}
	}
	return Result{Outcome: OutcomeRenamed, OldName: oldName, NewName: finalName, Message: "renamed"}
}
