// Package namer turns raw audio filenames into canonical
// "ARTIST - TITLE.ext" names and resolves target-path collisions.
package namer

import (
	"path/filepath"
	"strings"

	"github.com/mydehq/tunetidy/internal/cleaner"
)

// separator divides artist from title in a filename stem.
const separator = " - "

// Parse extracts artist and title from a filename. The extension is
// stripped, the stem is cleaned, and the stem is split on the first
// separator occurrence: "A - B - C" yields artist "A", title "B - C".
// An empty artist means no separator was found; the whole cleaned stem
// is then the title. The title may come back empty when the separator
// sits at the end of the stem.
func Parse(filename string) (artist, title string) {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	stem = cleaner.Clean(stem)

	if before, after, found := strings.Cut(stem, separator); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return "", stem
}
