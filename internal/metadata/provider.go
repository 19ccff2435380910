// Package metadata reads artist/title pairs from embedded audio tags.
package metadata

import (
	"os"
	"strings"

	"github.com/dhowden/tag"
)

// Provider supplies artist and title for an audio file. Either field may
// come back empty; implementations never fail, they just report what
// they could read.
type Provider interface {
	ReadTags(path string) (artist, title string)
}

// TagReader reads ID3v1/v2, MP4 and Vorbis comment tags via dhowden/tag.
type TagReader struct{}

// ReadTags opens the file and extracts trimmed artist and title fields.
// Unreadable or untagged files yield two empty strings; the caller falls
// back to filename parsing.
func (TagReader) ReadTags(path string) (artist, title string) {
	defer func() {
		// The tag parser can panic on truncated or corrupt headers.
		// Treat that the same as any other unreadable file.
		if r := recover(); r != nil {
			artist, title = "", ""
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", ""
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return "", ""
	}
	return strings.TrimSpace(m.Artist()), strings.TrimSpace(m.Title())
}

// None is the "no metadata available" provider. It forces filename
// parsing for every file, which keeps the rest of the pipeline agnostic
// to whether tag support exists at all.
type None struct{}

// ReadTags always reports nothing.
func (None) ReadTags(string) (artist, title string) { return "", "" }
