package metadata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNone_ReportsNothing(t *testing.T) {
	artist, title := None{}.ReadTags("/any/path.mp3")
	if artist != "" || title != "" {
		t.Errorf("None.ReadTags() = (%q, %q); want empty fields", artist, title)
	}
}

func TestTagReader_MissingFile(t *testing.T) {
	artist, title := TagReader{}.ReadTags(filepath.Join(t.TempDir(), "nope.mp3"))
	if artist != "" || title != "" {
		t.Errorf("ReadTags() = (%q, %q); want empty fields for missing file", artist, title)
	}
}

// A file that is not actually audio must degrade to "no metadata", never
// error or panic.
func TestTagReader_GarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.mp3")
	if err := os.WriteFile(path, []byte("this is not an mp3 at all"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	artist, title := TagReader{}.ReadTags(path)
	if artist != "" || title != "" {
		t.Errorf("ReadTags() = (%q, %q); want empty fields for garbage file", artist, title)
	}
}

func TestTagReader_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.flac")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	artist, title := TagReader{}.ReadTags(path)
	if artist != "" || title != "" {
		t.Errorf("ReadTags() = (%q, %q); want empty fields for empty file", artist, title)
	}
}
