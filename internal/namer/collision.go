package namer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveCollision returns path unchanged if nothing exists there,
// otherwise the first free "{stem} ({n}){ext}" variant, counting up
// from 1. The existence check and the later rename are not atomic, so
// an external writer racing between the two can still collide; the
// tool makes no guarantee against that.
func ResolveCollision(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
