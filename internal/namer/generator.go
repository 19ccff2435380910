package namer

import "strings"

// illegalChars removes every character Windows refuses in filenames.
// Characters are dropped, not substituted.
var illegalChars = strings.NewReplacer(
	"<", "", ">", "", ":", "", "\"", "",
	"/", "", "\\", "", "|", "", "?", "", "*", "",
)

// Generate composes the canonical uppercase filename from artist, title
// and extension. A missing artist produces a title-only name; a missing
// title makes generation fail (ok == false) since there is nothing to
// name the file after. The extension is appended lowercased.
func Generate(artist, title, ext string) (name string, ok bool) {
	switch {
	case artist != "" && title != "":
		name = artist + separator + title
	case title != "":
		name = title
	default:
		return "", false
	}

	name = illegalChars.Replace(strings.ToUpper(name))
	return name + strings.ToLower(ext), true
}
