// Package cleaner strips promotional and technical noise from track names.
package cleaner

import (
	"regexp"
	"strings"
)

// rule is one removal/substitution step. Rules run in declaration order;
// the specific mix/edit phrases must come before the generic "edit"/"mix"
// catch-alls, otherwise the generic rules eat legitimate spans first.
type rule struct {
	re   *regexp.Regexp
	repl string
}

var rules = []rule{
	// Promotional tags between # markers: #FREE DL#, #PREMIERE#
	{regexp.MustCompile(`(?i)#[^#]+#`), ""},
	// Bracketed annotations: [Official], [Free Download]
	{regexp.MustCompile(`(?i)\[.*?\]`), ""},
	// Promotional parentheticals
	{regexp.MustCompile(`(?i)\(.*?free.*?\)`), ""},
	{regexp.MustCompile(`(?i)\(.*?download.*?\)`), ""},
	{regexp.MustCompile(`(?i)\(.*?premiere.*?\)`), ""},
	// Mix/version parentheticals, most specific first
	{regexp.MustCompile(`(?i)\(.*?original\s*mix.*?\)`), ""},
	{regexp.MustCompile(`(?i)\(.*?extended\s*mix.*?\)`), ""},
	{regexp.MustCompile(`(?i)\(.*?radio\s*edit.*?\)`), ""},
	{regexp.MustCompile(`(?i)\(.*?club\s*mix.*?\)`), ""},
	{regexp.MustCompile(`(?i)\(.*?remix.*?\)`), ""},
	{regexp.MustCompile(`(?i)\(.*?bootleg.*?\)`), ""},
	{regexp.MustCompile(`(?i)\(.*?edit.*?\)`), ""},
	{regexp.MustCompile(`(?i)\(.*?version.*?\)`), ""},
	{regexp.MustCompile(`(?i)\(.*?mix.*?\)`), ""},
	// Random numeric IDs: 5+ consecutive digits anywhere
	{regexp.MustCompile(`\d{5,}`), ""},
	// Underscore runs become a single space
	{regexp.MustCompile(`_+`), " "},
	// Whitespace runs become a single space
	{regexp.MustCompile(`\s+`), " "},
	// Normalize hyphen padding to exactly " - "
	{regexp.MustCompile(`\s*-\s*`), " - "},
}

var trailingHyphen = regexp.MustCompile(`\s*-\s*$`)

// Clean applies the full rule table to text, then trims whitespace and any
// orphan hyphen left dangling at the end. Cleaning is a projection: running
// Clean on its own output returns the same string.
func Clean(text string) string {
	for _, r := range rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	text = strings.TrimSpace(text)
	return trailingHyphen.ReplaceAllString(text, "")
}
