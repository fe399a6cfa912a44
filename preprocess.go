package svgraster

import "strings"

// Preprocess applies the replacement pairs to the SVG source in order.
// Each pair replaces all non-overlapping occurrences of its search text
// in the cumulative result of the previous pairs, so a later pair sees
// the output of earlier ones. An empty search string follows
// strings.ReplaceAll semantics (the replacement is inserted at every
// rune boundary).
func Preprocess(src string, replacements []Replacement) string {
	for _, r := range replacements {
		src = strings.ReplaceAll(src, r.Search, r.Replace)
	}
	return src
}
