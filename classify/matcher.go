package classify

import "strings"

// Matches returns the keywords that appear as case-insensitive substrings
// of text, preserving the order and casing of the keyword list.
func Matches(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			found = append(found, kw)
		}
	}
	return found
}

// CountMatches returns how many keywords appear as case-insensitive
// substrings of text. Substring containment, not word-boundary matching.
func CountMatches(text string, keywords []string) int {
	return len(Matches(text, keywords))
}
