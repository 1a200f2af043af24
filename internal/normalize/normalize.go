// Package normalize provides the title canonicalization used to join records
// across the OOH and OEWS sources.
package normalize

import "strings"

// Key canonicalizes an occupation title into the join key shared by both
// sources: lowercased, runs of whitespace collapsed to a single space, and
// leading/trailing whitespace trimmed. Two titles that produce the same key
// are treated as the same occupation. There is no fuzzy matching or alias
// handling; titles that differ by abbreviation or wording will not join.
func Key(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// CollapseSpace collapses internal whitespace runs to single spaces and trims
// the result, preserving case. Used for free-text fields like summaries.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
