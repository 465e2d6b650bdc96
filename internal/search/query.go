package search

import "strings"

// Query is the operator's search text. Raw keeps the original casing for
// display; comparisons use the lower-cased form.
type Query struct {
	Raw    string
	folded string
}

// NewQuery builds a Query from raw input. The input is not trimmed: a query
// of a single space is active and matches spaces.
func NewQuery(raw string) Query {
	return Query{Raw: raw, folded: strings.ToLower(raw)}
}

// Active reports whether the query is non-empty.
func (q Query) Active() bool {
	return q.Raw != ""
}

// matches reports whether s contains the query, ignoring case.
func (q Query) matches(s string) bool {
	return strings.Contains(strings.ToLower(s), q.folded)
}
