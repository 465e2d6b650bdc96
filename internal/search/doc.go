// Package search implements the query filter, match highlighting and card
// selection used by the cardsearch UI.
//
// Filter builds a View from the full record set and a Query. A View never
// shares memory with the records it was built from, and each Match carries
// its own FoundItem annotation rather than writing one onto the record.
//
// Highlight splits display text into plain and matching segments using the
// query as literal text.
//
// Navigator is a small state machine over the current view: Apply takes an
// Event and returns the next state plus an Effect telling the caller whether
// to scroll and whether the triggering key was consumed.
package search
