package search

import (
	"strings"
	"unicode/utf8"
)

// Segment is a run of display text. Match is set when the run is an
// occurrence of the query.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text around case-insensitive occurrences of q. Occurrences
// are kept verbatim as Match segments, so joining every Segment.Text gives
// back text. The query is compared as plain text; characters like "(" or "*"
// have no special meaning.
func Highlight(text string, q Query) []Segment {
	if text == "" {
		return nil
	}
	if !q.Active() {
		return []Segment{{Text: text}}
	}

	width := utf8.RuneCountInString(q.Raw)
	var segs []Segment
	start := 0 // beginning of the pending non-matching run
	for i := 0; i < len(text); {
		end := advanceRunes(text, i, width)
		if end > 0 && strings.ToLower(text[i:end]) == q.folded {
			if start < i {
				segs = append(segs, Segment{Text: text[start:i]})
			}
			segs = append(segs, Segment{Text: text[i:end], Match: true})
			i, start = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	if start < len(text) {
		segs = append(segs, Segment{Text: text[start:]})
	}
	return segs
}

// advanceRunes returns the byte offset n runes after from, or -1 when text
// ends first.
func advanceRunes(text string, from, n int) int {
	i := from
	for ; n > 0; n-- {
		if i >= len(text) {
			return -1
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return i
}
