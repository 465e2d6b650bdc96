package search

import "github.com/five82/cardsearch/internal/records"

// Match is a record admitted by a query, plus its annotation.
type Match struct {
	Record records.Record

	// FoundItem is the raw query when an item label is what admitted the
	// record, empty otherwise.
	FoundItem string
}

// View is the filtered, ordered subsequence of the full record set for one
// query. It is rebuilt from scratch on every query change.
type View struct {
	Query   Query
	Matches []Match
}

// Active reports whether a query is in effect. An inactive view renders
// nothing; an active one renders its matches or a not-found message.
func (v View) Active() bool {
	return v.Query.Active()
}

// Len returns the number of matches.
func (v View) Len() int {
	return len(v.Matches)
}

// NotFound reports whether an active query matched nothing.
func (v View) NotFound() bool {
	return v.Active() && len(v.Matches) == 0
}

// Filter returns the records that contain q in their name, id, address,
// pincode or any item label, in input order. recs is not modified.
func Filter(recs []records.Record, q Query) View {
	view := View{Query: q}
	if !q.Active() {
		return view
	}
	for _, rec := range recs {
		if q.matches(rec.Name) ||
			q.matches(rec.ID) ||
			q.matches(rec.Address) ||
			q.matches(rec.Pincode) {
			view.Matches = append(view.Matches, Match{Record: rec.Clone()})
			continue
		}
		if matchesAnyItem(rec.Items, q) {
			view.Matches = append(view.Matches, Match{Record: rec.Clone(), FoundItem: q.Raw})
		}
	}
	return view
}

func matchesAnyItem(items []string, q Query) bool {
	for _, item := range items {
		if q.matches(item) {
			return true
		}
	}
	return false
}
