package records

// Record is a single user entry as served by the record source.
type Record struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Pincode string   `json:"pincode"`
	Items   []string `json:"items"`
}

// Clone returns a copy of r that shares no memory with it.
func (r Record) Clone() Record {
	dup := r
	if r.Items != nil {
		dup.Items = make([]string, len(r.Items))
		copy(dup.Items, r.Items)
	}
	return dup
}

// CloneAll deep-copies a record slice. A nil or empty input yields nil.
func CloneAll(recs []Record) []Record {
	if len(recs) == 0 {
		return nil
	}
	dup := make([]Record, len(recs))
	for i, r := range recs {
		dup[i] = r.Clone()
	}
	return dup
}
