// Package state holds the canonical record set for cardsearch.
//
// # Overview
//
// The loader goroutine writes the store once; the UI reads it when the load
// finishes. The store is the only place the full record set lives.
//
//	Loader goroutine:              UI update loop:
//	┌──────────────────┐          ┌───────────────────┐
//	│ FetchRecords()   │          │                   │
//	│      ↓           │          │                   │
//	│ store.Replace()  │─────────→│ store.Snapshot()  │
//	│  or store.Fail() │ (mutex)  │      ↓            │
//	└──────────────────┘          │ search.Filter()   │
//	                              └───────────────────┘
//
// # Core Types
//
// Store:
//   - Guards the record set with a sync.RWMutex
//   - Replace swaps the whole set; nothing edits records in place
//   - Fail records the load error and leaves the set untouched
//
// Snapshot:
//   - Deep copy of the record set, including each record's Items slice
//   - Loaded distinguishes "attempt finished" from "not started"
//   - LastError is re-wrapped so callers cannot hold the stored instance
//
// # Usage
//
//	var store state.Store
//	recs, err := client.FetchRecords(ctx)
//	if err != nil {
//		store.Fail(err)
//	} else {
//		store.Replace(recs)
//	}
//	snap := store.Snapshot()
//
// The zero value is ready to use.
package state
