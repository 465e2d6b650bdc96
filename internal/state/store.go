package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/cardsearch/internal/records"
)

// Snapshot represents the record set as seen by the UI.
type Snapshot struct {
	Records   []records.Record
	Loaded    bool // a load attempt has finished, successfully or not
	LoadedAt  time.Time
	LastError error
}

// Failed reports whether the load attempt ended in an error.
func (s Snapshot) Failed() bool {
	return s.Loaded && s.LastError != nil
}

// Store owns the canonical record set. Writers replace it wholesale; readers
// receive deep copies.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Replace swaps in a new record set and clears any recorded error.
func (s *Store) Replace(recs []records.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = Snapshot{
		Records:  records.CloneAll(recs),
		Loaded:   true,
		LoadedAt: time.Now(),
	}
}

// Fail records a failed load. The record set is left as it was, which for the
// single startup load means empty.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Loaded = true
	s.snapshot.LoadedAt = time.Now()
	s.snapshot.LastError = err
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = records.CloneAll(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
