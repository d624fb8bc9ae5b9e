package timesheet

import (
	"sync"
	"time"
)

// Store holds the most recently loaded set of entries. Every load reserves
// a monotonic sequence token before it starts; a load that finishes after
// a newer one is discarded, so a slow fetch can never overwrite fresher
// data.
type Store struct {
	mu       sync.Mutex
	seq      uint64
	applied  uint64
	entries  []Entry
	loadedAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

// Begin reserves a sequence token for a load that is about to start.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Apply installs the loaded entries unless a load with a later token has
// already been applied. It reports whether the entries were accepted.
func (s *Store) Apply(seq uint64, entries []Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.entries = entries
	s.loadedAt = time.Now()
	return true
}

// Snapshot returns the current entries and the time they were loaded.
func (s *Store) Snapshot() ([]Entry, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries, s.loadedAt
}
