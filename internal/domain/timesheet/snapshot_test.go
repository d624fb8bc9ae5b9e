package timesheet

import (
	"testing"
)

func TestStoreAppliesInOrder(t *testing.T) {
	s := NewStore()

	seq1 := s.Begin()
	seq2 := s.Begin()

	if !s.Apply(seq1, []Entry{{ID: "a"}}) {
		t.Fatal("first apply rejected")
	}
	if !s.Apply(seq2, []Entry{{ID: "b"}}) {
		t.Fatal("newer apply rejected")
	}

	entries, _ := s.Snapshot()
	if len(entries) != 1 || entries[0].ID != "b" {
		t.Errorf("snapshot = %v, want the newer load", entries)
	}
}

func TestStoreDiscardsStaleLoad(t *testing.T) {
	s := NewStore()

	stale := s.Begin()
	fresh := s.Begin()

	// The later load finishes first.
	if !s.Apply(fresh, []Entry{{ID: "fresh"}}) {
		t.Fatal("fresh apply rejected")
	}
	if s.Apply(stale, []Entry{{ID: "stale"}}) {
		t.Error("stale apply accepted, want rejected")
	}

	entries, _ := s.Snapshot()
	if len(entries) != 1 || entries[0].ID != "fresh" {
		t.Errorf("snapshot = %v, want the fresh load to survive", entries)
	}
}

func TestStoreRejectsDuplicateApply(t *testing.T) {
	s := NewStore()

	seq := s.Begin()
	if !s.Apply(seq, nil) {
		t.Fatal("first apply rejected")
	}
	if s.Apply(seq, []Entry{{ID: "dup"}}) {
		t.Error("second apply with same token accepted")
	}
}

func TestStoreEmptySnapshot(t *testing.T) {
	s := NewStore()
	entries, loadedAt := s.Snapshot()
	if entries != nil {
		t.Errorf("fresh store entries = %v, want nil", entries)
	}
	if !loadedAt.IsZero() {
		t.Errorf("fresh store loadedAt = %v, want zero", loadedAt)
	}
}
