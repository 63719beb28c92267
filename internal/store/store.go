// Package store provides the in-memory identity-keyed entry collections
// backing the journal and mood histories. Persistence is layered on top via
// snapshot synchronization; the store itself never touches a backend.
package store

import "sync"

// Entry is anything with a stable opaque identity.
type Entry interface {
	EntryID() string
}

// Store is an insertion-ordered collection keyed by entry identity.
// Upserting an existing id replaces the record in place without reordering.
// The store performs no validation: range constraints and required fields
// are the producing form's responsibility.
type Store[T Entry] struct {
	mu      sync.RWMutex
	entries []T
	index   map[string]int
}

// New creates an empty store.
func New[T Entry]() *Store[T] {
	return &Store[T]{
		index: make(map[string]int),
	}
}

// Upsert inserts the entry, or replaces the existing entry with the same id
// at its original position.
func (s *Store[T]) Upsert(entry T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[entry.EntryID()]; ok {
		s.entries[i] = entry
		return
	}

	s.index[entry.EntryID()] = len(s.entries)
	s.entries = append(s.entries, entry)
}

// All returns a snapshot of the collection in insertion order, oldest first.
// The returned slice is a copy; mutating it does not affect the store.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]T(nil), s.entries...)
}

// FindByID returns the entry with the given id, if present.
func (s *Store[T]) FindByID(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.index[id]; ok {
		return s.entries[i], true
	}

	var zero T
	return zero, false
}

// FindWhere returns every entry matching the predicate, in store order.
func (s *Store[T]) FindWhere(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []T
	for _, e := range s.entries {
		if pred(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Len returns the number of entries.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Replace swaps the entire collection, preserving the order of the supplied
// slice. Used when loading a persisted snapshot at startup.
func (s *Store[T]) Replace(entries []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]T(nil), entries...)
	s.index = make(map[string]int, len(entries))
	for i, e := range entries {
		s.index[e.EntryID()] = i
	}
}
