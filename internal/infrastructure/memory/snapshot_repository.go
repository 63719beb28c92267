// Package memory provides an in-process snapshot backend for development and
// tests. It keeps the same serialized-JSON contract as the real backends so
// decode behavior can be exercised without Redis or PostgreSQL.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
)

type snapshotRepository struct {
	mu      sync.Mutex
	journal []byte
	mood    []byte
}

// NewSnapshotRepository creates an empty in-memory snapshot repository.
func NewSnapshotRepository() repository.SnapshotRepository {
	return &snapshotRepository{}
}

// NewSnapshotRepositoryWithData seeds the repository with raw payloads,
// letting tests exercise the corrupt-snapshot fallback path.
func NewSnapshotRepositoryWithData(journal, mood []byte) repository.SnapshotRepository {
	return &snapshotRepository{journal: journal, mood: mood}
}

func (r *snapshotRepository) LoadJournal(_ context.Context) ([]entity.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.journal == nil {
		return nil, nil
	}

	var entries []entity.JournalEntry
	if err := json.Unmarshal(r.journal, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode journal snapshot: %w", err)
	}

	return entries, nil
}

func (r *snapshotRepository) SaveJournal(_ context.Context, entries []entity.JournalEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode journal snapshot: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.journal = data
	return nil
}

func (r *snapshotRepository) LoadMood(_ context.Context) ([]entity.MoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mood == nil {
		return nil, nil
	}

	var entries []entity.MoodEntry
	if err := json.Unmarshal(r.mood, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode mood snapshot: %w", err)
	}

	return entries, nil
}

func (r *snapshotRepository) SaveMood(_ context.Context, entries []entity.MoodEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode mood snapshot: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.mood = data
	return nil
}
