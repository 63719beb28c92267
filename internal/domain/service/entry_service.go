package service

import (
	"context"

	"wellness-service/internal/domain/entity"
)

// EntryService defines the interface for journal and mood entry management
type EntryService interface {
	// UpsertJournal inserts or replaces a journal entry and synchronizes the
	// journal collection to the snapshot repository
	UpsertJournal(ctx context.Context, entry entity.JournalEntry) (entity.JournalEntry, error)

	// UpsertMood inserts or replaces a mood entry and synchronizes the mood
	// collection to the snapshot repository
	UpsertMood(ctx context.Context, entry entity.MoodEntry) (entity.MoodEntry, error)

	// ListJournal returns all journal entries in insertion order
	ListJournal(ctx context.Context) []entity.JournalEntry

	// ListMood returns all mood entries in insertion order
	ListMood(ctx context.Context) []entity.MoodEntry

	// GetJournal retrieves a journal entry by ID
	GetJournal(ctx context.Context, id string) (entity.JournalEntry, error)

	// GetMood retrieves a mood entry by ID
	GetMood(ctx context.Context, id string) (entity.MoodEntry, error)

	// LoadSnapshots populates both stores from the snapshot repository,
	// falling back to empty collections on decode failure
	LoadSnapshots(ctx context.Context) error
}
