package repository

import (
	"context"

	"wellness-service/internal/domain/entity"
)

// SnapshotRepository defines the persistence boundary for the two entry
// collections. Each collection is stored whole, as a JSON array under its own
// key; every save rewrites the full collection rather than appending.
//
// Load methods recover from a missing key by returning an empty collection.
// A decode failure is recovered the same way at the service layer so a
// corrupt snapshot never blocks startup.
type SnapshotRepository interface {
	// LoadJournal reads the persisted journal collection.
	LoadJournal(ctx context.Context) ([]entity.JournalEntry, error)

	// SaveJournal rewrites the persisted journal collection.
	SaveJournal(ctx context.Context, entries []entity.JournalEntry) error

	// LoadMood reads the persisted mood collection.
	LoadMood(ctx context.Context) ([]entity.MoodEntry, error)

	// SaveMood rewrites the persisted mood collection.
	SaveMood(ctx context.Context, entries []entity.MoodEntry) error
}
