package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
	"wellness-service/internal/domain/service"
	"wellness-service/internal/store"
)

type entryService struct {
	journal   *store.Store[entity.JournalEntry]
	mood      *store.Store[entity.MoodEntry]
	snapshots repository.SnapshotRepository
}

// NewEntryService creates a new entry service. Every successful upsert
// synchronizes the whole affected collection to the snapshot repository;
// a synchronization failure is logged but does not roll back the in-memory
// upsert, so the dashboard keeps working with whatever data is available.
func NewEntryService(
	journal *store.Store[entity.JournalEntry],
	mood *store.Store[entity.MoodEntry],
	snapshots repository.SnapshotRepository,
) service.EntryService {
	return &entryService{
		journal:   journal,
		mood:      mood,
		snapshots: snapshots,
	}
}

func (s *entryService) UpsertJournal(ctx context.Context, entry entity.JournalEntry) (entity.JournalEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	s.journal.Upsert(entry)

	if err := s.snapshots.SaveJournal(ctx, s.journal.All()); err != nil {
		log.Printf("Failed to persist journal snapshot: %v", err)
	}

	return entry, nil
}

func (s *entryService) UpsertMood(ctx context.Context, entry entity.MoodEntry) (entity.MoodEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.PsychoticSymptoms = dedupeSymptoms(entry.PsychoticSymptoms)

	s.mood.Upsert(entry)

	if err := s.snapshots.SaveMood(ctx, s.mood.All()); err != nil {
		log.Printf("Failed to persist mood snapshot: %v", err)
	}

	return entry, nil
}

func (s *entryService) ListJournal(_ context.Context) []entity.JournalEntry {
	return s.journal.All()
}

func (s *entryService) ListMood(_ context.Context) []entity.MoodEntry {
	return s.mood.All()
}

func (s *entryService) GetJournal(_ context.Context, id string) (entity.JournalEntry, error) {
	entry, ok := s.journal.FindByID(id)
	if !ok {
		return entity.JournalEntry{}, fmt.Errorf("journal entry not found")
	}
	return entry, nil
}

func (s *entryService) GetMood(_ context.Context, id string) (entity.MoodEntry, error) {
	entry, ok := s.mood.FindByID(id)
	if !ok {
		return entity.MoodEntry{}, fmt.Errorf("mood entry not found")
	}
	return entry, nil
}

func (s *entryService) LoadSnapshots(ctx context.Context) error {
	journals, err := s.snapshots.LoadJournal(ctx)
	if err != nil {
		// A corrupt snapshot must never block startup; fall back to an
		// empty collection for that key only.
		log.Printf("Failed to load journal snapshot, starting empty: %v", err)
		journals = nil
	}
	s.journal.Replace(journals)

	moods, err := s.snapshots.LoadMood(ctx)
	if err != nil {
		log.Printf("Failed to load mood snapshot, starting empty: %v", err)
		moods = nil
	}
	s.mood.Replace(moods)

	return nil
}

// dedupeSymptoms drops duplicate and empty symptom values while preserving
// first-seen order.
func dedupeSymptoms(symptoms []string) []string {
	if len(symptoms) == 0 {
		return symptoms
	}

	seen := make(map[string]struct{}, len(symptoms))
	out := symptoms[:0]
	for _, s := range symptoms {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
