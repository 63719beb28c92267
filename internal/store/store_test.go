package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-service/internal/domain/entity"
)

func journalEntry(id, date string) entity.JournalEntry {
	return entity.JournalEntry{ID: id, Date: date}
}

func TestStore_UpsertAppends(t *testing.T) {
	s := New[entity.JournalEntry]()

	s.Upsert(journalEntry("a", "2024-01-01"))
	s.Upsert(journalEntry("b", "2024-01-02"))
	s.Upsert(journalEntry("c", "2024-01-03"))

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}

func TestStore_UpsertReplacesInPlace(t *testing.T) {
	s := New[entity.JournalEntry]()

	s.Upsert(journalEntry("a", "2024-01-01"))
	s.Upsert(journalEntry("b", "2024-01-02"))
	s.Upsert(journalEntry("c", "2024-01-03"))

	modified := journalEntry("b", "2024-01-02")
	modified.SleepHours = 8.5
	s.Upsert(modified)

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, 8.5, all[1].SleepHours)
	assert.Equal(t, "c", all[2].ID)
}

func TestStore_UpsertIdempotent(t *testing.T) {
	s := New[entity.JournalEntry]()

	e := journalEntry("a", "2024-01-01")
	s.Upsert(e)
	s.Upsert(e)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []entity.JournalEntry{e}, s.All())
}

func TestStore_FindByID(t *testing.T) {
	s := New[entity.JournalEntry]()
	s.Upsert(journalEntry("a", "2024-01-01"))

	got, ok := s.FindByID("a")
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", got.Date)

	_, ok = s.FindByID("missing")
	assert.False(t, ok)
}

func TestStore_FindWhere(t *testing.T) {
	s := New[entity.JournalEntry]()
	s.Upsert(journalEntry("a", "2024-01-01"))
	s.Upsert(journalEntry("b", "2024-01-02"))
	s.Upsert(journalEntry("c", "2024-01-01"))

	matched := s.FindWhere(func(e entity.JournalEntry) bool {
		return e.Date == "2024-01-01"
	})

	require.Len(t, matched, 2)
	assert.Equal(t, "a", matched[0].ID)
	assert.Equal(t, "c", matched[1].ID)
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := New[entity.JournalEntry]()
	s.Upsert(journalEntry("a", "2024-01-01"))

	all := s.All()
	all[0].Date = "1999-01-01"

	got, ok := s.FindByID("a")
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", got.Date)
}

func TestStore_Replace(t *testing.T) {
	s := New[entity.JournalEntry]()
	s.Upsert(journalEntry("old", "2023-12-31"))

	s.Replace([]entity.JournalEntry{
		journalEntry("a", "2024-01-01"),
		journalEntry("b", "2024-01-02"),
	})

	require.Equal(t, 2, s.Len())
	_, ok := s.FindByID("old")
	assert.False(t, ok)

	got, ok := s.FindByID("b")
	require.True(t, ok)
	assert.Equal(t, "2024-01-02", got.Date)

	// replaced entries remain upsertable by id
	modified := journalEntry("a", "2024-01-01")
	modified.StudyHours = 3
	s.Upsert(modified)
	all := s.All()
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, float64(3), all[0].StudyHours)
}
