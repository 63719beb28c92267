package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
)

type snapshotRepository struct {
	pool       *pgxpool.Pool
	journalKey string
	moodKey    string
}

// NewSnapshotRepository creates a PostgreSQL-backed snapshot repository. The
// backing table is a plain key-value store: one row per collection, the full
// JSON array in the data column, rewritten on every save.
func NewSnapshotRepository(pool *pgxpool.Pool, journalKey, moodKey string) repository.SnapshotRepository {
	return &snapshotRepository{
		pool:       pool,
		journalKey: journalKey,
		moodKey:    moodKey,
	}
}

// Migrate creates the snapshots table if it does not exist
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}

	return nil
}

func (r *snapshotRepository) load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT data FROM snapshots WHERE key = $1`

	var data []byte
	err := r.pool.QueryRow(ctx, query, key).Scan(&data)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}

	return data, nil
}

func (r *snapshotRepository) save(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO snapshots (key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`

	if _, err := r.pool.Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}

	return nil
}

func (r *snapshotRepository) LoadJournal(ctx context.Context) ([]entity.JournalEntry, error) {
	data, err := r.load(ctx, r.journalKey)
	if err != nil || data == nil {
		return nil, err
	}

	var entries []entity.JournalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode journal snapshot: %w", err)
	}

	return entries, nil
}

func (r *snapshotRepository) SaveJournal(ctx context.Context, entries []entity.JournalEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode journal snapshot: %w", err)
	}

	return r.save(ctx, r.journalKey, data)
}

func (r *snapshotRepository) LoadMood(ctx context.Context) ([]entity.MoodEntry, error) {
	data, err := r.load(ctx, r.moodKey)
	if err != nil || data == nil {
		return nil, err
	}

	var entries []entity.MoodEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode mood snapshot: %w", err)
	}

	return entries, nil
}

func (r *snapshotRepository) SaveMood(ctx context.Context, entries []entity.MoodEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode mood snapshot: %w", err)
	}

	return r.save(ctx, r.moodKey, data)
}
