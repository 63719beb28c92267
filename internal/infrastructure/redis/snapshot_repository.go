package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"wellness-service/internal/config"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
)

// NewClient creates a Redis client from configuration and verifies the
// connection.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

type snapshotRepository struct {
	client     *redis.Client
	journalKey string
	moodKey    string
}

// NewSnapshotRepository creates a Redis-backed snapshot repository. Each
// collection lives whole under its own key as a JSON array.
func NewSnapshotRepository(client *redis.Client, journalKey, moodKey string) repository.SnapshotRepository {
	return &snapshotRepository{
		client:     client,
		journalKey: journalKey,
		moodKey:    moodKey,
	}
}

func (r *snapshotRepository) LoadJournal(ctx context.Context) ([]entity.JournalEntry, error) {
	data, err := r.client.Get(ctx, r.journalKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read journal snapshot: %w", err)
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

	if err := r.client.Set(ctx, r.journalKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write journal snapshot: %w", err)
	}

	return nil
}

func (r *snapshotRepository) LoadMood(ctx context.Context) ([]entity.MoodEntry, error) {
	data, err := r.client.Get(ctx, r.moodKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read mood snapshot: %w", err)
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

	if err := r.client.Set(ctx, r.moodKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write mood snapshot: %w", err)
	}

	return nil
}
