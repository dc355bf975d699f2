package postgres

import (
	"context"
	"errors"
	"fmt"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const moodColumns = `id, user_id, mood_score, notes, created_at, updated_at`

type moodRepository struct {
	pool *pgxpool.Pool
}

// NewMoodRepository creates a new PostgreSQL mood repository
func NewMoodRepository(pool *pgxpool.Pool) repository.MoodRepository {
	return &moodRepository{pool: pool}
}

func (r *moodRepository) Create(ctx context.Context, entry *entity.MoodEntry) error {
	query := `
		INSERT INTO mood_entries (` + moodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.UserID, entry.MoodScore, entry.Notes, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create mood entry: %w", err)
	}

	return nil
}

func (r *moodRepository) GetByIDAndUserID(ctx context.Context, id uuid.UUID, userID string) (*entity.MoodEntry, error) {
	query := `
		SELECT ` + moodColumns + `
		FROM mood_entries
		WHERE id = $1 AND user_id = $2
	`

	entry, err := scanMood(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("mood entry %s: %w", id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get mood entry: %w", err)
	}

	return entry, nil
}

func (r *moodRepository) List(ctx context.Context, filter repository.Filter) ([]*entity.MoodEntry, error) {
	clause, args := where(filter, "created_at", "")
	query := `SELECT ` + moodColumns + ` FROM mood_entries` + clause + ` ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	defer rows.Close()

	entries := []*entity.MoodEntry{}
	for rows.Next() {
		entry, err := scanMood(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mood entries: %w", err)
	}

	return entries, nil
}

func (r *moodRepository) Update(ctx context.Context, entry *entity.MoodEntry) error {
	query := `
		UPDATE mood_entries
		SET mood_score = $1, notes = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
	`

	result, err := r.pool.Exec(ctx, query, entry.MoodScore, entry.Notes, entry.UpdatedAt, entry.ID, entry.UserID)
	if err != nil {
		return fmt.Errorf("failed to update mood entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("mood entry %s: %w", entry.ID, entity.ErrNotFound)
	}

	return nil
}

func scanMood(row pgx.Row) (*entity.MoodEntry, error) {
	entry := &entity.MoodEntry{}
	err := row.Scan(&entry.ID, &entry.UserID, &entry.MoodScore, &entry.Notes, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, err
	}
	utc(&entry.CreatedAt)
	utc(&entry.UpdatedAt)
	return entry, nil
}
