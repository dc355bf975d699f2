package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"

	"github.com/google/uuid"
)

const moodColumns = `id, user_id, mood_score, notes, created_at, updated_at`

type moodRepository struct {
	db *sql.DB
}

// NewMoodRepository creates a new SQLite mood repository
func NewMoodRepository(s *Store) repository.MoodRepository {
	return &moodRepository{db: s.db}
}

func (r *moodRepository) Create(ctx context.Context, entry *entity.MoodEntry) error {
	query := `INSERT INTO mood_entries (` + moodColumns + `) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID.String(),
		entry.UserID,
		entry.MoodScore,
		nullString(entry.Notes),
		formatTime(entry.CreatedAt),
		formatTime(entry.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create mood entry: %w", err)
	}

	return nil
}

func (r *moodRepository) GetByIDAndUserID(ctx context.Context, id uuid.UUID, userID string) (*entity.MoodEntry, error) {
	query := `SELECT ` + moodColumns + ` FROM mood_entries WHERE id = ? AND user_id = ?`

	entry, err := scanMood(r.db.QueryRowContext(ctx, query, id.String(), userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("mood entry %s: %w", id, entity.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entry: %w", err)
	}

	return entry, nil
}

func (r *moodRepository) List(ctx context.Context, filter repository.Filter) ([]*entity.MoodEntry, error) {
	clause, args := where(filter.UserID, filter.From, filter.To, false, "created_at", "")
	query := `SELECT ` + moodColumns + ` FROM mood_entries` + clause + ` ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
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

	return entries, rows.Err()
}

func (r *moodRepository) Update(ctx context.Context, entry *entity.MoodEntry) error {
	query := `UPDATE mood_entries SET mood_score = ?, notes = ?, updated_at = ? WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		entry.MoodScore,
		nullString(entry.Notes),
		formatTime(entry.UpdatedAt),
		entry.ID.String(),
		entry.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mood entry: %w", err)
	}

	return checkAffected(result, fmt.Errorf("mood entry %s: %w", entry.ID, entity.ErrNotFound))
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMood(row scanner) (*entity.MoodEntry, error) {
	var (
		e                    entity.MoodEntry
		id                   string
		notes                sql.NullString
		createdAt, updatedAt string
	)

	if err := row.Scan(&id, &e.UserID, &e.MoodScore, &notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if e.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	e.Notes = stringPtr(notes)

	return &e, nil
}
