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

const (
	habitColumns    = `id, user_id, name, description, target_frequency, is_active, created_at, updated_at`
	habitLogColumns = `id, habit_id, user_id, completed_at, notes, created_at`
)

type habitRepository struct {
	db *sql.DB
}

// NewHabitRepository creates a new SQLite habit repository
func NewHabitRepository(s *Store) repository.HabitRepository {
	return &habitRepository{db: s.db}
}

func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	query := `INSERT INTO habits (` + habitColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		habit.ID.String(),
		habit.UserID,
		habit.Name,
		nullString(habit.Description),
		habit.TargetFrequency,
		habit.IsActive,
		formatTime(habit.CreatedAt),
		formatTime(habit.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}

	return nil
}

func (r *habitRepository) GetByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = ?`

	habit, err := scanHabit(r.db.QueryRowContext(ctx, query, habitID.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("habit %s: %w", habitID, entity.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	return habit, nil
}

func (r *habitRepository) List(ctx context.Context, filter repository.Filter) ([]*entity.Habit, error) {
	clause, args := where(filter.UserID, filter.From, filter.To, filter.ActiveOnly, "created_at", "is_active")
	query := `SELECT ` + habitColumns + ` FROM habits` + clause + ` ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	habits := []*entity.Habit{}
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}

	return habits, rows.Err()
}

func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	query := `UPDATE habits
		SET name = ?, description = ?, target_frequency = ?, is_active = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		habit.Name,
		nullString(habit.Description),
		habit.TargetFrequency,
		habit.IsActive,
		formatTime(habit.UpdatedAt),
		habit.ID.String(),
		habit.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	return checkAffected(result, fmt.Errorf("habit %s: %w", habit.ID, entity.ErrNotFound))
}

func (r *habitRepository) CreateLog(ctx context.Context, log *entity.HabitLog) error {
	query := `INSERT INTO habit_logs (` + habitLogColumns + `) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		log.ID.String(),
		log.HabitID.String(),
		log.UserID,
		formatTime(log.CompletedAt),
		nullString(log.Notes),
		formatTime(log.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create habit log: %w", err)
	}

	return nil
}

func (r *habitRepository) ListLogs(ctx context.Context, filter repository.Filter) ([]*entity.HabitLog, error) {
	clause, args := where(filter.UserID, filter.From, filter.To, false, "completed_at", "")
	query := `SELECT ` + habitLogColumns + ` FROM habit_logs` + clause + ` ORDER BY completed_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list habit logs: %w", err)
	}
	defer rows.Close()

	logs := []*entity.HabitLog{}
	for rows.Next() {
		var (
			l                      entity.HabitLog
			id, habitID            string
			completedAt, createdAt string
			notes                  sql.NullString
		)
		if err := rows.Scan(&id, &habitID, &l.UserID, &completedAt, &notes, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit log: %w", err)
		}
		if l.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if l.HabitID, err = uuid.Parse(habitID); err != nil {
			return nil, err
		}
		if l.CompletedAt, err = parseTime(completedAt); err != nil {
			return nil, err
		}
		if l.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		l.Notes = stringPtr(notes)
		logs = append(logs, &l)
	}

	return logs, rows.Err()
}

func scanHabit(row scanner) (*entity.Habit, error) {
	var (
		h                    entity.Habit
		id                   string
		description          sql.NullString
		createdAt, updatedAt string
	)

	err := row.Scan(&id, &h.UserID, &h.Name, &description, &h.TargetFrequency, &h.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if h.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	if h.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if h.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	h.Description = stringPtr(description)

	return &h, nil
}
