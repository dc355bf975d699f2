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

const (
	habitColumns    = `id, user_id, name, description, target_frequency, is_active, created_at, updated_at`
	habitLogColumns = `id, habit_id, user_id, completed_at, notes, created_at`
)

type habitRepository struct {
	pool *pgxpool.Pool
}

// NewHabitRepository creates a new PostgreSQL habit repository
func NewHabitRepository(pool *pgxpool.Pool) repository.HabitRepository {
	return &habitRepository{pool: pool}
}

func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	query := `
		INSERT INTO habits (` + habitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		habit.ID, habit.UserID, habit.Name, habit.Description, habit.TargetFrequency,
		habit.IsActive, habit.CreatedAt, habit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}

	return nil
}

func (r *habitRepository) GetByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = $1`

	habit, err := scanHabit(r.pool.QueryRow(ctx, query, habitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("habit %s: %w", habitID, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	return habit, nil
}

func (r *habitRepository) List(ctx context.Context, filter repository.Filter) ([]*entity.Habit, error) {
	clause, args := where(filter, "created_at", "is_active")
	query := `SELECT ` + habitColumns + ` FROM habits` + clause + ` ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get habits: %w", err)
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

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	return habits, nil
}

func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	query := `
		UPDATE habits
		SET name = $1, description = $2, target_frequency = $3, is_active = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`

	result, err := r.pool.Exec(ctx, query,
		habit.Name, habit.Description, habit.TargetFrequency, habit.IsActive, habit.UpdatedAt,
		habit.ID, habit.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("habit %s: %w", habit.ID, entity.ErrNotFound)
	}

	return nil
}

func (r *habitRepository) CreateLog(ctx context.Context, log *entity.HabitLog) error {
	query := `
		INSERT INTO habit_logs (` + habitLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query, log.ID, log.HabitID, log.UserID, log.CompletedAt, log.Notes, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create habit log: %w", err)
	}

	return nil
}

func (r *habitRepository) ListLogs(ctx context.Context, filter repository.Filter) ([]*entity.HabitLog, error) {
	clause, args := where(filter, "completed_at", "")
	query := `SELECT ` + habitLogColumns + ` FROM habit_logs` + clause + ` ORDER BY completed_at DESC, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get habit logs: %w", err)
	}
	defer rows.Close()

	logs := []*entity.HabitLog{}
	for rows.Next() {
		l := &entity.HabitLog{}
		if err := rows.Scan(&l.ID, &l.HabitID, &l.UserID, &l.CompletedAt, &l.Notes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit log: %w", err)
		}
		utc(&l.CompletedAt)
		utc(&l.CreatedAt)
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habit logs: %w", err)
	}

	return logs, nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	habit := &entity.Habit{}
	err := row.Scan(
		&habit.ID, &habit.UserID, &habit.Name, &habit.Description, &habit.TargetFrequency,
		&habit.IsActive, &habit.CreatedAt, &habit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	utc(&habit.CreatedAt)
	utc(&habit.UpdatedAt)
	return habit, nil
}
