package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reminderColumns = `id, user_id, title, message, reminder_time, days_of_week, reminder_type, target_id, is_active, created_at, updated_at`

type reminderRepository struct {
	pool *pgxpool.Pool
}

// NewReminderRepository creates a new PostgreSQL reminder repository
func NewReminderRepository(pool *pgxpool.Pool) repository.ReminderRepository {
	return &reminderRepository{pool: pool}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		reminder.ID, reminder.UserID, reminder.Title, reminder.Message,
		reminder.ReminderTime, reminder.DaysOfWeek, string(reminder.ReminderType), reminder.TargetID,
		reminder.IsActive, reminder.CreatedAt, reminder.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	return nil
}

func (r *reminderRepository) GetByIDAndUserID(ctx context.Context, id uuid.UUID, userID string) (*entity.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1 AND user_id = $2`

	reminder, err := scanReminder(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("reminder %s: %w", id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

func (r *reminderRepository) List(ctx context.Context, filter repository.Filter) ([]*entity.Reminder, error) {
	clause, args := where(filter, "created_at", "is_active")
	query := `SELECT ` + reminderColumns + ` FROM reminders` + clause + ` ORDER BY created_at DESC, id`

	return r.query(ctx, query, args...)
}

func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	query := `
		UPDATE reminders
		SET title = $1, message = $2, reminder_time = $3, days_of_week = $4, reminder_type = $5,
		    target_id = $6, is_active = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
	`

	result, err := r.pool.Exec(ctx, query,
		reminder.Title, reminder.Message, reminder.ReminderTime, reminder.DaysOfWeek,
		string(reminder.ReminderType), reminder.TargetID, reminder.IsActive, reminder.UpdatedAt,
		reminder.ID, reminder.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reminder %s: %w", reminder.ID, entity.ErrNotFound)
	}

	return nil
}

func (r *reminderRepository) ListDue(ctx context.Context, weekday time.Weekday, clock string) ([]*entity.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE is_active = TRUE AND reminder_time = $1 AND $2 = ANY(days_of_week)
		ORDER BY created_at, id
	`

	return r.query(ctx, query, clock, int32(weekday))
}

func (r *reminderRepository) query(ctx context.Context, query string, args ...any) ([]*entity.Reminder, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	reminders := []*entity.Reminder{}
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}

	return reminders, nil
}

func scanReminder(row pgx.Row) (*entity.Reminder, error) {
	rem := &entity.Reminder{}
	var kind string

	err := row.Scan(
		&rem.ID, &rem.UserID, &rem.Title, &rem.Message,
		&rem.ReminderTime, &rem.DaysOfWeek, &kind, &rem.TargetID,
		&rem.IsActive, &rem.CreatedAt, &rem.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rem.ReminderType = entity.ReminderType(kind)
	utc(&rem.CreatedAt)
	utc(&rem.UpdatedAt)

	return rem, nil
}
