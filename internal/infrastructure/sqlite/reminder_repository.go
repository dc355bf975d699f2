package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"

	"github.com/google/uuid"
)

const reminderColumns = `id, user_id, title, message, reminder_time, days_of_week, reminder_type, target_id, is_active, created_at, updated_at`

type reminderRepository struct {
	db *sql.DB
}

// NewReminderRepository creates a new SQLite reminder repository.
// days_of_week is kept as a JSON array so json_each can match a weekday.
func NewReminderRepository(s *Store) repository.ReminderRepository {
	return &reminderRepository{db: s.db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	days, err := json.Marshal(reminder.DaysOfWeek)
	if err != nil {
		return fmt.Errorf("failed to encode days_of_week: %w", err)
	}

	query := `INSERT INTO reminders (` + reminderColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		reminder.ID.String(),
		reminder.UserID,
		reminder.Title,
		nullString(reminder.Message),
		reminder.ReminderTime,
		string(days),
		string(reminder.ReminderType),
		nullUUID(reminder.TargetID),
		reminder.IsActive,
		formatTime(reminder.CreatedAt),
		formatTime(reminder.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	return nil
}

func (r *reminderRepository) GetByIDAndUserID(ctx context.Context, id uuid.UUID, userID string) (*entity.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = ? AND user_id = ?`

	reminder, err := scanReminder(r.db.QueryRowContext(ctx, query, id.String(), userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reminder %s: %w", id, entity.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

func (r *reminderRepository) List(ctx context.Context, filter repository.Filter) ([]*entity.Reminder, error) {
	clause, args := where(filter.UserID, filter.From, filter.To, filter.ActiveOnly, "created_at", "is_active")
	query := `SELECT ` + reminderColumns + ` FROM reminders` + clause + ` ORDER BY created_at DESC, id`

	return r.query(ctx, query, args...)
}

func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	days, err := json.Marshal(reminder.DaysOfWeek)
	if err != nil {
		return fmt.Errorf("failed to encode days_of_week: %w", err)
	}

	query := `UPDATE reminders
		SET title = ?, message = ?, reminder_time = ?, days_of_week = ?, reminder_type = ?,
		    target_id = ?, is_active = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		reminder.Title,
		nullString(reminder.Message),
		reminder.ReminderTime,
		string(days),
		string(reminder.ReminderType),
		nullUUID(reminder.TargetID),
		reminder.IsActive,
		formatTime(reminder.UpdatedAt),
		reminder.ID.String(),
		reminder.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	return checkAffected(result, fmt.Errorf("reminder %s: %w", reminder.ID, entity.ErrNotFound))
}

func (r *reminderRepository) ListDue(ctx context.Context, weekday time.Weekday, clock string) ([]*entity.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders
		WHERE is_active = 1 AND reminder_time = ?
		  AND EXISTS (SELECT 1 FROM json_each(reminders.days_of_week) WHERE json_each.value = ?)
		ORDER BY created_at, id`

	return r.query(ctx, query, clock, int(weekday))
}

func (r *reminderRepository) query(ctx context.Context, query string, args ...any) ([]*entity.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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

	return reminders, rows.Err()
}

func scanReminder(row scanner) (*entity.Reminder, error) {
	var (
		rem                  entity.Reminder
		id, days, kind       string
		message, targetID    sql.NullString
		createdAt, updatedAt string
	)

	err := row.Scan(
		&id,
		&rem.UserID,
		&rem.Title,
		&message,
		&rem.ReminderTime,
		&days,
		&kind,
		&targetID,
		&rem.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rem.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(days), &rem.DaysOfWeek); err != nil {
		return nil, fmt.Errorf("failed to decode days_of_week: %w", err)
	}
	if targetID.Valid {
		target, err := uuid.Parse(targetID.String)
		if err != nil {
			return nil, err
		}
		rem.TargetID = &target
	}
	if rem.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if rem.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	rem.Message = stringPtr(message)
	rem.ReminderType = entity.ReminderType(kind)

	return &rem, nil
}

func nullUUID(id *uuid.UUID) sql.NullString {
	if id == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: id.String(), Valid: true}
}
