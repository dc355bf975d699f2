package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"

	"github.com/google/uuid"
)

const notificationColumns = `id, user_id, reminder_id, event_id, status, subject, recipient, error, sent_at, created_at, updated_at`

type notificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new SQLite notification repository
func NewNotificationRepository(s *Store) repository.NotificationRepository {
	return &notificationRepository{db: s.db}
}

func (r *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	query := `INSERT INTO notifications (` + notificationColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		n.ID.String(),
		n.UserID,
		n.ReminderID.String(),
		n.EventID,
		string(n.Status),
		n.Subject,
		nullString(n.Recipient),
		nullString(n.Error),
		formatTimePtr(n.SentAt),
		formatTime(n.CreatedAt),
		formatTime(n.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (r *notificationRepository) UpdateStatus(ctx context.Context, n *entity.Notification) error {
	query := `UPDATE notifications SET status = ?, error = ?, sent_at = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		string(n.Status),
		nullString(n.Error),
		formatTimePtr(n.SentAt),
		formatTime(n.UpdatedAt),
		n.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	return checkAffected(result, fmt.Errorf("notification %s: %w", n.ID, entity.ErrNotFound))
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*entity.Notification{}
	for rows.Next() {
		var (
			n                         entity.Notification
			id, reminderID, status    string
			recipient, errMsg, sentAt sql.NullString
			createdAt, updatedAt      string
		)
		if err := rows.Scan(&id, &n.UserID, &reminderID, &n.EventID, &status, &n.Subject,
			&recipient, &errMsg, &sentAt, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if n.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if n.ReminderID, err = uuid.Parse(reminderID); err != nil {
			return nil, err
		}
		if n.SentAt, err = parseTimePtr(sentAt); err != nil {
			return nil, err
		}
		if n.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if n.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		n.Status = entity.NotificationStatus(status)
		n.Recipient = stringPtr(recipient)
		n.Error = stringPtr(errMsg)
		notifications = append(notifications, &n)
	}

	return notifications, rows.Err()
}
