package postgres

import (
	"context"
	"fmt"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new PostgreSQL notification repository
func NewNotificationRepository(db *pgxpool.Pool) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, reminder_id, event_id, status, subject, recipient, error, sent_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		notification.ID,
		notification.UserID,
		notification.ReminderID,
		notification.EventID,
		string(notification.Status),
		notification.Subject,
		notification.Recipient,
		notification.Error,
		notification.SentAt,
		notification.CreatedAt,
		notification.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (r *notificationRepository) UpdateStatus(ctx context.Context, notification *entity.Notification) error {
	query := `
		UPDATE notifications
		SET status = $1, error = $2, sent_at = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.db.Exec(ctx, query,
		string(notification.Status),
		notification.Error,
		notification.SentAt,
		notification.UpdatedAt,
		notification.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", notification.ID, entity.ErrNotFound)
	}

	return nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, reminder_id, event_id, status, subject, recipient, error, sent_at, created_at, updated_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*entity.Notification{}
	for rows.Next() {
		var (
			n      entity.Notification
			status string
		)
		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.ReminderID,
			&n.EventID,
			&status,
			&n.Subject,
			&n.Recipient,
			&n.Error,
			&n.SentAt,
			&n.CreatedAt,
			&n.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Status = entity.NotificationStatus(status)
		if n.SentAt != nil {
			utc(n.SentAt)
		}
		utc(&n.CreatedAt)
		utc(&n.UpdatedAt)
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}
