package repository

import (
	"context"
	"wellness-service/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	// Create inserts a delivery record
	Create(ctx context.Context, notification *entity.Notification) error

	// UpdateStatus persists status, error, sent_at and updated_at
	UpdateStatus(ctx context.Context, notification *entity.Notification) error

	// ListByUser retrieves the most recent records of a user, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)
}
