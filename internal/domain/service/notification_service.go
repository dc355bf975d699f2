package service

import (
	"context"
	"wellness-service/internal/domain/entity"
)

// NotificationService delivers reminder events to their recipients
type NotificationService interface {
	// HandleReminder sends the reminder to the user's configured address.
	// Users without one are skipped without error.
	HandleReminder(ctx context.Context, event *entity.ReminderEvent) error

	// ListNotifications retrieves the delivery history of a user
	ListNotifications(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)
}

// Mailer sends reminder emails
type Mailer interface {
	SendReminderEmail(ctx context.Context, to string, event *entity.ReminderEvent) error
}
