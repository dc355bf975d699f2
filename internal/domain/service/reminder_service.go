package service

import (
	"context"
	"time"
	"wellness-service/internal/domain/entity"

	"github.com/google/uuid"
)

// ReminderService defines the interface for reminders and their delivery
type ReminderService interface {
	CreateReminder(ctx context.Context, userID string, in CreateReminderInput) (*entity.Reminder, error)

	ListReminders(ctx context.Context, userID string, activeOnly bool) ([]*entity.Reminder, error)

	UpdateReminder(ctx context.Context, id uuid.UUID, userID string, in UpdateReminderInput) (*entity.Reminder, error)

	// DispatchDue publishes an event for every active reminder due at now.
	// Returns the number of events published.
	DispatchDue(ctx context.Context, now time.Time) (int, error)
}

// ReminderPublisher hands due reminder events to the delivery pipeline
type ReminderPublisher interface {
	PublishReminder(ctx context.Context, event *entity.ReminderEvent) error
}

// FiringLock makes sure a reminder fires once per scheduled minute across replicas
type FiringLock interface {
	// Acquire returns false when the firing was already claimed
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
