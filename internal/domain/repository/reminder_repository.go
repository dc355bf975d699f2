package repository

import (
	"context"
	"time"
	"wellness-service/internal/domain/entity"

	"github.com/google/uuid"
)

// ReminderRepository defines the interface for reminder persistence
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entity.Reminder) error

	// GetByIDAndUserID retrieves a reminder owned by userID
	GetByIDAndUserID(ctx context.Context, id uuid.UUID, userID string) (*entity.Reminder, error)

	// List retrieves reminders newest first
	List(ctx context.Context, filter Filter) ([]*entity.Reminder, error)

	Update(ctx context.Context, reminder *entity.Reminder) error

	// ListDue retrieves active reminders of every user set for clock ("HH:MM") on weekday
	ListDue(ctx context.Context, weekday time.Weekday, clock string) ([]*entity.Reminder, error)
}
