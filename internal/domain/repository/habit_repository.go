package repository

import (
	"context"
	"wellness-service/internal/domain/entity"

	"github.com/google/uuid"
)

// HabitRepository defines the interface for habit persistence
type HabitRepository interface {
	// Create creates a new habit
	Create(ctx context.Context, habit *entity.Habit) error

	// GetByID retrieves a habit regardless of owner (for ownership checks)
	GetByID(ctx context.Context, habitID uuid.UUID) (*entity.Habit, error)

	// List retrieves habits newest first; the range applies to created_at
	List(ctx context.Context, filter Filter) ([]*entity.Habit, error)

	// Update updates a habit
	Update(ctx context.Context, habit *entity.Habit) error

	// CreateLog records a completion
	CreateLog(ctx context.Context, log *entity.HabitLog) error

	// ListLogs retrieves completions newest first; the range applies to completed_at
	ListLogs(ctx context.Context, filter Filter) ([]*entity.HabitLog, error)
}
