package service

import (
	"context"
	"time"
	"wellness-service/internal/domain/entity"

	"github.com/google/uuid"
)

// HabitService defines the interface for habit business logic
type HabitService interface {
	// CreateHabit creates a new active habit
	CreateHabit(ctx context.Context, userID, name string, description *string, targetFrequency string) (*entity.Habit, error)

	// ListHabits retrieves all habits for a user
	ListHabits(ctx context.Context, userID string, activeOnly bool) ([]*entity.Habit, error)

	// UpdateHabit updates a habit
	UpdateHabit(ctx context.Context, habitID uuid.UUID, userID string, in UpdateHabitInput) (*entity.Habit, error)

	// LogHabit records a completion. completedAt defaults to now.
	LogHabit(ctx context.Context, habitID uuid.UUID, userID string, completedAt *time.Time, notes *string) (*entity.HabitLog, error)

	// ListHabitLogs retrieves completions newest first, optionally bounded by completed_at
	ListHabitLogs(ctx context.Context, userID string, r TimeRange) ([]*entity.HabitLog, error)
}
