package entity

import (
	"time"

	"github.com/google/uuid"
)

// Habit represents a user's habit
type Habit struct {
	ID     uuid.UUID `json:"id"`
	UserID string    `json:"user_id"`

	// Basic info
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	TargetFrequency string  `json:"target_frequency"`

	// Metadata
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HabitLog represents a single completion of a habit
type HabitLog struct {
	ID      uuid.UUID `json:"id"`
	HabitID uuid.UUID `json:"habit_id"`
	UserID  string    `json:"user_id"`

	CompletedAt time.Time `json:"completed_at"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
