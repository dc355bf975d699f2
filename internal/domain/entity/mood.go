package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinMoodScore = 1
	MaxMoodScore = 10
)

// MoodEntry is a single mood log
type MoodEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	MoodScore int       `json:"mood_score"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
