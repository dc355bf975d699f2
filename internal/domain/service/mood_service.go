package service

import (
	"context"
	"wellness-service/internal/domain/entity"

	"github.com/google/uuid"
)

// MoodService defines the interface for mood tracking
type MoodService interface {
	// CreateMoodEntry records a mood score between 1 and 10
	CreateMoodEntry(ctx context.Context, userID string, score int, notes *string) (*entity.MoodEntry, error)

	// ListMoodEntries retrieves entries newest first, optionally bounded by created_at
	ListMoodEntries(ctx context.Context, userID string, r TimeRange) ([]*entity.MoodEntry, error)

	// UpdateMoodEntry changes the score and/or notes of an entry
	UpdateMoodEntry(ctx context.Context, id uuid.UUID, userID string, score *int, notes *string) (*entity.MoodEntry, error)
}
