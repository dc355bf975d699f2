package repository

import (
	"context"
	"wellness-service/internal/domain/entity"

	"github.com/google/uuid"
)

// MoodRepository defines the interface for mood entry persistence
type MoodRepository interface {
	// Create inserts a new mood entry
	Create(ctx context.Context, entry *entity.MoodEntry) error

	// GetByIDAndUserID retrieves an entry owned by userID
	GetByIDAndUserID(ctx context.Context, id uuid.UUID, userID string) (*entity.MoodEntry, error)

	// List retrieves entries newest first; the range applies to created_at
	List(ctx context.Context, filter Filter) ([]*entity.MoodEntry, error)

	// Update persists score, notes and updated_at
	Update(ctx context.Context, entry *entity.MoodEntry) error
}
