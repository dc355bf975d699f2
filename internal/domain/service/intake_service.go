package service

import (
	"context"
	"time"
	"wellness-service/internal/domain/entity"

	"github.com/google/uuid"
)

// IntakeService defines the interface for medications or supplements.
// An implementation serves exactly one entity.IntakeKind.
type IntakeService interface {
	Kind() entity.IntakeKind

	// CreateItem adds a new active item
	CreateItem(ctx context.Context, userID string, in CreateIntakeInput) (*entity.Intake, error)

	// ListItems retrieves a user's items newest first
	ListItems(ctx context.Context, userID string, activeOnly bool) ([]*entity.Intake, error)

	// UpdateItem merges the provided fields into an item owned by userID
	UpdateItem(ctx context.Context, id uuid.UUID, userID string, in UpdateIntakeInput) (*entity.Intake, error)

	// LogIntake records a dose. takenAt defaults to now.
	LogIntake(ctx context.Context, itemID uuid.UUID, userID string, takenAt *time.Time, notes *string) (*entity.IntakeLog, error)

	// ListLogs retrieves dose logs newest first, optionally bounded by taken_at
	ListLogs(ctx context.Context, userID string, r TimeRange) ([]*entity.IntakeLog, error)
}
