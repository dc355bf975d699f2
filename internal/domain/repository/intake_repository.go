package repository

import (
	"context"
	"wellness-service/internal/domain/entity"

	"github.com/google/uuid"
)

// IntakeRepository defines persistence for one kind of intake item and its logs.
// Each instance is bound to a single entity.IntakeKind.
type IntakeRepository interface {
	// Kind returns the intake kind this repository stores
	Kind() entity.IntakeKind

	// Create inserts a new item
	Create(ctx context.Context, item *entity.Intake) error

	// GetByID retrieves an item regardless of owner (for ownership checks)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Intake, error)

	// List retrieves items newest first; the range applies to created_at
	List(ctx context.Context, filter Filter) ([]*entity.Intake, error)

	// Update persists mutable fields and updated_at
	Update(ctx context.Context, item *entity.Intake) error

	// CreateLog inserts a dose log
	CreateLog(ctx context.Context, log *entity.IntakeLog) error

	// ListLogs retrieves logs newest first; the range applies to taken_at
	ListLogs(ctx context.Context, filter Filter) ([]*entity.IntakeLog, error)
}
