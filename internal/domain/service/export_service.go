package service

import (
	"context"
	"wellness-service/internal/domain/entity"
)

// ExportService dumps every record a user owns
type ExportService interface {
	Export(ctx context.Context, userID string) (*entity.Snapshot, error)
}
