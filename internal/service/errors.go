package service

import (
	"fmt"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
	"wellness-service/internal/domain/service"
)

// invalid marks a validation failure so transports can map it
func invalid(err error) error {
	return fmt.Errorf("%w: %v", entity.ErrValidation, err)
}

func listFilter(userID string, r service.TimeRange) (repository.Filter, error) {
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return repository.Filter{}, invalid(fmt.Errorf("range end is before range start"))
	}
	return repository.Filter{UserID: userID, From: r.From, To: r.To}, nil
}

// checkOwner enforces that a log's parent belongs to the caller
func checkOwner(parentUserID, userID string) error {
	if parentUserID != userID {
		return entity.ErrOwnershipViolation
	}
	return nil
}
