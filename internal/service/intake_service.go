package service

import (
	"context"
	"fmt"
	"time"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
	"wellness-service/internal/domain/service"
	"wellness-service/pkg/validation"

	"github.com/google/uuid"
)

type intakeService struct {
	repo repository.IntakeRepository
}

// NewIntakeService creates the service for the kind its repository stores
func NewIntakeService(repo repository.IntakeRepository) service.IntakeService {
	return &intakeService{
		repo: repo,
	}
}

func (s *intakeService) Kind() entity.IntakeKind {
	return s.repo.Kind()
}

func (s *intakeService) CreateItem(ctx context.Context, userID string, in service.CreateIntakeInput) (*entity.Intake, error) {
	if err := validation.ValidateName("name", in.Name); err != nil {
		return nil, invalid(err)
	}

	freq, err := resolveFrequency(in.Frequency, in.FrequencyLabel)
	if err != nil {
		return nil, err
	}

	now := entity.Now()
	item := &entity.Intake{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      s.repo.Kind(),
		Name:      in.Name,
		Dosage:    in.Dosage,
		Frequency: freq,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", item.Kind, err)
	}

	return item, nil
}

func (s *intakeService) ListItems(ctx context.Context, userID string, activeOnly bool) ([]*entity.Intake, error) {
	return s.repo.List(ctx, repository.Filter{UserID: userID, ActiveOnly: activeOnly})
}

func (s *intakeService) UpdateItem(ctx context.Context, id uuid.UUID, userID string, in service.UpdateIntakeInput) (*entity.Intake, error) {
	item, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if err := validation.ValidateName("name", *in.Name); err != nil {
			return nil, invalid(err)
		}
		item.Name = *in.Name
	}

	if in.Dosage != nil {
		item.Dosage = in.Dosage
	}

	if in.Frequency != nil || in.FrequencyLabel != nil {
		var label string
		if in.FrequencyLabel != nil {
			label = *in.FrequencyLabel
		}
		freq, err := resolveFrequency(in.Frequency, label)
		if err != nil {
			return nil, err
		}
		item.Frequency = freq
	}

	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}

	item.UpdatedAt = entity.NextUpdatedAt(item.UpdatedAt)

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", item.Kind, err)
	}

	return item, nil
}

func (s *intakeService) LogIntake(ctx context.Context, itemID uuid.UUID, userID string, takenAt *time.Time, notes *string) (*entity.IntakeLog, error) {
	if err := validation.ValidateNotes(notes); err != nil {
		return nil, invalid(err)
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := checkOwner(item.UserID, userID); err != nil {
		return nil, fmt.Errorf("%s %s: %w", item.Kind, itemID, err)
	}

	now := entity.Now()
	log := &entity.IntakeLog{
		ID:        uuid.New(),
		ItemID:    itemID,
		UserID:    userID,
		Kind:      item.Kind,
		TakenAt:   now,
		Notes:     notes,
		CreatedAt: now,
	}
	if takenAt != nil {
		log.TakenAt = takenAt.UTC().Truncate(time.Microsecond)
	}

	if err := s.repo.CreateLog(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to log %s: %w", item.Kind, err)
	}

	return log, nil
}

func (s *intakeService) ListLogs(ctx context.Context, userID string, r service.TimeRange) ([]*entity.IntakeLog, error) {
	filter, err := listFilter(userID, r)
	if err != nil {
		return nil, err
	}

	return s.repo.ListLogs(ctx, filter)
}

// getOwned hides items of other users behind ErrNotFound
func (s *intakeService) getOwned(ctx context.Context, id uuid.UUID, userID string) (*entity.Intake, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if item.UserID != userID {
		return nil, fmt.Errorf("%s %s: %w", item.Kind, id, entity.ErrNotFound)
	}

	return item, nil
}

// resolveFrequency prefers an explicit schedule and falls back to parsing label
func resolveFrequency(explicit *entity.Frequency, label string) (entity.Frequency, error) {
	if explicit != nil {
		if explicit.Label != "" {
			label = explicit.Label
		}
		return entity.NewFrequency(explicit.Kind, explicit.Times, label)
	}

	return entity.ParseFrequency(label), nil
}
