package service

import (
	"context"
	"fmt"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
	"wellness-service/internal/domain/service"
	"wellness-service/pkg/validation"

	"github.com/google/uuid"
)

type moodService struct {
	moodRepo repository.MoodRepository
}

// NewMoodService creates a new mood service
func NewMoodService(moodRepo repository.MoodRepository) service.MoodService {
	return &moodService{
		moodRepo: moodRepo,
	}
}

func (s *moodService) CreateMoodEntry(ctx context.Context, userID string, score int, notes *string) (*entity.MoodEntry, error) {
	if err := validation.ValidateMoodScore(score); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateNotes(notes); err != nil {
		return nil, invalid(err)
	}

	now := entity.Now()
	entry := &entity.MoodEntry{
		ID:        uuid.New(),
		UserID:    userID,
		MoodScore: score,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.moodRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}

	return entry, nil
}

func (s *moodService) ListMoodEntries(ctx context.Context, userID string, r service.TimeRange) ([]*entity.MoodEntry, error) {
	filter, err := listFilter(userID, r)
	if err != nil {
		return nil, err
	}

	return s.moodRepo.List(ctx, filter)
}

func (s *moodService) UpdateMoodEntry(ctx context.Context, id uuid.UUID, userID string, score *int, notes *string) (*entity.MoodEntry, error) {
	entry, err := s.moodRepo.GetByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if score != nil {
		if err := validation.ValidateMoodScore(*score); err != nil {
			return nil, invalid(err)
		}
		entry.MoodScore = *score
	}

	if notes != nil {
		if err := validation.ValidateNotes(notes); err != nil {
			return nil, invalid(err)
		}
		entry.Notes = notes
	}

	entry.UpdatedAt = entity.NextUpdatedAt(entry.UpdatedAt)

	if err := s.moodRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}

	return entry, nil
}
