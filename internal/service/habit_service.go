package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
	"wellness-service/internal/domain/service"
	"wellness-service/pkg/validation"

	"github.com/google/uuid"
)

const defaultTargetFrequency = "daily"

type habitService struct {
	habitRepo repository.HabitRepository
}

// NewHabitService creates a new habit service
func NewHabitService(habitRepo repository.HabitRepository) service.HabitService {
	return &habitService{
		habitRepo: habitRepo,
	}
}

func (s *habitService) CreateHabit(ctx context.Context, userID, name string, description *string, targetFrequency string) (*entity.Habit, error) {
	if err := validation.ValidateName("name", name); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateNotes(description); err != nil {
		return nil, invalid(err)
	}

	if strings.TrimSpace(targetFrequency) == "" {
		targetFrequency = defaultTargetFrequency
	}

	now := entity.Now()
	habit := &entity.Habit{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		Description:     description,
		TargetFrequency: targetFrequency,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

func (s *habitService) ListHabits(ctx context.Context, userID string, activeOnly bool) ([]*entity.Habit, error) {
	return s.habitRepo.List(ctx, repository.Filter{UserID: userID, ActiveOnly: activeOnly})
}

func (s *habitService) UpdateHabit(ctx context.Context, habitID uuid.UUID, userID string, in service.UpdateHabitInput) (*entity.Habit, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	if habit.UserID != userID {
		return nil, fmt.Errorf("habit %s: %w", habitID, entity.ErrNotFound)
	}

	if in.Name != nil {
		if err := validation.ValidateName("name", *in.Name); err != nil {
			return nil, invalid(err)
		}
		habit.Name = *in.Name
	}

	if in.Description != nil {
		habit.Description = in.Description
	}

	if in.TargetFrequency != nil && strings.TrimSpace(*in.TargetFrequency) != "" {
		habit.TargetFrequency = *in.TargetFrequency
	}

	if in.IsActive != nil {
		habit.IsActive = *in.IsActive
	}

	habit.UpdatedAt = entity.NextUpdatedAt(habit.UpdatedAt)

	if err := s.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return habit, nil
}

func (s *habitService) LogHabit(ctx context.Context, habitID uuid.UUID, userID string, completedAt *time.Time, notes *string) (*entity.HabitLog, error) {
	if err := validation.ValidateNotes(notes); err != nil {
		return nil, invalid(err)
	}

	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	if err := checkOwner(habit.UserID, userID); err != nil {
		return nil, fmt.Errorf("habit %s: %w", habitID, err)
	}

	now := entity.Now()
	log := &entity.HabitLog{
		ID:          uuid.New(),
		HabitID:     habitID,
		UserID:      userID,
		CompletedAt: now,
		Notes:       notes,
		CreatedAt:   now,
	}
	if completedAt != nil {
		log.CompletedAt = completedAt.UTC().Truncate(time.Microsecond)
	}

	if err := s.habitRepo.CreateLog(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to log habit: %w", err)
	}

	return log, nil
}

func (s *habitService) ListHabitLogs(ctx context.Context, userID string, r service.TimeRange) ([]*entity.HabitLog, error) {
	filter, err := listFilter(userID, r)
	if err != nil {
		return nil, err
	}

	return s.habitRepo.ListLogs(ctx, filter)
}
