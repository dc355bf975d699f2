package service

import (
	"context"
	"fmt"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
	"wellness-service/internal/domain/service"

	"golang.org/x/sync/errgroup"
)

type exportService struct {
	moodRepo     repository.MoodRepository
	medications  repository.IntakeRepository
	supplements  repository.IntakeRepository
	habitRepo    repository.HabitRepository
	reminderRepo repository.ReminderRepository
}

// NewExportService creates a new export service
func NewExportService(
	moodRepo repository.MoodRepository,
	medications repository.IntakeRepository,
	supplements repository.IntakeRepository,
	habitRepo repository.HabitRepository,
	reminderRepo repository.ReminderRepository,
) service.ExportService {
	return &exportService{
		moodRepo:     moodRepo,
		medications:  medications,
		supplements:  supplements,
		habitRepo:    habitRepo,
		reminderRepo: reminderRepo,
	}
}

// Export reads every kind concurrently; the first failure cancels the rest
func (s *exportService) Export(ctx context.Context, userID string) (*entity.Snapshot, error) {
	filter := repository.ForUser(userID)
	snapshot := &entity.Snapshot{UserID: userID}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := s.moodRepo.List(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to export mood entries: %w", err)
		}
		snapshot.MoodEntries = orEmpty(entries)
		return nil
	})
	g.Go(func() error {
		items, err := s.medications.List(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to export medications: %w", err)
		}
		snapshot.Medications = orEmpty(items)
		return nil
	})
	g.Go(func() error {
		logs, err := s.medications.ListLogs(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to export medication logs: %w", err)
		}
		snapshot.MedicationLogs = orEmpty(logs)
		return nil
	})
	g.Go(func() error {
		items, err := s.supplements.List(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to export supplements: %w", err)
		}
		snapshot.Supplements = orEmpty(items)
		return nil
	})
	g.Go(func() error {
		logs, err := s.supplements.ListLogs(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to export supplement logs: %w", err)
		}
		snapshot.SupplementLogs = orEmpty(logs)
		return nil
	})
	g.Go(func() error {
		habits, err := s.habitRepo.List(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to export habits: %w", err)
		}
		snapshot.Habits = orEmpty(habits)
		return nil
	})
	g.Go(func() error {
		logs, err := s.habitRepo.ListLogs(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to export habit logs: %w", err)
		}
		snapshot.HabitLogs = orEmpty(logs)
		return nil
	})
	g.Go(func() error {
		reminders, err := s.reminderRepo.List(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to export reminders: %w", err)
		}
		snapshot.Reminders = orEmpty(reminders)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot.ExportedAt = entity.Now()
	return snapshot, nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
