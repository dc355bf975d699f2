package service

import (
	"context"
	"fmt"
	"time"
	"wellness-service/internal/analytics"
	"wellness-service/internal/domain/repository"
	"wellness-service/internal/domain/service"

	"golang.org/x/sync/errgroup"
)

type analyticsService struct {
	moodRepo    repository.MoodRepository
	habitRepo   repository.HabitRepository
	medications repository.IntakeRepository
	supplements repository.IntakeRepository
	location    *time.Location
}

// NewAnalyticsService creates a service that counts calendar days in location
func NewAnalyticsService(
	moodRepo repository.MoodRepository,
	habitRepo repository.HabitRepository,
	medications repository.IntakeRepository,
	supplements repository.IntakeRepository,
	location *time.Location,
) service.AnalyticsService {
	if location == nil {
		location = time.UTC
	}
	return &analyticsService{
		moodRepo:    moodRepo,
		habitRepo:   habitRepo,
		medications: medications,
		supplements: supplements,
		location:    location,
	}
}

func (s *analyticsService) Mood(ctx context.Context, userID, start, end string) (*analytics.MoodAnalytics, error) {
	r, filter, err := s.rangeFilter(userID, start, end)
	if err != nil {
		return nil, err
	}

	entries, err := s.moodRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}

	return analytics.Mood(entries, r), nil
}

func (s *analyticsService) Habits(ctx context.Context, userID, start, end string) (*analytics.HabitOverview, error) {
	r, filter, err := s.rangeFilter(userID, start, end)
	if err != nil {
		return nil, err
	}

	habits, err := s.habitRepo.List(ctx, repository.ForUser(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	logs, err := s.habitRepo.ListLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load habit logs: %w", err)
	}

	return analytics.Habits(habits, logs, r), nil
}

func (s *analyticsService) Medications(ctx context.Context, userID, start, end string) (*analytics.AdherenceOverview, error) {
	return s.adherence(ctx, s.medications, userID, start, end)
}

func (s *analyticsService) Supplements(ctx context.Context, userID, start, end string) (*analytics.AdherenceOverview, error) {
	return s.adherence(ctx, s.supplements, userID, start, end)
}

func (s *analyticsService) Overview(ctx context.Context, userID, start, end string) (*service.Overview, error) {
	// Validate once up front so a bad range is not reported four times
	if _, _, err := s.rangeFilter(userID, start, end); err != nil {
		return nil, err
	}

	overview := &service.Overview{Start: start, End: end}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		mood, err := s.Mood(ctx, userID, start, end)
		overview.Mood = mood
		return err
	})
	g.Go(func() error {
		habits, err := s.Habits(ctx, userID, start, end)
		overview.Habits = habits
		return err
	})
	g.Go(func() error {
		meds, err := s.Medications(ctx, userID, start, end)
		overview.Medications = meds
		return err
	})
	g.Go(func() error {
		supps, err := s.Supplements(ctx, userID, start, end)
		overview.Supplements = supps
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return overview, nil
}

func (s *analyticsService) adherence(ctx context.Context, repo repository.IntakeRepository, userID, start, end string) (*analytics.AdherenceOverview, error) {
	r, filter, err := s.rangeFilter(userID, start, end)
	if err != nil {
		return nil, err
	}

	items, err := repo.List(ctx, repository.Filter{UserID: userID, ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load %ss: %w", repo.Kind(), err)
	}

	logs, err := repo.ListLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s logs: %w", repo.Kind(), err)
	}

	return analytics.Adherence(repo.Kind(), items, logs, r), nil
}

// rangeFilter parses the dates and builds a store filter covering every
// instant of the range
func (s *analyticsService) rangeFilter(userID, start, end string) (analytics.DateRange, repository.Filter, error) {
	r, err := analytics.ParseDateRange(start, end, s.location)
	if err != nil {
		return analytics.DateRange{}, repository.Filter{}, invalid(err)
	}

	from, to := r.Bounds()
	return r, repository.Filter{UserID: userID, From: &from, To: &to}, nil
}
