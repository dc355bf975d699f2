package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
	"wellness-service/internal/domain/service"
	"wellness-service/internal/logger"
	"wellness-service/pkg/validation"

	"github.com/google/uuid"
)

const clockLayout = "15:04"

type reminderService struct {
	reminderRepo repository.ReminderRepository
	publisher    service.ReminderPublisher
	lock         service.FiringLock
	location     *time.Location
	lockTTL      time.Duration
}

// NewReminderService creates a new reminder service.
// lock may be nil when a single replica runs the dispatcher.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	publisher service.ReminderPublisher,
	lock service.FiringLock,
	location *time.Location,
	lockTTL time.Duration,
) service.ReminderService {
	if location == nil {
		location = time.UTC
	}
	return &reminderService{
		reminderRepo: reminderRepo,
		publisher:    publisher,
		lock:         lock,
		location:     location,
		lockTTL:      lockTTL,
	}
}

func (s *reminderService) CreateReminder(ctx context.Context, userID string, in service.CreateReminderInput) (*entity.Reminder, error) {
	if err := validation.ValidateName("title", in.Title); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateNotes(in.Message); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateClock(in.ReminderTime); err != nil {
		return nil, invalid(err)
	}

	days, err := validation.NormalizeDaysOfWeek(in.DaysOfWeek)
	if err != nil {
		return nil, invalid(err)
	}

	reminderType := in.ReminderType
	if reminderType == "" {
		reminderType = entity.ReminderTypeGeneral
	}
	if !reminderType.Valid() {
		return nil, invalid(fmt.Errorf("unknown reminder_type %q", reminderType))
	}

	now := entity.Now()
	reminder := &entity.Reminder{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        in.Title,
		Message:      in.Message,
		ReminderTime: in.ReminderTime,
		DaysOfWeek:   days,
		ReminderType: reminderType,
		TargetID:     in.TargetID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return reminder, nil
}

func (s *reminderService) ListReminders(ctx context.Context, userID string, activeOnly bool) ([]*entity.Reminder, error) {
	return s.reminderRepo.List(ctx, repository.Filter{UserID: userID, ActiveOnly: activeOnly})
}

func (s *reminderService) UpdateReminder(ctx context.Context, id uuid.UUID, userID string, in service.UpdateReminderInput) (*entity.Reminder, error) {
	reminder, err := s.reminderRepo.GetByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if err := validation.ValidateName("title", *in.Title); err != nil {
			return nil, invalid(err)
		}
		reminder.Title = *in.Title
	}

	if in.Message != nil {
		if err := validation.ValidateNotes(in.Message); err != nil {
			return nil, invalid(err)
		}
		reminder.Message = in.Message
	}

	if in.ReminderTime != nil {
		if err := validation.ValidateClock(*in.ReminderTime); err != nil {
			return nil, invalid(err)
		}
		reminder.ReminderTime = *in.ReminderTime
	}

	if in.DaysOfWeek != nil {
		days, err := validation.NormalizeDaysOfWeek(in.DaysOfWeek)
		if err != nil {
			return nil, invalid(err)
		}
		reminder.DaysOfWeek = days
	}

	if in.ReminderType != nil {
		if !in.ReminderType.Valid() {
			return nil, invalid(fmt.Errorf("unknown reminder_type %q", *in.ReminderType))
		}
		reminder.ReminderType = *in.ReminderType
	}

	if in.TargetID != nil {
		reminder.TargetID = in.TargetID
	}

	if in.IsActive != nil {
		reminder.IsActive = *in.IsActive
	}

	reminder.UpdatedAt = entity.NextUpdatedAt(reminder.UpdatedAt)

	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	return reminder, nil
}

func (s *reminderService) DispatchDue(ctx context.Context, now time.Time) (int, error) {
	local := now.In(s.location)
	clock := local.Format(clockLayout)
	date := local.Format("2006-01-02")

	due, err := s.reminderRepo.ListDue(ctx, local.Weekday(), clock)
	if err != nil {
		return 0, fmt.Errorf("failed to list due reminders: %w", err)
	}

	dueAt := local.Truncate(time.Minute).UTC()
	published := 0
	var errs []error

	for _, reminder := range due {
		if s.lock != nil {
			key := fmt.Sprintf("reminder:fired:%s:%s:%s", reminder.ID, date, clock)
			acquired, err := s.lock.Acquire(ctx, key, s.lockTTL)
			if err != nil {
				errs = append(errs, fmt.Errorf("reminder %s: failed to acquire lock: %w", reminder.ID, err))
				continue
			}
			if !acquired {
				logger.Debug("reminder already fired", "reminder_id", reminder.ID, "clock", clock)
				continue
			}
		}

		event := &entity.ReminderEvent{
			EventID:      uuid.New().String(),
			ReminderID:   reminder.ID,
			UserID:       reminder.UserID,
			Title:        reminder.Title,
			ReminderType: reminder.ReminderType,
			TargetID:     reminder.TargetID,
			DueAt:        dueAt,
		}
		if reminder.Message != nil {
			event.Message = *reminder.Message
		}

		if err := s.publisher.PublishReminder(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("reminder %s: failed to publish: %w", reminder.ID, err))
			continue
		}
		published++
	}

	return published, errors.Join(errs...)
}
