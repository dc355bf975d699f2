package service

import (
	"context"
	"fmt"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
	"wellness-service/internal/domain/service"
	"wellness-service/internal/logger"

	"github.com/google/uuid"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

type notificationService struct {
	repo       repository.NotificationRepository
	mailer     service.Mailer
	recipients map[string]string
}

// NewNotificationService creates a new notification service.
// recipients maps a user id to an email address.
func NewNotificationService(
	repo repository.NotificationRepository,
	mailer service.Mailer,
	recipients map[string]string,
) service.NotificationService {
	return &notificationService{
		repo:       repo,
		mailer:     mailer,
		recipients: recipients,
	}
}

func (s *notificationService) HandleReminder(ctx context.Context, event *entity.ReminderEvent) error {
	now := entity.Now()
	notification := &entity.Notification{
		ID:         uuid.New(),
		UserID:     event.UserID,
		ReminderID: event.ReminderID,
		EventID:    event.EventID,
		Status:     entity.NotificationStatusPending,
		Subject:    event.Title,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	to, ok := s.recipients[event.UserID]
	if !ok || to == "" || s.mailer == nil {
		notification.Status = entity.NotificationStatusSkipped
		if err := s.repo.Create(ctx, notification); err != nil {
			return fmt.Errorf("failed to create notification record: %w", err)
		}
		logger.Info("no recipient for reminder, skipping", "user_id", event.UserID, "reminder_id", event.ReminderID)
		return nil
	}
	notification.Recipient = &to

	if err := s.repo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification record: %w", err)
	}

	sendErr := s.mailer.SendReminderEmail(ctx, to, event)

	notification.UpdatedAt = entity.NextUpdatedAt(notification.UpdatedAt)
	if sendErr != nil {
		errMsg := sendErr.Error()
		notification.Status = entity.NotificationStatusFailed
		notification.Error = &errMsg
	} else {
		sentAt := notification.UpdatedAt
		notification.Status = entity.NotificationStatusSent
		notification.SentAt = &sentAt
	}

	if err := s.repo.UpdateStatus(ctx, notification); err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	if sendErr != nil {
		return fmt.Errorf("failed to send reminder email: %w", sendErr)
	}

	return nil
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	limit = min(limit, maxNotificationLimit)
	return s.repo.ListByUser(ctx, userID, limit)
}
