package service

import (
	"context"
	"errors"
	"testing"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
	"wellness-service/internal/infrastructure/sqlite"

	"github.com/google/uuid"
)

func reminderEvent(userID string) *entity.ReminderEvent {
	return &entity.ReminderEvent{
		EventID:      uuid.NewString(),
		ReminderID:   uuid.New(),
		UserID:       userID,
		Title:        "Take your meds",
		ReminderType: entity.ReminderTypeMedication,
		DueAt:        entity.Now(),
	}
}

func TestHandleReminder(t *testing.T) {
	ctx := context.Background()

	t.Run("sends to configured recipient", func(t *testing.T) {
		mailer := &recordingMailer{}
		svc := NewNotificationService(sqlite.NewNotificationRepository(setupStore(t)), mailer,
			map[string]string{"alice": "alice@example.com"})

		if err := svc.HandleReminder(ctx, reminderEvent("alice")); err != nil {
			t.Fatalf("HandleReminder: %v", err)
		}
		if len(mailer.sent) != 1 || mailer.sent[0] != "alice@example.com" {
			t.Errorf("sent = %v", mailer.sent)
		}

		history, err := svc.ListNotifications(ctx, "alice", 0)
		if err != nil {
			t.Fatalf("ListNotifications: %v", err)
		}
		if len(history) != 1 || history[0].Status != entity.NotificationStatusSent {
			t.Errorf("history = %+v", history)
		}
	})

	t.Run("skips users without recipient", func(t *testing.T) {
		mailer := &recordingMailer{}
		svc := NewNotificationService(sqlite.NewNotificationRepository(setupStore(t)), mailer, nil)

		if err := svc.HandleReminder(ctx, reminderEvent("bob")); err != nil {
			t.Fatalf("HandleReminder: %v", err)
		}
		if len(mailer.sent) != 0 {
			t.Errorf("sent = %v, want none", mailer.sent)
		}

		history, err := svc.ListNotifications(ctx, "bob", 10)
		if err != nil {
			t.Fatalf("ListNotifications: %v", err)
		}
		if len(history) != 1 || history[0].Status != entity.NotificationStatusSkipped {
			t.Errorf("history = %+v", history)
		}
	})

	t.Run("records failures", func(t *testing.T) {
		mailer := &recordingMailer{err: errors.New("smtp unavailable")}
		svc := NewNotificationService(sqlite.NewNotificationRepository(setupStore(t)), mailer,
			map[string]string{"carol": "carol@example.com"})

		if err := svc.HandleReminder(ctx, reminderEvent("carol")); err == nil {
			t.Fatal("expected error")
		}

		history, err := svc.ListNotifications(ctx, "carol", 10)
		if err != nil {
			t.Fatalf("ListNotifications: %v", err)
		}
		if len(history) != 1 || history[0].Status != entity.NotificationStatusFailed || history[0].Error == nil {
			t.Errorf("history = %+v", history)
		}
	})
}

func TestDirectPublisherDeliversInProcess(t *testing.T) {
	ctx := context.Background()
	mailer := &recordingMailer{}
	notifications := NewNotificationService(sqlite.NewNotificationRepository(setupStore(t)), mailer,
		map[string]string{"alice": "alice@example.com"})

	publisher := NewDirectPublisher(notifications)
	if err := publisher.PublishReminder(ctx, reminderEvent("alice")); err != nil {
		t.Fatalf("PublishReminder: %v", err)
	}
	if len(mailer.sent) != 1 {
		t.Errorf("sent = %v, want one email", mailer.sent)
	}

	mailer.err = errors.New("smtp down")
	if err := publisher.PublishReminder(ctx, reminderEvent("alice")); err == nil {
		t.Error("expected delivery failure to propagate")
	}
}

type limitRecorder struct {
	repository.NotificationRepository
	limit int
}

func (r *limitRecorder) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	r.limit = limit
	return nil, nil
}

func TestListNotificationsLimit(t *testing.T) {
	tests := []struct {
		requested int
		want      int
	}{
		{0, defaultNotificationLimit},
		{-3, defaultNotificationLimit},
		{10, 10},
		{1000, maxNotificationLimit},
	}
	for _, tt := range tests {
		repo := &limitRecorder{}
		svc := NewNotificationService(repo, nil, nil)
		if _, err := svc.ListNotifications(context.Background(), "alice", tt.requested); err != nil {
			t.Fatalf("ListNotifications: %v", err)
		}
		if repo.limit != tt.want {
			t.Errorf("limit %d → %d, want %d", tt.requested, repo.limit, tt.want)
		}
	}
}
