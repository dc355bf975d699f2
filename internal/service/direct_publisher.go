package service

import (
	"context"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/service"
)

type directPublisher struct {
	notifications service.NotificationService
}

// NewDirectPublisher delivers reminder events in-process, for deployments without Kafka
func NewDirectPublisher(notifications service.NotificationService) service.ReminderPublisher {
	return &directPublisher{notifications: notifications}
}

func (p *directPublisher) PublishReminder(ctx context.Context, event *entity.ReminderEvent) error {
	return p.notifications.HandleReminder(ctx, event)
}
