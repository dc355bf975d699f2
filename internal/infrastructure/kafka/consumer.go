package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wellness-service/internal/config"
	"wellness-service/internal/domain/service"
	"wellness-service/internal/logger"

	"github.com/segmentio/kafka-go"
)

// Consumer reads reminder events and hands them to the notification service
type Consumer struct {
	reader        *kafka.Reader
	notifications service.NotificationService
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(cfg *config.KafkaConfig, notifications service.NotificationService) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	return &Consumer{
		reader:        reader,
		notifications: notifications,
	}
}

// Start consumes messages until ctx is cancelled
func (c *Consumer) Start(ctx context.Context) error {
	log := logger.With("component", "kafka-consumer")
	log.Info("starting consumer", "topic", c.reader.Config().Topic)

	for {
		message, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info("stopping consumer")
				return nil
			}
			log.Error("failed to read message", "err", err)
			continue
		}

		// a failed delivery is recorded by the notification service; keep consuming
		if err := c.processMessage(ctx, message); err != nil {
			log.Error("failed to process message", "offset", message.Offset, "err", err)
		}
	}
}

func (c *Consumer) processMessage(ctx context.Context, message kafka.Message) error {
	event, err := DecodeReminderEvent(message.Value)
	if err != nil {
		return err
	}

	logger.Debug("received reminder event", "event_id", event.EventID, "user_id", event.UserID)

	if err := c.notifications.HandleReminder(ctx, event); err != nil {
		return fmt.Errorf("failed to handle reminder %s: %w", event.ReminderID, err)
	}

	return nil
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	if c.reader != nil {
		return c.reader.Close()
	}
	return nil
}
