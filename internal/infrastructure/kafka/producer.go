package kafka

import (
	"context"
	"fmt"
	"time"
	"wellness-service/internal/config"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/service"
	"wellness-service/internal/logger"

	"github.com/segmentio/kafka-go"
)

// Producer publishes reminder events to Kafka
type Producer struct {
	writer *kafka.Writer
}

var _ service.ReminderPublisher = (*Producer)(nil)

// NewProducer creates a new Kafka producer.
// Writes are synchronous so the dispatcher only counts delivered events.
func NewProducer(cfg *config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    10,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{writer: writer}
}

// PublishReminder publishes a reminder-due event keyed by user id
func (p *Producer) PublishReminder(ctx context.Context, event *entity.ReminderEvent) error {
	data, err := EncodeReminderEvent(event)
	if err != nil {
		return err
	}

	message := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish reminder event: %w", err)
	}

	logger.Debug("published reminder event", "event_id", event.EventID, "reminder_id", event.ReminderID)
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
