package kafka

import (
	"fmt"
	"time"
	"wellness-service/internal/domain/entity"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// EventTypeReminderDue identifies reminder events on the topic
const EventTypeReminderDue = "reminder.due"

// EncodeReminderEvent serializes event as a protobuf Struct
func EncodeReminderEvent(event *entity.ReminderEvent) ([]byte, error) {
	fields := map[string]any{
		"event_type":    EventTypeReminderDue,
		"event_id":      event.EventID,
		"reminder_id":   event.ReminderID.String(),
		"user_id":       event.UserID,
		"title":         event.Title,
		"message":       event.Message,
		"reminder_type": string(event.ReminderType),
		"due_at":        event.DueAt.UTC().Format(time.RFC3339Nano),
	}
	if event.TargetID != nil {
		fields["target_id"] = event.TargetID.String()
	}

	payload, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build event payload: %w", err)
	}

	data, err := proto.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	return data, nil
}

// DecodeReminderEvent parses a payload produced by EncodeReminderEvent
func DecodeReminderEvent(data []byte) (*entity.ReminderEvent, error) {
	var payload structpb.Struct
	if err := proto.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	fields := payload.GetFields()
	str := func(key string) string {
		return fields[key].GetStringValue()
	}

	if eventType := str("event_type"); eventType != EventTypeReminderDue {
		return nil, fmt.Errorf("unexpected event type %q", eventType)
	}

	reminderID, err := uuid.Parse(str("reminder_id"))
	if err != nil {
		return nil, fmt.Errorf("invalid reminder_id: %w", err)
	}

	dueAt, err := time.Parse(time.RFC3339Nano, str("due_at"))
	if err != nil {
		return nil, fmt.Errorf("invalid due_at: %w", err)
	}

	event := &entity.ReminderEvent{
		EventID:      str("event_id"),
		ReminderID:   reminderID,
		UserID:       str("user_id"),
		Title:        str("title"),
		Message:      str("message"),
		ReminderType: entity.ReminderType(str("reminder_type")),
		DueAt:        dueAt.UTC(),
	}

	if target := str("target_id"); target != "" {
		id, err := uuid.Parse(target)
		if err != nil {
			return nil, fmt.Errorf("invalid target_id: %w", err)
		}
		event.TargetID = &id
	}

	return event, nil
}
