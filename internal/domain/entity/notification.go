package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus represents the delivery state of a notification
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
	NotificationStatusSkipped NotificationStatus = "skipped"
)

// Notification is the delivery record of one reminder event
type Notification struct {
	ID         uuid.UUID          `json:"id"`
	UserID     string             `json:"user_id"`
	ReminderID uuid.UUID          `json:"reminder_id"`
	EventID    string             `json:"event_id"`
	Status     NotificationStatus `json:"status"`
	Subject    string             `json:"subject"`
	Recipient  *string            `json:"recipient,omitempty"`
	Error      *string            `json:"error,omitempty"`
	SentAt     *time.Time         `json:"sent_at,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
