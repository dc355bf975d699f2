package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ReminderType names what a reminder is about
type ReminderType string

const (
	ReminderTypeMood       ReminderType = "mood"
	ReminderTypeMedication ReminderType = "medication"
	ReminderTypeSupplement ReminderType = "supplement"
	ReminderTypeHabit      ReminderType = "habit"
	ReminderTypeGeneral    ReminderType = "general"
)

// Valid reports whether t is one of the known reminder types
func (t ReminderType) Valid() bool {
	switch t {
	case ReminderTypeMood, ReminderTypeMedication, ReminderTypeSupplement, ReminderTypeHabit, ReminderTypeGeneral:
		return true
	}
	return false
}

// Reminder is a recurring prompt delivered at a local time on selected weekdays
type Reminder struct {
	ID     uuid.UUID `json:"id"`
	UserID string    `json:"user_id"`

	Title        string       `json:"title"`
	Message      *string      `json:"message,omitempty"`
	ReminderTime string       `json:"reminder_time"` // "HH:MM"
	DaysOfWeek   []int32      `json:"days_of_week"`  // 0=Sunday, 1=Monday, ..., 6=Saturday
	ReminderType ReminderType `json:"reminder_type"`
	TargetID     *uuid.UUID   `json:"target_id,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FiresOn reports whether the reminder is scheduled for the given weekday
func (r *Reminder) FiresOn(day time.Weekday) bool {
	return slices.Contains(r.DaysOfWeek, int32(day))
}

// ReminderEvent is published when a reminder becomes due
type ReminderEvent struct {
	EventID      string
	ReminderID   uuid.UUID
	UserID       string
	Title        string
	Message      string
	ReminderType ReminderType
	TargetID     *uuid.UUID
	DueAt        time.Time
}
