package service

import (
	"time"
	"wellness-service/internal/domain/entity"

	"github.com/google/uuid"
)

// TimeRange is an optional inclusive bound on a listing
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

// CreateIntakeInput describes a new medication or supplement.
// When Frequency is nil the schedule is parsed from FrequencyLabel.
type CreateIntakeInput struct {
	Name           string
	Dosage         *string
	FrequencyLabel string
	Frequency      *entity.Frequency
}

// UpdateIntakeInput carries the fields to change; nil fields are left untouched
type UpdateIntakeInput struct {
	Name           *string
	Dosage         *string
	FrequencyLabel *string
	Frequency      *entity.Frequency
	IsActive       *bool
}

// UpdateHabitInput carries the fields to change; nil fields are left untouched
type UpdateHabitInput struct {
	Name            *string
	Description     *string
	TargetFrequency *string
	IsActive        *bool
}

// CreateReminderInput describes a new reminder
type CreateReminderInput struct {
	Title        string
	Message      *string
	ReminderTime string
	DaysOfWeek   []int32
	ReminderType entity.ReminderType
	TargetID     *uuid.UUID
}

// UpdateReminderInput carries the fields to change; nil fields are left untouched
type UpdateReminderInput struct {
	Title        *string
	Message      *string
	ReminderTime *string
	DaysOfWeek   []int32
	ReminderType *entity.ReminderType
	TargetID     *uuid.UUID
	IsActive     *bool
}
