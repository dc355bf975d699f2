package grpc

import (
	"time"
	"wellness-service/internal/analytics"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/service"
)

// Requests carry the caller's user id explicitly; the HTTP gateway fills it
// from the resolved identity.

type CreateMoodEntryRequest struct {
	UserID    string  `json:"user_id"`
	MoodScore int     `json:"mood_score"`
	Notes     *string `json:"notes,omitempty"`
}

type UpdateMoodEntryRequest struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	MoodScore *int    `json:"mood_score,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// RangeRequest lists a user's records, optionally bounded inclusively in time
type RangeRequest struct {
	UserID string     `json:"user_id"`
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
}

type MoodEntryResponse struct {
	Entry *entity.MoodEntry `json:"entry"`
}

type MoodEntriesResponse struct {
	Entries []*entity.MoodEntry `json:"entries"`
}

// ListItemsRequest lists medications, supplements, habits or reminders
type ListItemsRequest struct {
	UserID     string `json:"user_id"`
	ActiveOnly bool   `json:"active_only,omitempty"`
}

// CreateIntakeRequest creates a medication or supplement.
// FrequencyKind overrides parsing of the Frequency label when set.
type CreateIntakeRequest struct {
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	Dosage         *string `json:"dosage,omitempty"`
	Frequency      string  `json:"frequency"`
	FrequencyKind  string  `json:"frequency_kind,omitempty"`
	FrequencyTimes int     `json:"frequency_times,omitempty"`
}

type UpdateIntakeRequest struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Name           *string `json:"name,omitempty"`
	Dosage         *string `json:"dosage,omitempty"`
	Frequency      *string `json:"frequency,omitempty"`
	FrequencyKind  string  `json:"frequency_kind,omitempty"`
	FrequencyTimes int     `json:"frequency_times,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

type LogIntakeRequest struct {
	ItemID  string     `json:"item_id"`
	UserID  string     `json:"user_id"`
	TakenAt *time.Time `json:"taken_at,omitempty"`
	Notes   *string    `json:"notes,omitempty"`
}

type IntakeResponse struct {
	Item *entity.Intake `json:"item"`
}

type IntakesResponse struct {
	Items []*entity.Intake `json:"items"`
}

type IntakeLogResponse struct {
	Log *entity.IntakeLog `json:"log"`
}

type IntakeLogsResponse struct {
	Logs []*entity.IntakeLog `json:"logs"`
}

type CreateHabitRequest struct {
	UserID          string  `json:"user_id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	TargetFrequency string  `json:"target_frequency,omitempty"`
}

type UpdateHabitRequest struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	TargetFrequency *string `json:"target_frequency,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

type LogHabitRequest struct {
	HabitID     string     `json:"habit_id"`
	UserID      string     `json:"user_id"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type HabitResponse struct {
	Habit *entity.Habit `json:"habit"`
}

type HabitsResponse struct {
	Habits []*entity.Habit `json:"habits"`
}

type HabitLogResponse struct {
	Log *entity.HabitLog `json:"log"`
}

type HabitLogsResponse struct {
	Logs []*entity.HabitLog `json:"logs"`
}

type CreateReminderRequest struct {
	UserID       string  `json:"user_id"`
	Title        string  `json:"title"`
	Message      *string `json:"message,omitempty"`
	ReminderTime string  `json:"reminder_time"`
	DaysOfWeek   []int32 `json:"days_of_week"`
	ReminderType string  `json:"reminder_type,omitempty"`
	TargetID     *string `json:"target_id,omitempty"`
}

type UpdateReminderRequest struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Title        *string `json:"title,omitempty"`
	Message      *string `json:"message,omitempty"`
	ReminderTime *string `json:"reminder_time,omitempty"`
	DaysOfWeek   []int32 `json:"days_of_week,omitempty"`
	ReminderType *string `json:"reminder_type,omitempty"`
	TargetID     *string `json:"target_id,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type ReminderResponse struct {
	Reminder *entity.Reminder `json:"reminder"`
}

type RemindersResponse struct {
	Reminders []*entity.Reminder `json:"reminders"`
}

// AnalyticsRequest selects an inclusive YYYY-MM-DD date range
type AnalyticsRequest struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type MoodAnalyticsResponse struct {
	Analytics *analytics.MoodAnalytics `json:"analytics"`
}

type HabitAnalyticsResponse struct {
	Analytics *analytics.HabitOverview `json:"analytics"`
}

type AdherenceResponse struct {
	Analytics *analytics.AdherenceOverview `json:"analytics"`
}

type OverviewResponse struct {
	Overview *service.Overview `json:"overview"`
}

type ExportRequest struct {
	UserID string `json:"user_id"`
}

type ExportResponse struct {
	Snapshot *entity.Snapshot `json:"snapshot"`
}

type ListNotificationsRequest struct {
	UserID string `json:"user_id"`
	Limit  int    `json:"limit,omitempty"`
}

type NotificationsResponse struct {
	Notifications []*entity.Notification `json:"notifications"`
}
