package entity

import "time"

// Snapshot is a full dump of every record a user owns
type Snapshot struct {
	UserID         string       `json:"user_id"`
	ExportedAt     time.Time    `json:"exported_at"`
	MoodEntries    []*MoodEntry `json:"mood_entries"`
	Medications    []*Intake    `json:"medications"`
	MedicationLogs []*IntakeLog `json:"medication_logs"`
	Supplements    []*Intake    `json:"supplements"`
	SupplementLogs []*IntakeLog `json:"supplement_logs"`
	Habits         []*Habit     `json:"habits"`
	HabitLogs      []*HabitLog  `json:"habit_logs"`
	Reminders      []*Reminder  `json:"reminders"`
}
