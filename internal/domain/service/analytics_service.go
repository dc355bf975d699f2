package service

import (
	"context"
	"wellness-service/internal/analytics"
)

// Overview bundles every analytics view for one date range
type Overview struct {
	Start       string                       `json:"start"`
	End         string                       `json:"end"`
	Mood        *analytics.MoodAnalytics     `json:"mood"`
	Habits      *analytics.HabitOverview     `json:"habits"`
	Medications *analytics.AdherenceOverview `json:"medications"`
	Supplements *analytics.AdherenceOverview `json:"supplements"`
}

// AnalyticsService computes analytics over a calendar date range.
// start and end are inclusive YYYY-MM-DD dates in the service time zone.
type AnalyticsService interface {
	Mood(ctx context.Context, userID, start, end string) (*analytics.MoodAnalytics, error)

	Habits(ctx context.Context, userID, start, end string) (*analytics.HabitOverview, error)

	Medications(ctx context.Context, userID, start, end string) (*analytics.AdherenceOverview, error)

	Supplements(ctx context.Context, userID, start, end string) (*analytics.AdherenceOverview, error)

	// Overview runs all of the above concurrently
	Overview(ctx context.Context, userID, start, end string) (*Overview, error)
}
