package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength  = 200
	MaxNotesLength = 2000
	MinMoodScore   = 1
	MaxMoodScore   = 10
)

var (
	// 24-hour clock, leading zero required
	clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// ValidateName validates a display name or title
func ValidateName(field, value string) error {
	value = strings.TrimSpace(value)

	if value == "" {
		return fmt.Errorf("%s is required", field)
	}

	if utf8.RuneCountInString(value) > MaxNameLength {
		return fmt.Errorf("%s is too long (max %d characters)", field, MaxNameLength)
	}

	return nil
}

// ValidateNotes validates optional free text
func ValidateNotes(notes *string) error {
	if notes == nil {
		return nil
	}

	if utf8.RuneCountInString(*notes) > MaxNotesLength {
		return fmt.Errorf("notes are too long (max %d characters)", MaxNotesLength)
	}

	return nil
}

// ValidateMoodScore validates a mood score
func ValidateMoodScore(score int) error {
	if score < MinMoodScore || score > MaxMoodScore {
		return fmt.Errorf("mood_score must be between %d and %d, got %d", MinMoodScore, MaxMoodScore, score)
	}

	return nil
}

// ValidateClock validates a local time of day in HH:MM form
func ValidateClock(clock string) error {
	if !clockRegex.MatchString(clock) {
		return fmt.Errorf("reminder_time must be HH:MM between 00:00 and 23:59, got %q", clock)
	}

	return nil
}

// NormalizeDaysOfWeek validates weekday numbers (0=Sunday) and returns them
// sorted with duplicates removed
func NormalizeDaysOfWeek(days []int32) ([]int32, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("days_of_week must contain at least one day")
	}

	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("days_of_week values must be between 0 and 6, got %d", d)
		}
	}

	normalized := slices.Clone(days)
	slices.Sort(normalized)
	return slices.Compact(normalized), nil
}
