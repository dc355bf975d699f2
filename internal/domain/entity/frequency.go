package entity

import (
	"fmt"
	"strings"
)

// FrequencyKind is the schedule class of an intake item
type FrequencyKind string

const (
	FrequencyDaily    FrequencyKind = "daily"     // Times doses per day
	FrequencyWeekly   FrequencyKind = "weekly"    // Times doses per week
	FrequencyAsNeeded FrequencyKind = "as_needed" // No expected schedule
)

// Frequency is the dosing schedule of an intake item.
// Label keeps the text the user entered and is what clients display.
type Frequency struct {
	Kind  FrequencyKind `json:"kind"`
	Times int           `json:"times"`
	Label string        `json:"label"`
}

func Daily(times int) Frequency {
	return Frequency{Kind: FrequencyDaily, Times: times, Label: defaultLabel(FrequencyDaily, times)}
}

func Weekly(times int) Frequency {
	return Frequency{Kind: FrequencyWeekly, Times: times, Label: defaultLabel(FrequencyWeekly, times)}
}

func AsNeeded() Frequency {
	return Frequency{Kind: FrequencyAsNeeded, Label: "as needed"}
}

// ParseFrequency infers the schedule from a free-text label.
// Unrecognised labels default to once daily.
func ParseFrequency(label string) Frequency {
	text := strings.ToLower(strings.TrimSpace(label))
	if text == "" {
		return Daily(1)
	}

	if strings.Contains(text, "as needed") || strings.Contains(text, "prn") {
		return Frequency{Kind: FrequencyAsNeeded, Label: label}
	}

	times := 1
	switch {
	case strings.Contains(text, "twice") || strings.Contains(text, "2"):
		times = 2
	case strings.Contains(text, "three") || strings.Contains(text, "3"):
		times = 3
	case strings.Contains(text, "four") || strings.Contains(text, "4"):
		times = 4
	}

	kind := FrequencyDaily
	if strings.Contains(text, "week") {
		kind = FrequencyWeekly
	}

	return Frequency{Kind: kind, Times: times, Label: label}
}

// NewFrequency builds an explicit schedule, keeping label for display
func NewFrequency(kind FrequencyKind, times int, label string) (Frequency, error) {
	switch kind {
	case FrequencyDaily, FrequencyWeekly:
		if times < 1 {
			return Frequency{}, fmt.Errorf("%w: frequency times must be at least 1", ErrValidation)
		}
	case FrequencyAsNeeded:
		times = 0
	default:
		return Frequency{}, fmt.Errorf("%w: unknown frequency kind %q", ErrValidation, kind)
	}

	if strings.TrimSpace(label) == "" {
		label = defaultLabel(kind, times)
	}

	return Frequency{Kind: kind, Times: times, Label: label}, nil
}

// DailyRate returns the expected number of doses per day
func (f Frequency) DailyRate() float64 {
	switch f.Kind {
	case FrequencyDaily:
		return float64(f.Times)
	case FrequencyWeekly:
		return float64(f.Times) / 7
	default:
		return 0
	}
}

// IsAsNeeded reports whether the item has no expected schedule
func (f Frequency) IsAsNeeded() bool {
	return f.Kind == FrequencyAsNeeded
}

func (f Frequency) String() string {
	return f.Label
}

func defaultLabel(kind FrequencyKind, times int) string {
	switch kind {
	case FrequencyAsNeeded:
		return "as needed"
	case FrequencyWeekly:
		if times == 1 {
			return "weekly"
		}
		return fmt.Sprintf("%d times weekly", times)
	default:
		switch times {
		case 1:
			return "daily"
		case 2:
			return "twice daily"
		default:
			return fmt.Sprintf("%d times daily", times)
		}
	}
}
