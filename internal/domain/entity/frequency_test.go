package entity

import (
	"errors"
	"testing"
	"time"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		label     string
		wantKind  FrequencyKind
		wantTimes int
		wantRate  float64
	}{
		{"daily", FrequencyDaily, 1, 1},
		{"Once daily", FrequencyDaily, 1, 1},
		{"twice daily", FrequencyDaily, 2, 2},
		{"2x per day", FrequencyDaily, 2, 2},
		{"three times a day", FrequencyDaily, 3, 3},
		{"4 times daily", FrequencyDaily, 4, 4},
		{"weekly", FrequencyWeekly, 1, 1.0 / 7},
		{"once weekly", FrequencyWeekly, 1, 1.0 / 7},
		{"twice weekly", FrequencyWeekly, 2, 2.0 / 7},
		{"as needed", FrequencyAsNeeded, 0, 0},
		{"2 tablets as needed", FrequencyAsNeeded, 0, 0},
		{"PRN", FrequencyAsNeeded, 0, 0},
		{"", FrequencyDaily, 1, 1},
		{"with breakfast", FrequencyDaily, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			f := ParseFrequency(tt.label)
			if f.Kind != tt.wantKind || f.Times != tt.wantTimes {
				t.Errorf("ParseFrequency(%q) = %s/%d, want %s/%d", tt.label, f.Kind, f.Times, tt.wantKind, tt.wantTimes)
			}
			if f.DailyRate() != tt.wantRate {
				t.Errorf("DailyRate() = %v, want %v", f.DailyRate(), tt.wantRate)
			}
		})
	}
}

func TestParseFrequencyKeepsLabel(t *testing.T) {
	f := ParseFrequency("  Twice Daily with food ")
	if f.Label != "  Twice Daily with food " {
		t.Errorf("Label = %q, want the original text", f.Label)
	}
}

func TestNewFrequency(t *testing.T) {
	f, err := NewFrequency(FrequencyWeekly, 3, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Label != "3 times weekly" {
		t.Errorf("Label = %q, want default label", f.Label)
	}

	f, err = NewFrequency(FrequencyAsNeeded, 5, "when in pain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Times != 0 || !f.IsAsNeeded() {
		t.Errorf("as-needed frequency = %+v", f)
	}

	if _, err := NewFrequency(FrequencyDaily, 0, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("zero times: err = %v, want ErrValidation", err)
	}
	if _, err := NewFrequency("hourly", 1, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown kind: err = %v, want ErrValidation", err)
	}
}

func TestNextUpdatedAtStrictlyIncreases(t *testing.T) {
	prev := Now().Add(time.Hour)
	next := NextUpdatedAt(prev)
	if !next.After(prev) {
		t.Errorf("NextUpdatedAt(%v) = %v, want strictly later", prev, next)
	}
}
