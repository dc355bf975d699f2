package analytics

import (
	"testing"
	"time"
)

func TestNewDateRange(t *testing.T) {
	r := dateRange(t, "2026-03-01", "2026-03-14")
	if got := r.Days(); got != 14 {
		t.Errorf("Days() = %d, want 14", got)
	}

	single := dateRange(t, "2026-03-01", "2026-03-01")
	if got := single.Days(); got != 1 {
		t.Errorf("single day Days() = %d, want 1", got)
	}

	if _, err := NewDateRange(day(t, "2026-03-02"), day(t, "2026-03-01"), time.UTC); err == nil {
		t.Error("expected error for end before start")
	}
}

func TestDateRangeAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}

	start := time.Date(2026, 3, 28, 12, 0, 0, 0, loc)
	end := time.Date(2026, 3, 30, 12, 0, 0, 0, loc)
	r, err := NewDateRange(start, end, loc)
	if err != nil {
		t.Fatalf("NewDateRange: %v", err)
	}
	if got := r.Days(); got != 3 {
		t.Errorf("Days() across DST = %d, want 3", got)
	}
}

func TestDateRangeContains(t *testing.T) {
	r := dateRange(t, "2026-03-01", "2026-03-07")

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"first instant", day(t, "2026-03-01"), true},
		{"last day evening", day(t, "2026-03-07").Add(23 * time.Hour), true},
		{"day after", day(t, "2026-03-08"), false},
		{"day before", day(t, "2026-02-28").Add(23 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.at); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestDateRangeBounds(t *testing.T) {
	r := dateRange(t, "2026-03-01", "2026-03-07")
	from, to := r.Bounds()

	if !from.Equal(day(t, "2026-03-01")) {
		t.Errorf("from = %s", from)
	}
	if !to.Before(day(t, "2026-03-08")) || to.Before(day(t, "2026-03-07").Add(23*time.Hour)) {
		t.Errorf("to = %s, want last instant of 2026-03-07", to)
	}
}

func TestWeekKeys(t *testing.T) {
	// 2026-03-04 is a Wednesday
	d := day(t, "2026-03-04")

	if got := mondayWeekStart(d); got != "2026-03-02" {
		t.Errorf("mondayWeekStart = %s, want 2026-03-02", got)
	}
	if got := sundayWeekStart(d); got != "2026-03-01" {
		t.Errorf("sundayWeekStart = %s, want 2026-03-01", got)
	}
	if got := isoWeek(d); got != "2026-W10" {
		t.Errorf("isoWeek = %s, want 2026-W10", got)
	}

	// Sunday belongs to the previous Monday-aligned week
	sunday := day(t, "2026-03-08")
	if got := mondayWeekStart(sunday); got != "2026-03-02" {
		t.Errorf("mondayWeekStart(sunday) = %s, want 2026-03-02", got)
	}
	if got := sundayWeekStart(sunday); got != "2026-03-08" {
		t.Errorf("sundayWeekStart(sunday) = %s, want 2026-03-08", got)
	}

	// ISO week year differs from calendar year at the boundary
	if got := isoWeek(day(t, "2027-01-01")); got != "2026-W53" {
		t.Errorf("isoWeek(2027-01-01) = %s, want 2026-W53", got)
	}
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name        string
		days        []int
		end         int
		wantCurrent int
		wantLongest int
	}{
		{"empty", nil, 10, 0, 0},
		{"ends on end day", []int{8, 9, 10}, 10, 3, 3},
		{"ends day before end", []int{7, 8, 9}, 10, 3, 3},
		{"gap of two days breaks current", []int{6, 7, 8}, 10, 0, 3},
		{"longest earlier than current", []int{1, 2, 3, 4, 9, 10}, 10, 2, 4},
		{"duplicates counted once", []int{9, 9, 10, 10}, 10, 2, 2},
		{"unsorted input", []int{10, 8, 9}, 10, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest := streaks(tt.days, tt.end)
			if current != tt.wantCurrent || longest != tt.wantLongest {
				t.Errorf("streaks(%v, %d) = (%d, %d), want (%d, %d)",
					tt.days, tt.end, current, longest, tt.wantCurrent, tt.wantLongest)
			}
		})
	}
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2026-03-01", "2026-03-14", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Days() != 14 {
		t.Errorf("Days() = %d, want 14", r.Days())
	}

	for _, tc := range [][2]string{
		{"2026-03-14", "2026-03-01"},
		{"03/01/2026", "2026-03-14"},
		{"2026-03-01", ""},
	} {
		if _, err := ParseDateRange(tc[0], tc[1], time.UTC); err == nil {
			t.Errorf("ParseDateRange(%q, %q) expected error", tc[0], tc[1])
		}
	}
}
