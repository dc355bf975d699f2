package analytics

import (
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func dateRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := NewDateRange(day(t, start), day(t, end), time.UTC)
	if err != nil {
		t.Fatalf("NewDateRange: %v", err)
	}
	return r
}
