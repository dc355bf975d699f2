// Package analytics derives summaries (trends, streaks, completion and
// adherence rates) from already-fetched, user-scoped records. Everything here
// is pure: callers pass the records and the inclusive date range.
package analytics

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive span of calendar days.
// Start and End are midnights in the range's location.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange truncates start and end to calendar days in loc
func NewDateRange(start, end time.Time, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}

	r := DateRange{
		Start: startOfDay(start.In(loc)),
		End:   startOfDay(end.In(loc)),
	}

	if r.End.Before(r.Start) {
		return DateRange{}, fmt.Errorf("end date %s is before start date %s",
			r.End.Format(dateLayout), r.Start.Format(dateLayout))
	}

	return r, nil
}

// ParseDateRange parses inclusive YYYY-MM-DD dates as calendar days in loc
func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}

	s, err := time.ParseInLocation(dateLayout, start, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", start)
	}

	e, err := time.ParseInLocation(dateLayout, end, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date %q: expected YYYY-MM-DD", end)
	}

	return NewDateRange(s, e, loc)
}

// Location returns the time zone days are counted in
func (r DateRange) Location() *time.Location {
	return r.Start.Location()
}

// Days returns the inclusive number of calendar days in the range
func (r DateRange) Days() int {
	return dayNumber(r.End) - dayNumber(r.Start) + 1
}

// Contains reports whether t falls on a day inside the range
func (r DateRange) Contains(t time.Time) bool {
	d := dayNumber(t.In(r.Location()))
	return d >= dayNumber(r.Start) && d <= dayNumber(r.End)
}

// Bounds returns the first and last instants of the range, for store queries
func (r DateRange) Bounds() (from, to time.Time) {
	return r.Start, r.End.AddDate(0, 0, 1).Add(-time.Microsecond)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayNumber counts calendar days since the Unix epoch, ignoring DST shifts
func dayNumber(t time.Time) int {
	return int(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// mondayWeekStart keys a day by the Monday that starts its week
func mondayWeekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset).Format(dateLayout)
}

// sundayWeekStart keys a day by the Sunday that starts its week
func sundayWeekStart(t time.Time) string {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday())).Format(dateLayout)
}

// isoWeek keys a day by ISO year and week number, e.g. "2026-W07"
func isoWeek(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
