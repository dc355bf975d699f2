package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"wellness-service/internal/domain/entity"
)

func newIntake(name string, freq entity.Frequency, active bool) *entity.Intake {
	return &entity.Intake{
		ID:        uuid.New(),
		UserID:    "user-1",
		Kind:      entity.IntakeKindMedication,
		Name:      name,
		Frequency: freq,
		IsActive:  active,
	}
}

func intakeLogs(t *testing.T, item *entity.Intake, dates ...string) []*entity.IntakeLog {
	t.Helper()
	logs := make([]*entity.IntakeLog, len(dates))
	for i, d := range dates {
		at := day(t, d).Add(8 * time.Hour)
		logs[i] = &entity.IntakeLog{ID: uuid.New(), ItemID: item.ID, UserID: item.UserID, Kind: item.Kind, TakenAt: at, CreatedAt: at}
	}
	return logs
}

func TestItemAdherenceDaily(t *testing.T) {
	r := dateRange(t, "2026-03-01", "2026-03-07")
	item := newIntake("Sertraline", entity.ParseFrequency("daily"), true)

	t.Run("all days logged", func(t *testing.T) {
		logs := intakeLogs(t, item,
			"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04",
			"2026-03-05", "2026-03-06", "2026-03-07")
		got := ItemAdherence(item, logs, r)

		if got.TotalExpected != 7 || got.TotalLogged != 7 {
			t.Errorf("expected/logged = %d/%d, want 7/7", got.TotalExpected, got.TotalLogged)
		}
		if got.AdherenceRate != 100 {
			t.Errorf("AdherenceRate = %v, want 100", got.AdherenceRate)
		}
		if got.MissedDoses != 0 {
			t.Errorf("MissedDoses = %d, want 0", got.MissedDoses)
		}
		if got.CurrentStreak != 7 {
			t.Errorf("CurrentStreak = %d, want 7", got.CurrentStreak)
		}
	})

	t.Run("four of seven", func(t *testing.T) {
		logs := intakeLogs(t, item, "2026-03-01", "2026-03-02", "2026-03-03", "2026-03-07")
		got := ItemAdherence(item, logs, r)

		if got.AdherenceRate != 57 {
			t.Errorf("AdherenceRate = %v, want 57", got.AdherenceRate)
		}
		if got.MissedDoses != 3 {
			t.Errorf("MissedDoses = %d, want 3", got.MissedDoses)
		}
		if got.CurrentStreak != 1 {
			t.Errorf("CurrentStreak = %d, want 1", got.CurrentStreak)
		}

		// 2026-03-01 is a Sunday, the tail of ISO week 9
		want := []WeeklyAdherence{
			{Week: "2026-W09", Expected: 1, Logged: 1, Rate: 100},
			{Week: "2026-W10", Expected: 6, Logged: 3, Rate: 50},
		}
		if len(got.WeeklyAdherence) != len(want) {
			t.Fatalf("WeeklyAdherence = %+v, want %+v", got.WeeklyAdherence, want)
		}
		for i := range want {
			if got.WeeklyAdherence[i] != want[i] {
				t.Errorf("WeeklyAdherence[%d] = %+v, want %+v", i, got.WeeklyAdherence[i], want[i])
			}
		}
	})
}

func TestItemAdherenceAsNeeded(t *testing.T) {
	r := dateRange(t, "2026-03-01", "2026-03-07")
	item := newIntake("Ibuprofen", entity.ParseFrequency("as needed"), true)
	logs := intakeLogs(t, item, "2026-03-05", "2026-03-06", "2026-03-07")

	got := ItemAdherence(item, logs, r)

	if got.TotalExpected != 0 {
		t.Errorf("TotalExpected = %d, want 0", got.TotalExpected)
	}
	if got.AdherenceRate != 0 {
		t.Errorf("AdherenceRate = %v, want 0", got.AdherenceRate)
	}
	if got.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", got.CurrentStreak)
	}
	if got.TotalLogged != 3 {
		t.Errorf("TotalLogged = %d, want 3", got.TotalLogged)
	}
}

func TestItemAdherenceTwiceDailyStreak(t *testing.T) {
	r := dateRange(t, "2026-03-01", "2026-03-03")
	item := newIntake("Metformin", entity.ParseFrequency("twice daily"), true)
	logs := intakeLogs(t, item, "2026-03-01", "2026-03-02", "2026-03-02", "2026-03-03", "2026-03-03")

	got := ItemAdherence(item, logs, r)

	if got.TotalExpected != 6 {
		t.Errorf("TotalExpected = %d, want 6", got.TotalExpected)
	}
	if got.AdherenceRate != 83 {
		t.Errorf("AdherenceRate = %v, want 83", got.AdherenceRate)
	}
	// 03-01 had a single dose, so the streak stops there
	if got.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got.CurrentStreak)
	}
}

func TestItemAdherenceWeekly(t *testing.T) {
	r := dateRange(t, "2026-03-01", "2026-03-14")
	item := newIntake("Vitamin D", entity.ParseFrequency("weekly"), true)
	logs := intakeLogs(t, item, "2026-03-02", "2026-03-09", "2026-03-10")

	got := ItemAdherence(item, logs, r)

	if got.TotalExpected != 2 {
		t.Errorf("TotalExpected = %d, want 2", got.TotalExpected)
	}
	if got.AdherenceRate != 100 {
		t.Errorf("AdherenceRate = %v, want 100 (capped)", got.AdherenceRate)
	}
	if got.MissedDoses != 0 {
		t.Errorf("MissedDoses = %d, want 0", got.MissedDoses)
	}
}

func TestAdherenceRate(t *testing.T) {
	tests := []struct {
		logged, expected int
		want             float64
	}{
		{7, 7, 100},
		{4, 7, 57},
		{10, 7, 100},
		{3, 0, 0},
		{0, 5, 0},
	}

	for _, tt := range tests {
		if got := AdherenceRate(tt.logged, tt.expected); got != tt.want {
			t.Errorf("AdherenceRate(%d, %d) = %v, want %v", tt.logged, tt.expected, got, tt.want)
		}
	}
}

func TestAdherenceOverviewSkipsInactive(t *testing.T) {
	r := dateRange(t, "2026-03-01", "2026-03-02")
	full := newIntake("A", entity.Daily(1), true)
	half := newIntake("B", entity.Daily(1), true)
	stopped := newIntake("C", entity.Daily(1), false)

	logs := append(intakeLogs(t, full, "2026-03-01", "2026-03-02"), intakeLogs(t, half, "2026-03-02")...)

	got := Adherence(entity.IntakeKindMedication, []*entity.Intake{full, half, stopped}, logs, r)

	if len(got.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(got.Items))
	}
	if got.OverallRate != 75 {
		t.Errorf("OverallRate = %v, want 75", got.OverallRate)
	}

	empty := Adherence(entity.IntakeKindSupplement, nil, nil, r)
	if empty.OverallRate != 0 || empty.Items == nil {
		t.Errorf("unexpected empty overview: %+v", empty)
	}
}
