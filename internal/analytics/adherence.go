package analytics

import (
	"math"
	"wellness-service/internal/domain/entity"

	"github.com/google/uuid"
)

// WeeklyAdherence is the adherence of one ISO week, clipped to the range
type WeeklyAdherence struct {
	Week     string  `json:"week"`
	Expected int     `json:"expected"`
	Logged   int     `json:"logged"`
	Rate     float64 `json:"rate"`
}

// AdherenceStats summarises how well one item was taken over a date range
type AdherenceStats struct {
	ItemID          uuid.UUID         `json:"item_id"`
	Name            string            `json:"name"`
	Frequency       entity.Frequency  `json:"frequency"`
	ExpectedPerDay  float64           `json:"expected_per_day"`
	TotalExpected   int               `json:"total_expected"`
	TotalLogged     int               `json:"total_logged"`
	MissedDoses     int               `json:"missed_doses"`
	AdherenceRate   float64           `json:"adherence_rate"`
	CurrentStreak   int               `json:"current_streak"`
	WeeklyAdherence []WeeklyAdherence `json:"weekly_adherence"`
}

// AdherenceOverview aggregates the active items of one kind
type AdherenceOverview struct {
	Kind        entity.IntakeKind `json:"kind"`
	OverallRate float64           `json:"overall_rate"`
	Items       []AdherenceStats  `json:"items"`
}

// Adherence computes stats for every active item; inactive items are skipped.
// logs may belong to any of the items; they are grouped by item id.
func Adherence(kind entity.IntakeKind, items []*entity.Intake, logs []*entity.IntakeLog, r DateRange) *AdherenceOverview {
	byItem := make(map[uuid.UUID][]*entity.IntakeLog)
	for _, l := range logs {
		byItem[l.ItemID] = append(byItem[l.ItemID], l)
	}

	overview := &AdherenceOverview{
		Kind:  kind,
		Items: []AdherenceStats{},
	}

	rates := []float64{}
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		stats := ItemAdherence(item, byItem[item.ID], r)
		rates = append(rates, stats.AdherenceRate)
		overview.Items = append(overview.Items, stats)
	}

	overview.OverallRate = round1(mean(rates))
	return overview
}

// ItemAdherence compares logged doses with the doses the item's frequency expects
func ItemAdherence(item *entity.Intake, logs []*entity.IntakeLog, r DateRange) AdherenceStats {
	dailyRate := item.Frequency.DailyRate()
	loc := r.Location()

	perDay := make(map[int]int)
	logged := 0
	for _, l := range logs {
		if !r.Contains(l.TakenAt) {
			continue
		}
		perDay[dayNumber(l.TakenAt.In(loc))]++
		logged++
	}

	expected := int(math.Round(dailyRate * float64(r.Days())))

	return AdherenceStats{
		ItemID:          item.ID,
		Name:            item.Name,
		Frequency:       item.Frequency,
		ExpectedPerDay:  dailyRate,
		TotalExpected:   expected,
		TotalLogged:     logged,
		MissedDoses:     max(0, expected-logged),
		AdherenceRate:   AdherenceRate(logged, expected),
		CurrentStreak:   doseStreak(perDay, dailyRate, dayNumber(r.End)),
		WeeklyAdherence: weeklyAdherence(perDay, dailyRate, r),
	}
}

// AdherenceRate is logged/expected as a whole percentage capped at 100.
// Nothing expected means no schedule to adhere to, which reads as 0.
func AdherenceRate(logged, expected int) float64 {
	if expected <= 0 {
		return 0
	}
	return math.Min(math.Round(float64(logged)/float64(expected)*100), 100)
}

// doseStreak counts days backwards from endDay on which the logged doses met
// the daily expectation
func doseStreak(perDay map[int]int, dailyRate float64, endDay int) int {
	if dailyRate <= 0 {
		return 0
	}

	threshold := max(1, int(math.Ceil(dailyRate)))
	streak := 0
	for day := endDay; perDay[day] >= threshold; day-- {
		streak++
	}
	return streak
}

func weeklyAdherence(perDay map[int]int, dailyRate float64, r DateRange) []WeeklyAdherence {
	weeks := []WeeklyAdherence{}
	days := make(map[string]int)
	index := make(map[string]int)

	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		key := isoWeek(d)
		i, ok := index[key]
		if !ok {
			i = len(weeks)
			index[key] = i
			weeks = append(weeks, WeeklyAdherence{Week: key})
		}
		days[key]++
		weeks[i].Logged += perDay[dayNumber(d)]
	}

	for i := range weeks {
		weeks[i].Expected = int(math.Round(dailyRate * float64(days[weeks[i].Week])))
		weeks[i].Rate = AdherenceRate(weeks[i].Logged, weeks[i].Expected)
	}

	return weeks
}
