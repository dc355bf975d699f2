package analytics

import (
	"math"
	"slices"
	"wellness-service/internal/domain/entity"

	"github.com/google/uuid"
)

const maxStreakBonus = 20

// WeeklyCount is the number of completions in one Sunday-aligned week
type WeeklyCount struct {
	WeekStart   string `json:"week_start"`
	Completions int    `json:"completions"`
}

// HabitStats summarises one habit over a date range
type HabitStats struct {
	HabitID           uuid.UUID     `json:"habit_id"`
	Name              string        `json:"name"`
	IsActive          bool          `json:"is_active"`
	TotalCompletions  int           `json:"total_completions"`
	CompletionRate    float64       `json:"completion_rate"`
	CurrentStreak     int           `json:"current_streak"`
	LongestStreak     int           `json:"longest_streak"`
	ConsistencyScore  float64       `json:"consistency_score"`
	WeeklyCompletions []WeeklyCount `json:"weekly_completions"`
}

// HabitOverview aggregates every habit of a user
type HabitOverview struct {
	TotalHabits           int          `json:"total_habits"`
	ActiveHabits          int          `json:"active_habits"`
	OverallCompletionRate float64      `json:"overall_completion_rate"`
	Habits                []HabitStats `json:"habits"`
}

// Habits computes per-habit stats and the overall aggregate.
// logs may belong to any of the habits; they are grouped by habit id.
func Habits(habits []*entity.Habit, logs []*entity.HabitLog, r DateRange) *HabitOverview {
	byHabit := make(map[uuid.UUID][]*entity.HabitLog)
	for _, l := range logs {
		byHabit[l.HabitID] = append(byHabit[l.HabitID], l)
	}

	overview := &HabitOverview{
		TotalHabits: len(habits),
		Habits:      make([]HabitStats, 0, len(habits)),
	}

	rates := make([]float64, 0, len(habits))
	for _, h := range habits {
		if h.IsActive {
			overview.ActiveHabits++
		}
		stats := HabitSummary(h, byHabit[h.ID], r)
		rates = append(rates, stats.CompletionRate)
		overview.Habits = append(overview.Habits, stats)
	}

	overview.OverallCompletionRate = round1(mean(rates))
	return overview
}

// HabitSummary computes completion rate, streaks, weekly completions and the
// consistency score for a single habit
func HabitSummary(h *entity.Habit, logs []*entity.HabitLog, r DateRange) HabitStats {
	stats := HabitStats{
		HabitID:           h.ID,
		Name:              h.Name,
		IsActive:          h.IsActive,
		WeeklyCompletions: []WeeklyCount{},
	}

	loc := r.Location()
	days := make([]int, 0, len(logs))
	weekly := make(map[string]int)
	for _, l := range logs {
		if !r.Contains(l.CompletedAt) {
			continue
		}
		local := l.CompletedAt.In(loc)
		days = append(days, dayNumber(local))
		weekly[sundayWeekStart(local)]++
	}

	totalDays := r.Days()
	stats.TotalCompletions = len(days)
	stats.CompletionRate = math.Round(float64(len(days)) / float64(totalDays) * 100)
	stats.CurrentStreak, stats.LongestStreak = streaks(days, dayNumber(r.End))
	stats.ConsistencyScore = ConsistencyScore(stats.CompletionRate, stats.LongestStreak, totalDays)

	keys := make([]string, 0, len(weekly))
	for k := range weekly {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		stats.WeeklyCompletions = append(stats.WeeklyCompletions, WeeklyCount{WeekStart: k, Completions: weekly[k]})
	}

	return stats
}

// ConsistencyScore adds a streak bonus of up to 20 points to the completion
// rate and caps the total at 100
func ConsistencyScore(completionRate float64, longestStreak, totalDays int) float64 {
	if totalDays <= 0 {
		return 0
	}
	bonus := math.Min(float64(longestStreak)/float64(totalDays)*maxStreakBonus, maxStreakBonus)
	return math.Round(math.Min(completionRate+bonus, 100))
}
