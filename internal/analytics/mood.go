package analytics

import (
	"slices"
	"sort"
	"wellness-service/internal/domain/entity"
)

// Trend classifies the direction of mood over a period
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

const (
	trendThreshold  = 0.5
	minTrendEntries = 4
)

// WeeklyMood is the average score of one Monday-aligned week
type WeeklyMood struct {
	WeekStart string  `json:"week_start"`
	Average   float64 `json:"average"`
	Entries   int     `json:"entries"`
}

// ScoreCount is how many entries carried a given score
type ScoreCount struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// MoodAnalytics summarises mood entries over a date range
type MoodAnalytics struct {
	TotalEntries   int               `json:"total_entries"`
	AverageMood    float64           `json:"average_mood"`
	BestEntry      *entity.MoodEntry `json:"best_entry,omitempty"`
	WorstEntry     *entity.MoodEntry `json:"worst_entry,omitempty"`
	Trend          Trend             `json:"trend"`
	WeeklyAverages []WeeklyMood      `json:"weekly_averages"`
	Distribution   []ScoreCount      `json:"distribution"`
}

// Mood computes mood analytics for the entries that fall inside r
func Mood(entries []*entity.MoodEntry, r DateRange) *MoodAnalytics {
	inRange := make([]*entity.MoodEntry, 0, len(entries))
	for _, e := range entries {
		if r.Contains(e.CreatedAt) {
			inRange = append(inRange, e)
		}
	}

	// Oldest first so ties on best/worst go to the earliest entry
	sort.SliceStable(inRange, func(i, j int) bool {
		return inRange[i].CreatedAt.Before(inRange[j].CreatedAt)
	})

	result := &MoodAnalytics{
		TotalEntries:   len(inRange),
		Trend:          TrendStable,
		WeeklyAverages: []WeeklyMood{},
		Distribution:   []ScoreCount{},
	}
	if len(inRange) == 0 {
		return result
	}

	scores := make([]int, len(inRange))
	var sum int
	best, worst := inRange[0], inRange[0]
	for i, e := range inRange {
		scores[i] = e.MoodScore
		sum += e.MoodScore
		if e.MoodScore > best.MoodScore {
			best = e
		}
		if e.MoodScore < worst.MoodScore {
			worst = e
		}
	}

	result.AverageMood = round1(float64(sum) / float64(len(inRange)))
	result.BestEntry = best
	result.WorstEntry = worst
	result.Trend = MoodTrend(scores)
	result.WeeklyAverages = weeklyMood(inRange, r)
	result.Distribution = MoodDistribution(scores)

	return result
}

// MoodTrend compares the mean of the first half of chronological scores with
// the mean of the second half
func MoodTrend(scores []int) Trend {
	if len(scores) < minTrendEntries {
		return TrendStable
	}

	half := len(scores) / 2
	diff := scoreMean(scores[half:]) - scoreMean(scores[:half])

	switch {
	case diff > trendThreshold:
		return TrendImproving
	case diff < -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// MoodDistribution counts entries per score, omitting scores nobody logged
func MoodDistribution(scores []int) []ScoreCount {
	var counts [entity.MaxMoodScore + 1]int
	for _, s := range scores {
		if s >= entity.MinMoodScore && s <= entity.MaxMoodScore {
			counts[s]++
		}
	}

	distribution := []ScoreCount{}
	for score := entity.MinMoodScore; score <= entity.MaxMoodScore; score++ {
		if counts[score] > 0 {
			distribution = append(distribution, ScoreCount{Score: score, Count: counts[score]})
		}
	}
	return distribution
}

func weeklyMood(entries []*entity.MoodEntry, r DateRange) []WeeklyMood {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, e := range entries {
		key := mondayWeekStart(e.CreatedAt.In(r.Location()))
		sums[key] += e.MoodScore
		counts[key]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	weeks := make([]WeeklyMood, 0, len(keys))
	for _, k := range keys {
		weeks = append(weeks, WeeklyMood{
			WeekStart: k,
			Average:   round1(float64(sums[k]) / float64(counts[k])),
			Entries:   counts[k],
		})
	}
	return weeks
}

func scoreMean(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum int
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}
