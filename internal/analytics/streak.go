package analytics

import "slices"

// streaks computes the current and longest runs of consecutive days.
// days are day numbers in any order, duplicates allowed. The current run must
// end on endDay or the day before it; a day not yet logged does not break it.
func streaks(days []int, endDay int) (current, longest int) {
	if len(days) == 0 {
		return 0, 0
	}

	sorted := slices.Clone(days)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	run := 1
	longest = 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	last := len(sorted) - 1
	if sorted[last] != endDay && sorted[last] != endDay-1 {
		return 0, longest
	}

	current = 1
	for i := last; i > 0 && sorted[i]-sorted[i-1] == 1; i-- {
		current++
	}

	return current, longest
}
