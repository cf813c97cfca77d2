package analytics

import "time"

// DayStart normalizes a timestamp to midnight of its local calendar day.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

const dayDuration = 24 * time.Hour

// daysBetween counts calendar days from one day-start to a later one.
// Rounding absorbs the 23- and 25-hour days around DST transitions.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Round(dayDuration) / dayDuration)
}

// CurrentStreak computes the consecutive-day run ending today. Entry times
// must be ordered most-recent-first with at most one entry per calendar day;
// callers with multiple entries on a day must deduplicate first or the streak
// will undercount. The i-th entry extends the streak exactly when it falls i
// whole days before now's calendar day; the walk stops at the first gap.
// Empty input returns 0.
func CurrentStreak(entries []time.Time, now time.Time) int {
	today := DayStart(now)

	streak := 0
	for i, entry := range entries {
		daysDiff := daysBetween(DayStart(entry), today)
		if daysDiff != i {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak computes the best historical consecutive-day run. Entry times
// must be ordered most-recent-first, at most one per calendar day.
func LongestStreak(entries []time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	best := 1
	run := 1
	for i := 1; i < len(entries); i++ {
		gap := daysBetween(DayStart(entries[i]), DayStart(entries[i-1]))
		if gap == 1 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}
