package analytics

import (
	"testing"
	"time"
)

var streakNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return streakNow.AddDate(0, 0, -n)
}

func TestCurrentStreak_ConsecutiveDays(t *testing.T) {
	entries := []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}
	if got := CurrentStreak(entries, streakNow); got != 3 {
		t.Errorf("CurrentStreak() = %d, want 3", got)
	}
}

func TestCurrentStreak_Gap(t *testing.T) {
	entries := []time.Time{daysAgo(0), daysAgo(3)}
	if got := CurrentStreak(entries, streakNow); got != 1 {
		t.Errorf("CurrentStreak() = %d, want 1", got)
	}
}

func TestCurrentStreak_Empty(t *testing.T) {
	if got := CurrentStreak(nil, streakNow); got != 0 {
		t.Errorf("CurrentStreak(nil) = %d, want 0", got)
	}
}

func TestCurrentStreak_NoEntryToday(t *testing.T) {
	// The run must end today; a streak that stopped yesterday counts as 0.
	entries := []time.Time{daysAgo(1), daysAgo(2)}
	if got := CurrentStreak(entries, streakNow); got != 0 {
		t.Errorf("CurrentStreak() = %d, want 0", got)
	}
}

func TestCurrentStreak_TimeOfDayIrrelevant(t *testing.T) {
	// Entries at any clock time count for their calendar day.
	entries := []time.Time{
		time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC),
		time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC),
	}
	if got := CurrentStreak(entries, streakNow); got != 2 {
		t.Errorf("CurrentStreak() = %d, want 2", got)
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name    string
		offsets []int // days ago, most-recent-first
		want    int
	}{
		{"empty", nil, 0},
		{"single", []int{0}, 1},
		{"current run is best", []int{0, 1, 2}, 3},
		{"older run is best", []int{0, 5, 6, 7, 8}, 4},
		{"all isolated", []int{0, 2, 4, 6}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []time.Time
			for _, n := range tt.offsets {
				entries = append(entries, daysAgo(n))
			}
			if got := LongestStreak(entries); got != tt.want {
				t.Errorf("LongestStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreak_AcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}

	// DST begins 2025-03-09 in New York, making March 9 a 23-hour day.
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, loc)
	entries := []time.Time{
		time.Date(2025, 3, 10, 8, 0, 0, 0, loc),
		time.Date(2025, 3, 9, 20, 0, 0, 0, loc),
		time.Date(2025, 3, 8, 7, 0, 0, 0, loc),
	}
	if got := CurrentStreak(entries, now); got != 3 {
		t.Errorf("CurrentStreak() = %d, want 3 across the DST boundary", got)
	}
}

func TestLongestStreak_AcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}

	entries := []time.Time{
		time.Date(2025, 3, 10, 8, 0, 0, 0, loc),
		time.Date(2025, 3, 9, 20, 0, 0, 0, loc),
	}
	if got := LongestStreak(entries); got != 2 {
		t.Errorf("LongestStreak() = %d, want 2 across the DST boundary", got)
	}
}
