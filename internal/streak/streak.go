// Package streak maintains per-user daily activity streak counters.
//
// The gap-based streak rule lives in FromSortedDates so the persisted state
// machine and the read-side activity aggregator share one implementation.
package streak

import (
	"time"
)

// State is the persisted streak row, one per user. It is mutated only by
// daily attempt completion.
type State struct {
	UserID           string     `db:"user_id"`
	CurrentStreak    int        `db:"current_streak"`
	LongestStreak    int        `db:"longest_streak"`
	LastActivityDate *time.Time `db:"last_activity_date"`
	TotalActiveDays  int        `db:"total_active_days"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// GapDays returns the number of calendar days between from and to,
// ignoring the time-of-day component.
func GapDays(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

// FromSortedDates computes the current and longest streak from a set of
// distinct active dates sorted ascending. The current streak is the run
// ending at the latest date, and counts only if that date is today or
// yesterday relative to today; otherwise it is 0.
func FromSortedDates(dates []time.Time, today time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	run := 1
	longest = 1
	for i := 1; i < len(dates); i++ {
		if GapDays(dates[i-1], dates[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	if GapDays(dates[len(dates)-1], today) <= 1 {
		current = run
	}
	return current, longest
}
