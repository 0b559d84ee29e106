// Package metrics holds the pure streak/progress computation engine. It does
// no I/O: callers fetch completion history and logs, the engine derives numbers.
package metrics

import (
	"time"

	errorvalues "github.com/limbo/lighter/internal/error_values"
	"github.com/limbo/lighter/pkg/entity"
)

// MaxScanDays caps the backward walk over completion history. It is a safety
// bound against unbounded scans, not a business rule: a streak longer than a
// year gets truncated to this many days.
const MaxScanDays = 365

type StreakResult struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

// DateOf truncates t to its calendar day, keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Sunday that opens the calendar week containing t.
func WeekStart(t time.Time) time.Time {
	d := DateOf(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// ComputeStreak derives the streak for one habit from its completion history.
// A day counts as met when its completion count reaches dailyTarget. The
// current streak is the unbroken run of met days ending at asOf; if asOf
// itself is not met the streak is 0 no matter what came before. The longest
// streak is a monotone high-water mark seeded with previousLongest, never
// recomputed from history.
func ComputeStreak(completions []entity.HabitCompletion, dailyTarget int, asOf time.Time, previousLongest int) (StreakResult, error) {
	if dailyTarget <= 0 {
		return StreakResult{}, errorvalues.ErrNonPositiveTarget
	}
	if previousLongest < 0 {
		return StreakResult{}, errorvalues.ErrNegativeCount
	}
	counts := make(map[string]int, len(completions))
	for _, c := range completions {
		if c.CompletionDate.IsZero() {
			return StreakResult{}, errorvalues.ErrMissingDate
		}
		if c.CompletionCount < 0 {
			return StreakResult{}, errorvalues.ErrNegativeCount
		}
		counts[c.CompletionDate.Format(time.DateOnly)] = c.CompletionCount
	}
	met := func(day time.Time) bool {
		return counts[day.Format(time.DateOnly)] >= dailyTarget
	}
	day := DateOf(asOf)
	current := 0
	if met(day) {
		current = 1
		for i := 1; i <= MaxScanDays; i++ {
			if !met(day.AddDate(0, 0, -i)) {
				break
			}
			current++
		}
	}
	longest := previousLongest
	if current > longest {
		longest = current
	}
	return StreakResult{
		CurrentStreak: current,
		LongestStreak: longest,
	}, nil
}
