package metrics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lighter/pkg/entity"
)

const daysInWeek = 7

type HabitStat struct {
	HabitID       uuid.UUID `json:"habit_id"`
	Name          string    `json:"name"`
	CompletedDays int       `json:"completed_days"`
	Percentage    float64   `json:"percentage"`
}

type WeeklySummary struct {
	HabitStats    []HabitStat `json:"habit_stats"`
	WeightChange  float64     `json:"weight_change"`
	TotalLogs     int         `json:"total_logs"`
	AverageWeight float64     `json:"average_weight"`
}

// ComputeWeeklySummary aggregates one calendar week [weekStart, weekStart+6].
// For every habit it counts the days whose completion count reached the
// habit's daily target (a zero target is treated as 1, matching how habits
// are created). Weight change is last minus first log of the window after
// sorting by date; the average skips logs without a weight and is 0, never
// NaN, for an empty window.
func ComputeWeeklySummary(logs []entity.DailyLog, completions []entity.HabitCompletion, habits []entity.UserHabit, weekStart time.Time) WeeklySummary {
	start := DateOf(weekStart)
	// Rows scanned from the database and weekStart may carry different
	// locations, so the window bounds compare as calendar-day strings.
	firstDay := start.Format(time.DateOnly)
	lastDay := start.AddDate(0, 0, daysInWeek-1).Format(time.DateOnly)

	type dayKey struct {
		habit uuid.UUID
		date  string
	}
	counts := make(map[dayKey]int, len(completions))
	for _, c := range completions {
		day := c.CompletionDate.Format(time.DateOnly)
		if day < firstDay || day > lastDay {
			continue
		}
		counts[dayKey{c.UserHabitID, day}] = c.CompletionCount
	}

	habitStats := make([]HabitStat, 0, len(habits))
	for i := range habits {
		h := &habits[i]
		target := h.DailyTarget
		if target < 1 {
			target = 1
		}
		completedDays := 0
		for d := 0; d < daysInWeek; d++ {
			day := start.AddDate(0, 0, d).Format(time.DateOnly)
			if counts[dayKey{h.ID, day}] >= target {
				completedDays++
			}
		}
		habitStats = append(habitStats, HabitStat{
			HabitID:       h.ID,
			Name:          h.DisplayName(),
			CompletedDays: completedDays,
			Percentage:    float64(completedDays) / daysInWeek * 100,
		})
	}

	weekLogs := make([]entity.DailyLog, 0, daysInWeek)
	for _, l := range logs {
		day := l.LogDate.Format(time.DateOnly)
		if day < firstDay || day > lastDay {
			continue
		}
		weekLogs = append(weekLogs, l)
	}
	// Incoming logs aren't guaranteed chronological; an unsorted window flips
	// the sign of the weight change.
	sort.Slice(weekLogs, func(i, j int) bool {
		return weekLogs[i].LogDate.Format(time.DateOnly) < weekLogs[j].LogDate.Format(time.DateOnly)
	})

	weightChange := 0.0
	if len(weekLogs) > 0 {
		weightChange = weightOrZero(&weekLogs[len(weekLogs)-1]) - weightOrZero(&weekLogs[0])
	}
	weightSum := 0.0
	weighted := 0
	for i := range weekLogs {
		if weekLogs[i].WeightKg == nil {
			continue
		}
		weightSum += *weekLogs[i].WeightKg
		weighted++
	}
	averageWeight := 0.0
	if weighted > 0 {
		averageWeight = weightSum / float64(weighted)
	}

	return WeeklySummary{
		HabitStats:    habitStats,
		WeightChange:  weightChange,
		TotalLogs:     len(weekLogs),
		AverageWeight: averageWeight,
	}
}

func weightOrZero(l *entity.DailyLog) float64 {
	if l.WeightKg == nil {
		return 0
	}
	return *l.WeightKg
}
