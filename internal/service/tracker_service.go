package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lighter/internal/error_values"
	"github.com/limbo/lighter/internal/metrics"
	"github.com/limbo/lighter/internal/repository"
	"github.com/limbo/lighter/pkg/entity"
)

type TrackerService struct {
	habitsRepo      repository.UserHabitsRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	streaksRepo     repository.StreaksRepositoryI
}

func NewTrackerService(habitsRepo repository.UserHabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI, streaksRepo repository.StreaksRepositoryI) *TrackerService {
	if habitsRepo == nil || completionsRepo == nil || streaksRepo == nil {
		log.Fatal("on tracker service provided nil repos")
	}
	return &TrackerService{
		habitsRepo:      habitsRepo,
		completionsRepo: completionsRepo,
		streaksRepo:     streaksRepo,
	}
}

func (ts *TrackerService) ToggleHabit(ctx context.Context, habitID, userID uuid.UUID, date time.Time, increment bool) (*ToggleResult, error) {
	habit, err := ts.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	if !habit.IsActive {
		return nil, errorvalues.ErrHabitNotActive
	}
	day := metrics.DateOf(date)
	// Clients may send the date in a different location than the host runs
	// in; calendar-day strings keep the future check location-free.
	if day.Format(time.DateOnly) > time.Now().Format(time.DateOnly) {
		return nil, errorvalues.ErrFutureDate
	}

	existing, err := ts.completionsRepo.GetForDate(ctx, userID, habitID, day)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	count := 0
	if existing != nil {
		count = existing.CompletionCount
	}
	if increment {
		count++
	} else if count > 0 {
		count--
	}
	if count == 0 {
		if existing != nil {
			if err = ts.completionsRepo.DeleteByDate(ctx, userID, habitID, day); err != nil && !errors.Is(err, errorvalues.ErrCompletionNotFound) {
				return nil, errors.New("completions repository error: " + err.Error())
			}
		}
	} else {
		err = ts.completionsRepo.Upsert(ctx, &entity.HabitCompletion{
			UserID:          userID,
			UserHabitID:     habitID,
			CompletionDate:  day,
			CompletionCount: count,
		})
		if err != nil {
			if errors.Is(err, errorvalues.ErrHabitNotFound) {
				return nil, err
			}
			return nil, errors.New("completions repository error: " + err.Error())
		}
	}

	streak, err := ts.rebuildStreak(ctx, userID, habitID, habit.DailyTarget, day)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{
		CompletionCount: count,
		Streak:          streak,
	}, nil
}

// rebuildStreak rederives the streak from completion history and replaces the
// cached row. The stored counter is never incremented in place: after any
// write the whole scan window is read back and recounted, so a lost update on
// the cache can't survive the next toggle.
func (ts *TrackerService) rebuildStreak(ctx context.Context, userID, habitID uuid.UUID, dailyTarget int, asOf time.Time) (metrics.StreakResult, error) {
	history, err := ts.completionsRepo.GetByHabitSince(ctx, userID, habitID, asOf.AddDate(0, 0, -metrics.MaxScanDays))
	if err != nil {
		return metrics.StreakResult{}, errors.New("completions repository error: " + err.Error())
	}
	prev, err := ts.streaksRepo.GetByHabit(ctx, userID, habitID)
	if err != nil {
		return metrics.StreakResult{}, errors.New("streaks repository error: " + err.Error())
	}
	previousLongest := 0
	if prev != nil {
		previousLongest = prev.LongestStreak
	}
	result, err := metrics.ComputeStreak(history, dailyTarget, asOf, previousLongest)
	if err != nil {
		return metrics.StreakResult{}, errors.New("streak computing error: " + err.Error())
	}
	err = ts.streaksRepo.Upsert(ctx, &entity.HabitStreak{
		UserID:        userID,
		UserHabitID:   habitID,
		CurrentStreak: result.CurrentStreak,
		LongestStreak: result.LongestStreak,
		LastUpdated:   time.Now(),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return metrics.StreakResult{}, err
		}
		return metrics.StreakResult{}, errors.New("streaks repository error: " + err.Error())
	}
	return result, nil
}

func (ts *TrackerService) GetStreaks(ctx context.Context, uid uuid.UUID) ([]entity.HabitStreak, error) {
	streaks, err := ts.streaksRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	return streaks, nil
}

func (ts *TrackerService) GetHabitHistory(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error) {
	habit, err := ts.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	completions, err := ts.completionsRepo.GetByHabitAndDateRange(ctx, userID, habitID, from, to)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	return completions, nil
}
