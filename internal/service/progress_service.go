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

const (
	defaultChartDays = 30
	maxChartDays     = metrics.MaxScanDays
)

type ProgressService struct {
	usersRepo       repository.UsersRepositoryI
	habitsRepo      repository.UserHabitsRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	streaksRepo     repository.StreaksRepositoryI
	logsRepo        repository.LogsRepositoryI
}

func NewProgressService(
	usersRepo repository.UsersRepositoryI,
	habitsRepo repository.UserHabitsRepositoryI,
	completionsRepo repository.CompletionsRepositoryI,
	streaksRepo repository.StreaksRepositoryI,
	logsRepo repository.LogsRepositoryI,
) *ProgressService {
	if usersRepo == nil || habitsRepo == nil || completionsRepo == nil || streaksRepo == nil || logsRepo == nil {
		log.Fatal("on progress service provided nil repos")
	}
	return &ProgressService{
		usersRepo:       usersRepo,
		habitsRepo:      habitsRepo,
		completionsRepo: completionsRepo,
		streaksRepo:     streaksRepo,
		logsRepo:        logsRepo,
	}
}

func (ps *ProgressService) GetOverview(ctx context.Context, uid uuid.UUID) (*Overview, error) {
	user, err := ps.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	latest, err := ps.logsRepo.GetLatest(ctx, uid)
	if err != nil {
		return nil, errors.New("logs repository error: " + err.Error())
	}
	var current *float64
	if latest != nil {
		current = latest.WeightKg
	}
	streaks, err := ps.streaksRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	overview := Overview{
		ProgressPercent:  metrics.ComputeProgress(current, user.StartingWeightKg, user.TargetWeightKg),
		CurrentWeightKg:  current,
		StartingWeightKg: user.StartingWeightKg,
		TargetWeightKg:   user.TargetWeightKg,
		LatestLog:        latest,
	}
	for _, s := range streaks {
		if s.CurrentStreak > overview.BestCurrentStreak {
			overview.BestCurrentStreak = s.CurrentStreak
		}
		if s.LongestStreak > overview.BestLongestStreak {
			overview.BestLongestStreak = s.LongestStreak
		}
	}
	return &overview, nil
}

func (ps *ProgressService) GetWeeklySummary(ctx context.Context, uid uuid.UUID, weekStart time.Time) (*metrics.WeeklySummary, error) {
	if weekStart.IsZero() {
		weekStart = time.Now()
	}
	start := metrics.WeekStart(weekStart)
	end := start.AddDate(0, 0, 6)

	habits, err := ps.habitsRepo.GetActiveByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	completions, err := ps.completionsRepo.GetByUserAndDateRange(ctx, uid, start, end)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	logs, err := ps.logsRepo.GetByUserAndDateRange(ctx, uid, start, end)
	if err != nil {
		return nil, errors.New("logs repository error: " + err.Error())
	}
	summary := metrics.ComputeWeeklySummary(logs, completions, habits, start)
	return &summary, nil
}

func (ps *ProgressService) GetChartData(ctx context.Context, uid uuid.UUID, days int) ([]entity.DailyLog, error) {
	if days <= 0 {
		days = defaultChartDays
	}
	if days > maxChartDays {
		days = maxChartDays
	}
	to := metrics.DateOf(time.Now())
	from := to.AddDate(0, 0, -(days - 1))
	logs, err := ps.logsRepo.GetByUserAndDateRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("logs repository error: " + err.Error())
	}
	return logs, nil
}
