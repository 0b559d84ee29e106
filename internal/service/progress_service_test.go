package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/lighter/internal/error_values"
	"github.com/limbo/lighter/internal/metrics"
	"github.com/limbo/lighter/internal/repository/mocks"
	"github.com/limbo/lighter/internal/service"
	"github.com/limbo/lighter/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type progressMocks struct {
	users       *mocks.MockUsersRepositoryI
	habits      *mocks.MockUserHabitsRepositoryI
	completions *mocks.MockCompletionsRepositoryI
	streaks     *mocks.MockStreaksRepositoryI
	logs        *mocks.MockLogsRepositoryI
}

func newProgressService(t *testing.T) (*service.ProgressService, *progressMocks) {
	ctrl := gomock.NewController(t)
	m := &progressMocks{
		users:       mocks.NewMockUsersRepositoryI(ctrl),
		habits:      mocks.NewMockUserHabitsRepositoryI(ctrl),
		completions: mocks.NewMockCompletionsRepositoryI(ctrl),
		streaks:     mocks.NewMockStreaksRepositoryI(ctrl),
		logs:        mocks.NewMockLogsRepositoryI(ctrl),
	}
	return service.NewProgressService(m.users, m.habits, m.completions, m.streaks, m.logs), m
}

func TestGetOverview(t *testing.T) {
	ctx := context.Background()
	startingWeight := 90.0
	targetWeight := 80.0
	currentWeight := 85.0

	t.Run("halfway to the goal", func(t *testing.T) {
		s, m := newProgressService(t)
		m.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{
			ID:               userID,
			StartingWeightKg: &startingWeight,
			TargetWeightKg:   &targetWeight,
		}, nil)
		latest := &entity.DailyLog{UserID: userID, WeightKg: &currentWeight}
		m.logs.EXPECT().GetLatest(ctx, userID).Return(latest, nil)
		m.streaks.EXPECT().GetByUserID(ctx, userID).Return([]entity.HabitStreak{
			{CurrentStreak: 2, LongestStreak: 4},
			{CurrentStreak: 5, LongestStreak: 5},
			{CurrentStreak: 0, LongestStreak: 9},
		}, nil)
		overview, err := s.GetOverview(ctx, userID)
		assert.NoError(t, err)
		assert.InDelta(t, 50.0, overview.ProgressPercent, 0.001)
		assert.Equal(t, &currentWeight, overview.CurrentWeightKg)
		assert.Equal(t, 5, overview.BestCurrentStreak)
		assert.Equal(t, 9, overview.BestLongestStreak)
		assert.Equal(t, latest, overview.LatestLog)
	})

	t.Run("no goal set yet", func(t *testing.T) {
		s, m := newProgressService(t)
		m.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		m.logs.EXPECT().GetLatest(ctx, userID).Return(nil, nil)
		m.streaks.EXPECT().GetByUserID(ctx, userID).Return([]entity.HabitStreak{}, nil)
		overview, err := s.GetOverview(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, overview.ProgressPercent)
		assert.Nil(t, overview.CurrentWeightKg)
		assert.Nil(t, overview.LatestLog)
	})

	t.Run("unknown user", func(t *testing.T) {
		s, m := newProgressService(t)
		m.users.EXPECT().FindByID(ctx, userID).Return(nil, errorvalues.ErrUserNotFound)
		_, err := s.GetOverview(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestGetWeeklySummary(t *testing.T) {
	ctx := context.Background()
	weekStart := metrics.WeekStart(time.Now())
	weekEnd := weekStart.AddDate(0, 0, 6)
	s, m := newProgressService(t)
	habit := entity.UserHabit{ID: habitID, UserID: userID, CustomName: "stretch", DailyTarget: 1, IsActive: true}
	firstWeight := 88.0
	lastWeight := 87.0
	m.habits.EXPECT().GetActiveByUserID(ctx, userID).Return([]entity.UserHabit{habit}, nil)
	m.completions.EXPECT().GetByUserAndDateRange(ctx, userID, weekStart, weekEnd).Return([]entity.HabitCompletion{
		{UserHabitID: habitID, CompletionDate: weekStart, CompletionCount: 1},
		{UserHabitID: habitID, CompletionDate: weekStart.AddDate(0, 0, 1), CompletionCount: 1},
	}, nil)
	m.logs.EXPECT().GetByUserAndDateRange(ctx, userID, weekStart, weekEnd).Return([]entity.DailyLog{
		{UserID: userID, LogDate: weekStart, WeightKg: &firstWeight},
		{UserID: userID, LogDate: weekStart.AddDate(0, 0, 2), WeightKg: &lastWeight},
	}, nil)
	summary, err := s.GetWeeklySummary(ctx, userID, weekStart)
	assert.NoError(t, err)
	require.Equal(t, 1, len(summary.HabitStats))
	assert.Equal(t, "stretch", summary.HabitStats[0].Name)
	assert.Equal(t, 2, summary.HabitStats[0].CompletedDays)
	assert.Equal(t, 2, summary.TotalLogs)
	assert.InDelta(t, -1.0, summary.WeightChange, 0.001)
	assert.InDelta(t, 87.5, summary.AverageWeight, 0.001)
}

func TestGetChartData(t *testing.T) {
	ctx := context.Background()
	today := metrics.DateOf(time.Now())
	t.Run("explicit window", func(t *testing.T) {
		s, m := newProgressService(t)
		logs := []entity.DailyLog{{UserID: userID, LogDate: today}}
		m.logs.EXPECT().GetByUserAndDateRange(ctx, userID, today.AddDate(0, 0, -6), today).Return(logs, nil)
		result, err := s.GetChartData(ctx, userID, 7)
		assert.NoError(t, err)
		assert.Equal(t, logs, result)
	})
	t.Run("zero days falls back to the default window", func(t *testing.T) {
		s, m := newProgressService(t)
		m.logs.EXPECT().GetByUserAndDateRange(ctx, userID, today.AddDate(0, 0, -29), today).Return([]entity.DailyLog{}, nil)
		result, err := s.GetChartData(ctx, userID, 0)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("oversized window is clamped", func(t *testing.T) {
		s, m := newProgressService(t)
		m.logs.EXPECT().GetByUserAndDateRange(ctx, userID, today.AddDate(0, 0, -(metrics.MaxScanDays-1)), today).Return([]entity.DailyLog{}, nil)
		_, err := s.GetChartData(ctx, userID, 10000)
		assert.NoError(t, err)
	})
}
