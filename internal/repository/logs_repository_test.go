package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/limbo/lighter/internal/repository"
	"github.com/limbo/lighter/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertDailyLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logsRepo := repository.NewLogsRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO daily_logs (user_id, log_date, weight_kg, body_fat_percent, muscle_mass_kg, bmi, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, log_date)
		DO UPDATE SET weight_kg = EXCLUDED.weight_kg, body_fat_percent = EXCLUDED.body_fat_percent, muscle_mass_kg = EXCLUDED.muscle_mass_kg, bmi = EXCLUDED.bmi, notes = EXCLUDED.notes;`)
	weight := 87.3
	bmi := 26.4
	dailyLog := entity.DailyLog{
		UserID:   uuid.New(),
		LogDate:  time.Now(),
		WeightKg: &weight,
		BMI:      &bmi,
		Notes:    "felt good today",
	}
	ctx := context.Background()
	t.Run("successful", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(dailyLog.UserID, dailyLog.LogDate, dailyLog.WeightKg, dailyLog.BodyFatPercent, dailyLog.MuscleMassKg, dailyLog.BMI, dailyLog.Notes).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := logsRepo.Upsert(ctx, &dailyLog)
		assert.NoError(t, err)
	})
	t.Run("nil log", func(t *testing.T) {
		err := logsRepo.Upsert(ctx, nil)
		assert.Error(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(dailyLog.UserID, dailyLog.LogDate, dailyLog.WeightKg, dailyLog.BodyFatPercent, dailyLog.MuscleMassKg, dailyLog.BMI, dailyLog.Notes).
			WillReturnError(errors.New("db error"))
		err := logsRepo.Upsert(ctx, &dailyLog)
		assert.EqualError(t, err, "upserting daily log error: db error")
	})
}

func TestGetLogsByUserAndDateRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logsRepo := repository.NewLogsRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, log_date, weight_kg, body_fat_percent, muscle_mass_kg, bmi, notes, created_at
		FROM daily_logs
		WHERE user_id = $1 AND log_date >= $2 AND log_date <= $3
		ORDER BY log_date ASC;`)
	uid := uuid.New()
	fromDate := time.Now().AddDate(0, 0, -7)
	toDate := time.Now()
	weight := 88.1
	returnedLogs := []entity.DailyLog{
		{
			ID:        uuid.New(),
			UserID:    uid,
			LogDate:   fromDate,
			WeightKg:  &weight,
			Notes:     "",
			CreatedAt: fromDate,
		},
		{
			ID:        uuid.New(),
			UserID:    uid,
			LogDate:   toDate,
			Notes:     "rest day",
			CreatedAt: toDate,
		},
	}
	testCases := []struct {
		Desc         string
		Error        error
		LogsResult   []entity.DailyLog
		MockPrepFunc func()
	}{
		{
			Desc:       "success",
			Error:      nil,
			LogsResult: returnedLogs,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "log_date", "weight_kg", "body_fat_percent", "muscle_mass_kg", "bmi", "notes", "created_at"})
				for _, l := range returnedLogs {
					rows.AddRow(l.ID, l.UserID, l.LogDate, l.WeightKg, l.BodyFatPercent, l.MuscleMassKg, l.BMI, l.Notes, l.CreatedAt)
				}
				mock.ExpectQuery(query).
					WithArgs(uid, fromDate, toDate).
					WillReturnRows(rows)
			},
		},
		{
			Desc:       "empty period",
			Error:      nil,
			LogsResult: []entity.DailyLog{},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, fromDate, toDate).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "log_date", "weight_kg", "body_fat_percent", "muscle_mass_kg", "bmi", "notes", "created_at"}))
			},
		},
		{
			Desc:       "db error",
			Error:      errors.New("getting logs for period error: db error"),
			LogsResult: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, fromDate, toDate).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := logsRepo.GetByUserAndDateRange(ctx, uid, fromDate, toDate)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.LogsResult, result)
			}
		})
	}
}

func TestGetLatestLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logsRepo := repository.NewLogsRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, log_date, weight_kg, body_fat_percent, muscle_mass_kg, bmi, notes, created_at
		FROM daily_logs WHERE user_id = $1 ORDER BY log_date DESC LIMIT 1;`)
	weight := 86.9
	bodyFat := 21.5
	dailyLog := entity.DailyLog{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		LogDate:        time.Now(),
		WeightKg:       &weight,
		BodyFatPercent: &bodyFat,
		CreatedAt:      time.Now(),
	}
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(dailyLog.UserID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "log_date", "weight_kg", "body_fat_percent", "muscle_mass_kg", "bmi", "notes", "created_at"}).
				AddRow(dailyLog.ID, dailyLog.UserID, dailyLog.LogDate, dailyLog.WeightKg, dailyLog.BodyFatPercent, dailyLog.MuscleMassKg, dailyLog.BMI, dailyLog.Notes, dailyLog.CreatedAt))
		result, err := logsRepo.GetLatest(ctx, dailyLog.UserID)
		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, dailyLog, *result)
	})
	t.Run("no logs yet", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(dailyLog.UserID).
			WillReturnError(pgx.ErrNoRows)
		result, err := logsRepo.GetLatest(ctx, dailyLog.UserID)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(dailyLog.UserID).
			WillReturnError(errors.New("db error"))
		_, err := logsRepo.GetLatest(ctx, dailyLog.UserID)
		assert.EqualError(t, err, "getting latest log error: db error")
	})
}
