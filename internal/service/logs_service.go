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

type LogsService struct {
	logsRepo  repository.LogsRepositoryI
	usersRepo repository.UsersRepositoryI
}

func NewLogsService(logsRepo repository.LogsRepositoryI, usersRepo repository.UsersRepositoryI) *LogsService {
	if logsRepo == nil || usersRepo == nil {
		log.Fatal("on logs service provided nil repos")
	}
	return &LogsService{
		logsRepo:  logsRepo,
		usersRepo: usersRepo,
	}
}

func (ls *LogsService) UpsertLog(ctx context.Context, uid uuid.UUID, req *UpsertLogRequest) (*entity.DailyLog, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if req.WeightKg != nil && *req.WeightKg <= 0 {
		return nil, errorvalues.ErrInvalidWeight
	}
	dailyLog := entity.DailyLog{
		UserID:         uid,
		LogDate:        metrics.DateOf(req.LogDate),
		WeightKg:       req.WeightKg,
		BodyFatPercent: req.BodyFatPercent,
		MuscleMassKg:   req.MuscleMassKg,
		Notes:          req.Notes,
	}
	if req.WeightKg != nil {
		user, err := ls.usersRepo.FindByID(ctx, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, errorvalues.ErrUserNotFound
			}
			return nil, errors.New("users repository error: " + err.Error())
		}
		if user.HeightCm != nil {
			if bmi := metrics.ComputeBMI(*req.WeightKg, *user.HeightCm); bmi > 0 {
				dailyLog.BMI = &bmi
			}
		}
	}
	if err := ls.logsRepo.Upsert(ctx, &dailyLog); err != nil {
		return nil, errors.New("logs repository error: " + err.Error())
	}
	return &dailyLog, nil
}

func (ls *LogsService) GetLogs(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyLog, error) {
	if to.Before(from) {
		return nil, errors.New("period end is before its start")
	}
	logs, err := ls.logsRepo.GetByUserAndDateRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("logs repository error: " + err.Error())
	}
	return logs, nil
}

func (ls *LogsService) GetLatestLog(ctx context.Context, uid uuid.UUID) (*entity.DailyLog, error) {
	latest, err := ls.logsRepo.GetLatest(ctx, uid)
	if err != nil {
		return nil, errors.New("logs repository error: " + err.Error())
	}
	if latest == nil {
		return nil, errorvalues.ErrLogNotFound
	}
	return latest, nil
}
