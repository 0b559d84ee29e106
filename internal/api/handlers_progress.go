package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/lighter/internal/error_values"
	"github.com/limbo/lighter/internal/service"
	"github.com/limbo/lighter/pkg/httputil"
)

type UpsertLogRequest struct {
	LogDate        string   `json:"log_date,omitempty"`
	WeightKg       *float64 `json:"weight_kg,omitempty"`
	BodyFatPercent *float64 `json:"body_fat_percent,omitempty"`
	MuscleMassKg   *float64 `json:"muscle_mass_kg,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

func (s *Server) UpsertLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("upsert log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpsertLogRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("upsert log error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	logDate := time.Now()
	if req.LogDate != "" {
		logDate, err = time.Parse(time.DateOnly, req.LogDate)
		if err != nil {
			logger.Error("upsert log error: invalid log date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid log date, want YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	dailyLog, err := s.logsService.UpsertLog(ctx, uid, &service.UpsertLogRequest{
		LogDate:        logDate,
		WeightKg:       req.WeightKg,
		BodyFatPercent: req.BodyFatPercent,
		MuscleMassKg:   req.MuscleMassKg,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidWeight):
			logger.Error("upsert log error: invalid weight")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("upsert log error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("upsert log error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't save log", err)
		default:
			logger.Error("upsert log error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving log", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dailyLog)
	logger.Info("daily log saved")
}

func (s *Server) GetLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, to, err := parsePeriod(r, 30)
	if err != nil {
		logger.Error("get logs error: invalid period")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	logs, err := s.logsService.GetLogs(ctx, uid, from, to)
	if err != nil {
		logger.Error("getting logs error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting logs", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"logs": logs})
	logger.Info("logs provided")
}

func (s *Server) GetLatestLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get latest log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	latest, err := s.logsService.GetLatestLog(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			logger.Error("get latest log error: no logs yet")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no logs yet", nil)
			return
		}
		logger.Error("getting latest log error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting latest log", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, latest)
	logger.Info("latest log provided")
}

func (s *Server) GetOverview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get overview error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	overview, err := s.progressService.GetOverview(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get overview error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("getting overview error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting overview", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
	logger.Info("overview provided")
}

func (s *Server) GetWeeklySummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get weekly summary error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var weekStart time.Time
	if v := r.URL.Query().Get("week_start"); v != "" {
		weekStart, err = time.Parse(time.DateOnly, v)
		if err != nil {
			logger.Error("get weekly summary error: invalid week start")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid week_start, want YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	summary, err := s.progressService.GetWeeklySummary(ctx, uid, weekStart)
	if err != nil {
		logger.Error("getting weekly summary error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting weekly summary", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("weekly summary provided")
}

func (s *Server) GetChartData(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get chart data error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		days = 0
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	logs, err := s.progressService.GetChartData(ctx, uid, days)
	if err != nil {
		logger.Error("getting chart data error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting chart data", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"logs": logs})
	logger.Info("chart data provided")
}
