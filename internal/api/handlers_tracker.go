package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lighter/internal/error_values"
	"github.com/limbo/lighter/pkg/entity"
	"github.com/limbo/lighter/pkg/httputil"
)

type ToggleHabitRequest struct {
	Increment *bool  `json:"increment,omitempty"`
	Date      string `json:"date,omitempty"`
}

type GetCompletionsResponse struct {
	HabitID     string                   `json:"habit_id"`
	Completions []entity.HabitCompletion `json:"completions"`
}

func (s *Server) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("toggle error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("toggle error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req ToggleHabitRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("toggle error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	// Missing flag means checking the habit off, the common case
	increment := true
	if req.Increment != nil {
		increment = *req.Increment
	}
	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse(time.DateOnly, req.Date)
		if err != nil {
			logger.Error("toggle error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.trackerService.ToggleHabit(ctx, id, uid, date, increment)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrFutureDate):
			logger.Error("toggle error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		default:
			s.writeHabitError(w, logger, err, "toggle")
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("habit toggled")
}

func (s *Server) GetStreaks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streaks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streaks, err := s.trackerService.GetStreaks(ctx, uid)
	if err != nil {
		logger.Error("getting streaks error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting streaks", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"streaks": streaks})
	logger.Info("streaks provided")
}

func (s *Server) GetHabitHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get completions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get completions error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	from, to, err := parsePeriod(r, 30)
	if err != nil {
		logger.Error("get completions error: invalid period")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	completions, err := s.trackerService.GetHabitHistory(ctx, id, uid, from, to)
	if err != nil {
		s.writeHabitError(w, logger, err, "get completions")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetCompletionsResponse{
		HabitID:     id.String(),
		Completions: completions,
	})
	logger.Info("completions provided")
}

// parsePeriod reads from/to query params (YYYY-MM-DD); a missing period
// defaults to the trailing defaultDays days.
func parsePeriod(r *http.Request, defaultDays int) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if v := r.URL.Query().Get("to"); v != "" {
		to, err = time.Parse(time.DateOnly, v)
		if err != nil {
			return from, to, errors.New("invalid to date, want YYYY-MM-DD")
		}
	} else {
		to = time.Now()
	}
	if v := r.URL.Query().Get("from"); v != "" {
		from, err = time.Parse(time.DateOnly, v)
		if err != nil {
			return from, to, errors.New("invalid from date, want YYYY-MM-DD")
		}
	} else {
		from = to.AddDate(0, 0, -(defaultDays - 1))
	}
	if to.Before(from) {
		return from, to, errors.New("period end is before its start")
	}
	return from, to, nil
}
