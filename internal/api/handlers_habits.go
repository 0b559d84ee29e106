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
	"github.com/limbo/lighter/internal/service"
	"github.com/limbo/lighter/pkg/entity"
	"github.com/limbo/lighter/pkg/httputil"
)

type AddHabitRequest struct {
	PresetID    string `json:"preset_id,omitempty"`
	CustomName  string `json:"custom_name,omitempty"`
	CustomIcon  string `json:"custom_icon,omitempty"`
	DailyTarget int    `json:"daily_target,omitempty"`
}

type UpdateTargetRequest struct {
	DailyTarget int `json:"daily_target"`
}

type MoveHabitRequest struct {
	Direction string `json:"direction"`
}

type GetHabitsResponse struct {
	UserID string             `json:"uid"`
	Habits []entity.UserHabit `json:"habits"`
}

func (s *Server) ListPresets(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	presets, err := s.habitsService.ListPresets(ctx)
	if err != nil {
		logger.Error("getting presets error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting habit presets", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"presets": presets})
	logger.Info("presets provided")
}

func (s *Server) AddHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddHabitRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	addReq := service.AddHabitRequest{
		CustomName:  req.CustomName,
		CustomIcon:  req.CustomIcon,
		DailyTarget: req.DailyTarget,
	}
	if req.PresetID != "" {
		presetID, err := uuid.Parse(req.PresetID)
		if err != nil {
			logger.Error("add habit error: invalid preset id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid preset id", nil)
			return
		}
		addReq.PresetID = &presetID
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.AddHabit(ctx, uid, &addReq)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPresetNotFound):
			logger.Error("add habit error: unexist preset")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit preset doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUserHasHabit):
			logger.Error("add habit error: attempt to track habit twice")
			httputil.WriteErrorResponse(w, http.StatusConflict, "habit is already tracked", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("add habit error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't add habit: user doesn't exists", nil)
		case errors.Is(err, errorvalues.ErrInvalidTarget):
			logger.Error("add habit error: invalid daily target")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("add habit error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't add habit", err)
		default:
			logger.Error("add habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit added")
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	habits, err := s.habitsService.GetUserHabits(ctx, uid)
	if err != nil {
		logger.Error("getting habits list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting habits list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Habits: habits,
	})
	logger.Info("habits provided")
}

func (s *Server) UpdateDailyTarget(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update target error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update target error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req UpdateTargetRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update target error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.habitsService.UpdateDailyTarget(ctx, id, uid, req.DailyTarget)
	if err != nil {
		s.writeHabitError(w, logger, err, "update target")
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("daily target updated")
}

func (s *Server) MoveHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("move habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("move habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req MoveHabitRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || (req.Direction != "up" && req.Direction != "down") {
		logger.Error("move habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "direction must be up or down", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.habitsService.MoveHabit(ctx, id, uid, req.Direction == "up")
	if err != nil {
		s.writeHabitError(w, logger, err, "move habit")
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit moved")
}

func (s *Server) RemoveHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("habit removal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("habit removal error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.habitsService.RemoveHabit(ctx, id, uid)
	if err != nil {
		s.writeHabitError(w, logger, err, "habit removal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit removed")
}

// writeHabitError maps habit ownership/lookup errors shared by habit handlers.
// A foreign habit reports not found, same as a missing one.
func (s *Server) writeHabitError(w http.ResponseWriter, logger *slog.Logger, err error, op string) {
	switch {
	case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: unexist or foreign habit")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrHabitNotActive):
		logger.Error(op + " error: deactivated habit")
		httputil.WriteErrorResponse(w, http.StatusConflict, "habit is deactivated", nil)
	case errors.Is(err, errorvalues.ErrInvalidTarget):
		logger.Error(op + " error: invalid daily target")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
