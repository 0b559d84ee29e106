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
	minDailyTarget = 1
	maxDailyTarget = 20
)

type HabitsService struct {
	presetsRepo     repository.PresetsRepositoryI
	habitsRepo      repository.UserHabitsRepositoryI
	completionsRepo repository.CompletionsRepositoryI
}

func NewHabitsService(presetsRepo repository.PresetsRepositoryI, habitsRepo repository.UserHabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI) *HabitsService {
	if presetsRepo == nil || habitsRepo == nil || completionsRepo == nil {
		log.Fatal("on habits service provided nil repos")
	}
	return &HabitsService{
		presetsRepo:     presetsRepo,
		habitsRepo:      habitsRepo,
		completionsRepo: completionsRepo,
	}
}

func (hs *HabitsService) ListPresets(ctx context.Context) ([]entity.HabitPreset, error) {
	presets, err := hs.presetsRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.New("presets repository error: " + err.Error())
	}
	return presets, nil
}

func (hs *HabitsService) AddHabit(ctx context.Context, uid uuid.UUID, req *AddHabitRequest) (*entity.UserHabit, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if req.PresetID == nil && req.CustomName == "" {
		return nil, errors.New("either preset or custom name is required")
	}
	target := req.DailyTarget
	if req.PresetID != nil {
		preset, err := hs.presetsRepo.GetByID(ctx, *req.PresetID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrPresetNotFound) {
				return nil, err
			}
			return nil, errors.New("presets repository error: " + err.Error())
		}
		if target == 0 {
			target = preset.DefaultDailyTarget
		}
	}
	if target == 0 {
		target = minDailyTarget
	}
	if target < minDailyTarget || target > maxDailyTarget {
		return nil, errorvalues.ErrInvalidTarget
	}
	maxOrder, err := hs.habitsRepo.MaxDisplayOrder(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	h := entity.UserHabit{
		UserID:       uid,
		PresetID:     req.PresetID,
		CustomName:   req.CustomName,
		CustomIcon:   req.CustomIcon,
		DailyTarget:  target,
		DisplayOrder: maxOrder + 1,
		IsActive:     true,
	}
	id, err := hs.habitsRepo.Create(ctx, &h)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrUserHasHabit):
			return nil, errorvalues.ErrUserHasHabit
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.habitsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

// GetUserHabits lists active habits in display order with today's completion
// counts joined in, so one call renders the daily checklist.
func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID) ([]entity.UserHabit, error) {
	habits, err := hs.habitsRepo.GetActiveByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if len(habits) == 0 {
		return habits, nil
	}
	today := metrics.DateOf(time.Now())
	completions, err := hs.completionsRepo.GetByUserAndDateRange(ctx, uid, today, today)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	counts := make(map[uuid.UUID]int, len(completions))
	for _, c := range completions {
		counts[c.UserHabitID] = c.CompletionCount
	}
	for i := range habits {
		habits[i].TodayCount = counts[habits[i].ID]
	}
	return habits, nil
}

func (hs *HabitsService) UpdateDailyTarget(ctx context.Context, habitID, userID uuid.UUID, target int) error {
	if target < minDailyTarget || target > maxDailyTarget {
		return errorvalues.ErrInvalidTarget
	}
	if _, err := hs.ownedActiveHabit(ctx, habitID, userID); err != nil {
		return err
	}
	if err := hs.habitsRepo.UpdateDailyTarget(ctx, habitID, target); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) MoveHabit(ctx context.Context, habitID, userID uuid.UUID, up bool) error {
	habit, err := hs.ownedActiveHabit(ctx, habitID, userID)
	if err != nil {
		return err
	}
	habits, err := hs.habitsRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return errors.New("habits repository error: " + err.Error())
	}
	idx := -1
	for i := range habits {
		if habits[i].ID == habit.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errorvalues.ErrHabitNotFound
	}
	other := idx + 1
	if up {
		other = idx - 1
	}
	// Already at the edge of the list, nothing to swap with
	if other < 0 || other >= len(habits) {
		return nil
	}
	if err = hs.habitsRepo.UpdateDisplayOrder(ctx, habits[idx].ID, habits[other].DisplayOrder); err != nil {
		return errors.New("habits repository error: " + err.Error())
	}
	if err = hs.habitsRepo.UpdateDisplayOrder(ctx, habits[other].ID, habits[idx].DisplayOrder); err != nil {
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) RemoveHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	if _, err := hs.ownedActiveHabit(ctx, habitID, userID); err != nil {
		return err
	}
	if err := hs.habitsRepo.Deactivate(ctx, habitID); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) ownedActiveHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.UserHabit, error) {
	habit, err := hs.habitsRepo.GetByID(ctx, habitID)
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
	return habit, nil
}
