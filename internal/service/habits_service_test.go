package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lighter/internal/error_values"
	"github.com/limbo/lighter/internal/service"
	"github.com/limbo/lighter/pkg/entity"
	"github.com/stretchr/testify/assert"
)

type mockState int

const (
	stateSuccess = iota
	stateDBError
	stateUserExistsError
	stateUserHasHabitError
	stateHabitNotFoundError
	stateUserNotFoundError
	stateWrongOwner
	stateNotActive
	statePresetNotFound
)

// Variables for tests
var (
	userID     = uuid.New()
	habitID    = uuid.New()
	presetID   = uuid.New()
	testPreset = entity.HabitPreset{
		ID:                 presetID,
		Name:               "Drink water",
		Category:           "hydration",
		Icon:               "droplet",
		Description:        "8 glasses a day",
		DefaultDailyTarget: 8,
		IsActive:           true,
	}
	testHabit = entity.UserHabit{
		ID:           habitID,
		UserID:       userID,
		CustomName:   "test_habit",
		DailyTarget:  3,
		DisplayOrder: 0,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	secondHabit = entity.UserHabit{
		ID:           uuid.New(),
		UserID:       userID,
		CustomName:   "second_habit",
		DailyTarget:  1,
		DisplayOrder: 1,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
)

type presetsRepoMock struct {
	state mockState
}

func (prmock *presetsRepoMock) ListActive(ctx context.Context) ([]entity.HabitPreset, error) {
	switch prmock.state {
	case stateDBError:
		return nil, errors.New("db error")
	default:
		return []entity.HabitPreset{testPreset}, nil
	}
}

func (prmock *presetsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitPreset, error) {
	switch prmock.state {
	case statePresetNotFound:
		return nil, errorvalues.ErrPresetNotFound
	case stateDBError:
		return nil, errors.New("db error")
	default:
		return &testPreset, nil
	}
}

// completionsRepoMock serves the habits service tests only; the tracker tests
// use the generated mocks instead.
type completionsRepoMock struct {
	state mockState
}

func (crmock *completionsRepoMock) Upsert(ctx context.Context, completion *entity.HabitCompletion) error {
	return nil
}

func (crmock *completionsRepoMock) DeleteByDate(ctx context.Context, userID, habitID uuid.UUID, date time.Time) error {
	return nil
}

func (crmock *completionsRepoMock) GetForDate(ctx context.Context, userID, habitID uuid.UUID, date time.Time) (*entity.HabitCompletion, error) {
	return nil, nil
}

func (crmock *completionsRepoMock) GetByHabitSince(ctx context.Context, userID, habitID uuid.UUID, since time.Time) ([]entity.HabitCompletion, error) {
	return nil, nil
}

func (crmock *completionsRepoMock) GetByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error) {
	switch crmock.state {
	case stateDBError:
		return nil, errors.New("db error")
	default:
		return []entity.HabitCompletion{
			{UserID: userID, UserHabitID: habitID, CompletionDate: from, CompletionCount: 2},
		}, nil
	}
}

func (crmock *completionsRepoMock) GetByHabitAndDateRange(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error) {
	return nil, nil
}

type habitsRepoMock struct {
	state mockState
}

func (hrmock *habitsRepoMock) Create(ctx context.Context, habit *entity.UserHabit) (uuid.UUID, error) {
	switch hrmock.state {
	case stateUserNotFoundError:
		return uuid.UUID{}, errorvalues.ErrOwnerNotFound
	case stateUserHasHabitError:
		return uuid.UUID{}, errorvalues.ErrUserHasHabit
	case stateDBError:
		return uuid.UUID{}, errors.New("db error")
	default:
		return habitID, nil
	}
}

func (hrmock *habitsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.UserHabit, error) {
	switch hrmock.state {
	case stateHabitNotFoundError:
		return nil, errorvalues.ErrHabitNotFound
	case stateDBError:
		return nil, errors.New("db error")
	case stateWrongOwner:
		h := testHabit
		h.UserID = uuid.New()
		return &h, nil
	case stateNotActive:
		h := testHabit
		h.IsActive = false
		return &h, nil
	default:
		return &testHabit, nil
	}
}

func (hrmock *habitsRepoMock) GetActiveByUserID(ctx context.Context, uid uuid.UUID) ([]entity.UserHabit, error) {
	switch hrmock.state {
	case stateDBError:
		return nil, errors.New("db error")
	default:
		return []entity.UserHabit{testHabit, secondHabit}, nil
	}
}

func (hrmock *habitsRepoMock) UpdateDailyTarget(ctx context.Context, id uuid.UUID, target int) error {
	switch hrmock.state {
	case stateDBError:
		return errors.New("db error")
	default:
		return nil
	}
}

func (hrmock *habitsRepoMock) UpdateDisplayOrder(ctx context.Context, id uuid.UUID, order int) error {
	switch hrmock.state {
	case stateDBError:
		return errors.New("db error")
	default:
		return nil
	}
}

func (hrmock *habitsRepoMock) Deactivate(ctx context.Context, id uuid.UUID) error {
	switch hrmock.state {
	case stateDBError:
		return errors.New("db error")
	case stateHabitNotFoundError:
		return errorvalues.ErrHabitNotFound
	default:
		return nil
	}
}

func (hrmock *habitsRepoMock) MaxDisplayOrder(ctx context.Context, uid uuid.UUID) (int, error) {
	switch hrmock.state {
	case stateDBError:
		return 0, errors.New("db error")
	default:
		return 1, nil
	}
}

func TestListPresets(t *testing.T) {
	presetsMock := &presetsRepoMock{state: stateSuccess}
	s := service.NewHabitsService(presetsMock, &habitsRepoMock{state: stateSuccess}, &completionsRepoMock{state: stateSuccess})
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		presets, err := s.ListPresets(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []entity.HabitPreset{testPreset}, presets)
	})
	t.Run("db error", func(t *testing.T) {
		presetsMock.state = stateDBError
		_, err := s.ListPresets(ctx)
		assert.Error(t, err)
	})
}

func TestAddHabit(t *testing.T) {
	presetsMock := &presetsRepoMock{state: stateSuccess}
	habitsMock := &habitsRepoMock{state: stateSuccess}
	s := service.NewHabitsService(presetsMock, habitsMock, &completionsRepoMock{state: stateSuccess})
	ctx := context.Background()
	t.Run("success with custom name", func(t *testing.T) {
		h, err := s.AddHabit(ctx, userID, &service.AddHabitRequest{
			CustomName:  testHabit.CustomName,
			DailyTarget: testHabit.DailyTarget,
		})
		assert.NoError(t, err)
		assert.Equal(t, testHabit, *h)
	})
	t.Run("success from preset", func(t *testing.T) {
		h, err := s.AddHabit(ctx, userID, &service.AddHabitRequest{
			PresetID: &presetID,
		})
		assert.NoError(t, err)
		assert.Equal(t, testHabit, *h)
	})
	t.Run("neither preset nor name", func(t *testing.T) {
		_, err := s.AddHabit(ctx, userID, &service.AddHabitRequest{})
		assert.Error(t, err)
	})
	t.Run("name too long", func(t *testing.T) {
		_, err := s.AddHabit(ctx, userID, &service.AddHabitRequest{
			CustomName: strings.Repeat("a", 101),
		})
		assert.Error(t, err)
	})
	t.Run("preset not found", func(t *testing.T) {
		presetsMock.state = statePresetNotFound
		_, err := s.AddHabit(ctx, userID, &service.AddHabitRequest{
			PresetID: &presetID,
		})
		assert.ErrorIs(t, err, errorvalues.ErrPresetNotFound)
		presetsMock.state = stateSuccess
	})
	t.Run("owner not found", func(t *testing.T) {
		habitsMock.state = stateUserNotFoundError
		_, err := s.AddHabit(ctx, userID, &service.AddHabitRequest{
			CustomName: testHabit.CustomName,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("habit duplication", func(t *testing.T) {
		habitsMock.state = stateUserHasHabitError
		_, err := s.AddHabit(ctx, userID, &service.AddHabitRequest{
			CustomName: testHabit.CustomName,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserHasHabit)
	})
	t.Run("db error", func(t *testing.T) {
		habitsMock.state = stateDBError
		_, err := s.AddHabit(ctx, userID, &service.AddHabitRequest{
			CustomName: testHabit.CustomName,
		})
		assert.Error(t, err)
		habitsMock.state = stateSuccess
	})
}

func TestGetUserHabits(t *testing.T) {
	habitsMock := &habitsRepoMock{state: stateSuccess}
	completionsMock := &completionsRepoMock{state: stateSuccess}
	s := service.NewHabitsService(&presetsRepoMock{state: stateSuccess}, habitsMock, completionsMock)
	ctx := context.Background()
	t.Run("success with today's counts joined", func(t *testing.T) {
		habits, err := s.GetUserHabits(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(habits))
		want := testHabit
		want.TodayCount = 2
		assert.Equal(t, want, habits[0])
		assert.Equal(t, 0, habits[1].TodayCount)
	})
	t.Run("completions db error", func(t *testing.T) {
		completionsMock.state = stateDBError
		_, err := s.GetUserHabits(ctx, userID)
		assert.Error(t, err)
		completionsMock.state = stateSuccess
	})
	t.Run("db error", func(t *testing.T) {
		habitsMock.state = stateDBError
		_, err := s.GetUserHabits(ctx, userID)
		assert.Error(t, err)
	})
}

func TestUpdateTarget(t *testing.T) {
	habitsMock := &habitsRepoMock{state: stateSuccess}
	s := service.NewHabitsService(&presetsRepoMock{state: stateSuccess}, habitsMock, &completionsRepoMock{state: stateSuccess})
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		err := s.UpdateDailyTarget(ctx, habitID, userID, 5)
		assert.NoError(t, err)
	})
	t.Run("target out of range", func(t *testing.T) {
		err := s.UpdateDailyTarget(ctx, habitID, userID, 21)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTarget)
		err = s.UpdateDailyTarget(ctx, habitID, userID, 0)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTarget)
	})
	t.Run("wrong owner", func(t *testing.T) {
		habitsMock.state = stateWrongOwner
		err := s.UpdateDailyTarget(ctx, habitID, userID, 5)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("habit deactivated", func(t *testing.T) {
		habitsMock.state = stateNotActive
		err := s.UpdateDailyTarget(ctx, habitID, userID, 5)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotActive)
	})
	t.Run("habit not found", func(t *testing.T) {
		habitsMock.state = stateHabitNotFoundError
		err := s.UpdateDailyTarget(ctx, habitID, userID, 5)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestMoveHabit(t *testing.T) {
	habitsMock := &habitsRepoMock{state: stateSuccess}
	s := service.NewHabitsService(&presetsRepoMock{state: stateSuccess}, habitsMock, &completionsRepoMock{state: stateSuccess})
	ctx := context.Background()
	t.Run("move down swaps with neighbour", func(t *testing.T) {
		err := s.MoveHabit(ctx, habitID, userID, false)
		assert.NoError(t, err)
	})
	t.Run("move up at the top is a no-op", func(t *testing.T) {
		err := s.MoveHabit(ctx, habitID, userID, true)
		assert.NoError(t, err)
	})
	t.Run("wrong owner", func(t *testing.T) {
		habitsMock.state = stateWrongOwner
		err := s.MoveHabit(ctx, habitID, userID, false)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
		habitsMock.state = stateSuccess
	})
}

func TestRemoveHabit(t *testing.T) {
	habitsMock := &habitsRepoMock{state: stateSuccess}
	s := service.NewHabitsService(&presetsRepoMock{state: stateSuccess}, habitsMock, &completionsRepoMock{state: stateSuccess})
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		err := s.RemoveHabit(ctx, habitID, userID)
		assert.NoError(t, err)
	})
	t.Run("wrong owner", func(t *testing.T) {
		habitsMock.state = stateWrongOwner
		err := s.RemoveHabit(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("habit not found", func(t *testing.T) {
		habitsMock.state = stateHabitNotFoundError
		err := s.RemoveHabit(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}
