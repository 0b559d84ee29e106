package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/lighter/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates goal fields on the user's profile
	UpdateGoals(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type PresetsRepositoryI interface {
	// Lists the seeded habit preset library (active presets only)
	ListActive(ctx context.Context) ([]entity.HabitPreset, error)
	// Searches preset with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitPreset, error)
}

type UserHabitsRepositoryI interface {
	// Creates new tracked habit. UserID, DailyTarget, DisplayOrder are necessary
	Create(ctx context.Context, habit *entity.UserHabit) (uuid.UUID, error)
	// Searches tracked habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.UserHabit, error)
	// Lists user's active habits with preset data, ordered by display_order
	GetActiveByUserID(ctx context.Context, uid uuid.UUID) ([]entity.UserHabit, error)
	// Changes the per-day completion target
	UpdateDailyTarget(ctx context.Context, id uuid.UUID, target int) error
	// Changes position of habit in user's list
	UpdateDisplayOrder(ctx context.Context, id uuid.UUID, order int) error
	// Soft-deletes habit (history and streaks stay)
	Deactivate(ctx context.Context, id uuid.UUID) error
	// Returns the highest display_order among user's habits, -1 when none
	MaxDisplayOrder(ctx context.Context, uid uuid.UUID) (int, error)
}

type CompletionsRepositoryI interface {
	// Inserts or updates the per-day completion count, keyed by
	// (user_id, user_habit_id, completion_date)
	Upsert(ctx context.Context, completion *entity.HabitCompletion) error
	// Removes the completion row for one day (count dropped to zero)
	DeleteByDate(ctx context.Context, userID, habitID uuid.UUID, date time.Time) error
	// Returns the completion for one day, nil when none
	GetForDate(ctx context.Context, userID, habitID uuid.UUID, date time.Time) (*entity.HabitCompletion, error)
	// Provides completion history for a habit since a date, newest first
	GetByHabitSince(ctx context.Context, userID, habitID uuid.UUID, since time.Time) ([]entity.HabitCompletion, error)
	// Provides completions of all user's habits for a period
	GetByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error)
	// Provides completions of one habit for a period
	GetByHabitAndDateRange(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error)
}

type StreaksRepositoryI interface {
	// Inserts or replaces the cached streak row, keyed by (user_id, user_habit_id).
	// Last writer wins: concurrent toggles both recompute from history, so the
	// later write carries the fresher value
	Upsert(ctx context.Context, streak *entity.HabitStreak) error
	// Lists streak rows of all user's habits
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.HabitStreak, error)
	// Returns streak row for one habit, nil when never computed
	GetByHabit(ctx context.Context, userID, habitID uuid.UUID) (*entity.HabitStreak, error)
}

type LogsRepositoryI interface {
	// Inserts or updates the daily body-metric log, keyed by (user_id, log_date)
	Upsert(ctx context.Context, log *entity.DailyLog) error
	// Provides logs for a period ordered by log_date ascending
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyLog, error)
	// Returns the most recent log, nil when user never logged
	GetLatest(ctx context.Context, uid uuid.UUID) (*entity.DailyLog, error)
}

type VisionBoardRepositoryI interface {
	// Creates new vision board item
	Create(ctx context.Context, item *entity.VisionBoardItem) (uuid.UUID, error)
	// Searches item with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.VisionBoardItem, error)
	// Lists user's items ordered by item_order
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.VisionBoardItem, error)
	// Updates title, description, theme and order
	Update(ctx context.Context, item *entity.VisionBoardItem) error
	// Replaces the stored image url
	UpdateImageURL(ctx context.Context, id uuid.UUID, url string) error
	// Deletes item
	Delete(ctx context.Context, id uuid.UUID) error
}

type PhotosRepositoryI interface {
	// Creates new progress photo row
	Create(ctx context.Context, photo *entity.ProgressPhoto) (uuid.UUID, error)
	// Searches photo with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ProgressPhoto, error)
	// Lists user's photos newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.ProgressPhoto, error)
	// Deletes photo row
	Delete(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
