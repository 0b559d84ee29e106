package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lighter/internal/metrics"
	"github.com/limbo/lighter/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

type RegisterRequest struct {
	Email    string `validate:"required,email,max=255"`
	Name     string `validate:"required,min=2,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type UpdateGoalsRequest struct {
	StartingWeightKg    *float64
	TargetWeightKg      *float64
	HeightCm            *float64
	TargetDate          *time.Time
	OnboardingCompleted *bool
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Updates goal fields on the profile; untouched fields keep their values
	UpdateGoals(ctx context.Context, id uuid.UUID, req *UpdateGoalsRequest) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type AddHabitRequest struct {
	PresetID    *uuid.UUID
	CustomName  string `validate:"omitempty,min=1,max=100"`
	CustomIcon  string `validate:"omitempty,max=16"`
	DailyTarget int    `validate:"omitempty,min=1,max=20"`
}

type HabitsServiceI interface {
	// Lists the seeded habit preset library
	ListPresets(ctx context.Context) ([]entity.HabitPreset, error)
	// Starts tracking a habit, from a preset or fully custom. Appends it to
	// the end of the user's list
	AddHabit(ctx context.Context, uid uuid.UUID, req *AddHabitRequest) (*entity.UserHabit, error)
	// Lists user's active habits in display order, preset data and today's
	// completion counts joined
	GetUserHabits(ctx context.Context, uid uuid.UUID) ([]entity.UserHabit, error)
	UpdateDailyTarget(ctx context.Context, habitID, userID uuid.UUID, target int) error
	// Swaps the habit with its neighbour above or below
	MoveHabit(ctx context.Context, habitID, userID uuid.UUID, up bool) error
	// Soft-deactivates the habit; completion history and streaks stay
	RemoveHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type ToggleResult struct {
	CompletionCount int                  `json:"completion_count"`
	Streak          metrics.StreakResult `json:"streak"`
}

type TrackerServiceI interface {
	// Raises or lowers today's completion count by one (floor zero, a zero
	// count removes the row) and rebuilds the streak from completion history
	ToggleHabit(ctx context.Context, habitID, userID uuid.UUID, date time.Time, increment bool) (*ToggleResult, error)
	// Lists cached streak rows of all user's habits
	GetStreaks(ctx context.Context, uid uuid.UUID) ([]entity.HabitStreak, error)
	// Provides completion history of one habit for a period
	GetHabitHistory(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error)
}

type UpsertLogRequest struct {
	LogDate        time.Time `validate:"required,not_future"`
	WeightKg       *float64
	BodyFatPercent *float64
	MuscleMassKg   *float64
	Notes          string `validate:"max=2000"`
}

type LogsServiceI interface {
	// Creates or replaces the body-metric log for one day; BMI is derived
	// from profile height when a weight is given
	UpsertLog(ctx context.Context, uid uuid.UUID, req *UpsertLogRequest) (*entity.DailyLog, error)
	GetLogs(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyLog, error)
	GetLatestLog(ctx context.Context, uid uuid.UUID) (*entity.DailyLog, error)
}

type Overview struct {
	ProgressPercent   float64          `json:"progress_percent"`
	CurrentWeightKg   *float64         `json:"current_weight_kg,omitempty"`
	StartingWeightKg  *float64         `json:"starting_weight_kg,omitempty"`
	TargetWeightKg    *float64         `json:"target_weight_kg,omitempty"`
	BestCurrentStreak int              `json:"best_current_streak"`
	BestLongestStreak int              `json:"best_longest_streak"`
	LatestLog         *entity.DailyLog `json:"latest_log,omitempty"`
}

type ProgressServiceI interface {
	// Aggregates goal progress, best streaks and the latest log
	GetOverview(ctx context.Context, uid uuid.UUID) (*Overview, error)
	// Aggregates one calendar week; zero weekStart means the current week
	GetWeeklySummary(ctx context.Context, uid uuid.UUID, weekStart time.Time) (*metrics.WeeklySummary, error)
	// Provides logs of the trailing N days for charting
	GetChartData(ctx context.Context, uid uuid.UUID, days int) ([]entity.DailyLog, error)
}

type VisionBoardItemRequest struct {
	Title       string `validate:"max=200"`
	Description string `validate:"max=2000"`
	Theme       string `validate:"max=50"`
	ItemOrder   int    `validate:"min=0"`
}

type VisionBoardServiceI interface {
	CreateItem(ctx context.Context, uid uuid.UUID, req *VisionBoardItemRequest) (*entity.VisionBoardItem, error)
	GetBoard(ctx context.Context, uid uuid.UUID) ([]entity.VisionBoardItem, error)
	UpdateItem(ctx context.Context, itemID, userID uuid.UUID, req *VisionBoardItemRequest) (*entity.VisionBoardItem, error)
	// Stores an uploaded image and attaches it to the item, replacing a
	// previous one
	AttachImage(ctx context.Context, itemID, userID uuid.UUID, data []byte) (*entity.VisionBoardItem, error)
	// Deletes the item along with its stored image
	DeleteItem(ctx context.Context, itemID, userID uuid.UUID) error
}

type PhotosServiceI interface {
	// Stores an uploaded progress photo annotated with weight and body fat
	// from the latest log
	UploadPhoto(ctx context.Context, uid uuid.UUID, data []byte) (*entity.ProgressPhoto, error)
	// Lists user's photos newest first
	GetPhotos(ctx context.Context, uid uuid.UUID) ([]entity.ProgressPhoto, error)
	// Deletes the photo along with its stored file
	DeletePhoto(ctx context.Context, photoID, userID uuid.UUID) error
}
