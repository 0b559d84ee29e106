package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	PasswordHash        string     `json:"-"`
	StartingWeightKg    *float64   `json:"starting_weight_kg,omitempty"`
	TargetWeightKg      *float64   `json:"target_weight_kg,omitempty"`
	TargetDate          *time.Time `json:"target_date,omitempty"`
	HeightCm            *float64   `json:"height_cm,omitempty"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	CreatedAt           time.Time  `json:"created_at"`
}

type HabitPreset struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Category           string    `json:"category"`
	Icon               string    `json:"icon"`
	Description        string    `json:"desc"`
	DefaultDailyTarget int       `json:"default_daily_target"`
	IsActive           bool      `json:"is_active"`
}

type UserHabit struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"uid"`
	PresetID     *uuid.UUID   `json:"preset_id,omitempty"`
	CustomName   string       `json:"custom_name,omitempty"`
	CustomIcon   string       `json:"custom_icon,omitempty"`
	DailyTarget  int          `json:"daily_target"`
	DisplayOrder int          `json:"display_order"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	Preset       *HabitPreset `json:"preset,omitempty"`
	// TodayCount is joined in by the service layer, not stored on the row
	TodayCount int `json:"today_count"`
}

// DisplayName resolves the shown habit name: custom name wins over the preset's.
func (h *UserHabit) DisplayName() string {
	if h.CustomName != "" {
		return h.CustomName
	}
	if h.Preset != nil && h.Preset.Name != "" {
		return h.Preset.Name
	}
	return "Habit"
}

type HabitCompletion struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"uid"`
	UserHabitID     uuid.UUID `json:"user_habit_id"`
	CompletionDate  time.Time `json:"completion_date"`
	CompletionCount int       `json:"completion_count"`
	CompletedAt     time.Time `json:"completed_at"`
}

// HabitStreak is derived state: it can always be rebuilt from the completion
// log and must never be treated as authoritative.
type HabitStreak struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"uid"`
	UserHabitID   uuid.UUID `json:"user_habit_id"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	LastUpdated   time.Time `json:"last_updated"`
}

type DailyLog struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"uid"`
	LogDate        time.Time `json:"log_date"`
	WeightKg       *float64  `json:"weight_kg,omitempty"`
	BodyFatPercent *float64  `json:"body_fat_percent,omitempty"`
	MuscleMassKg   *float64  `json:"muscle_mass_kg,omitempty"`
	BMI            *float64  `json:"bmi,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type VisionBoardItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"desc,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Theme       string    `json:"theme,omitempty"`
	ItemOrder   int       `json:"item_order"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProgressPhoto struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"uid"`
	PhotoURL      string    `json:"photo_url"`
	WeightAtTime  *float64  `json:"weight_at_time,omitempty"`
	BodyFatAtTime *float64  `json:"body_fat_at_time,omitempty"`
	TakenAt       time.Time `json:"taken_at"`
}
