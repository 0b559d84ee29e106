package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/lighter/internal/error_values"
	"github.com/limbo/lighter/pkg/entity"
)

type PresetsRepository struct {
	conn PgConnection
}

func NewPresetsRepo(conn PgConnection) *PresetsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for presetsRepo: " + err.Error())
	}
	return &PresetsRepository{
		conn: conn,
	}
}

func (pr *PresetsRepository) ListActive(ctx context.Context) ([]entity.HabitPreset, error) {
	rows, err := pr.conn.Query(ctx,
		`SELECT id, name, category, icon, description, default_daily_target, is_active FROM habit_presets WHERE is_active = TRUE ORDER BY name;`,
	)
	if err != nil {
		return nil, errors.New("listing presets error: " + err.Error())
	}
	defer rows.Close()
	presets := make([]entity.HabitPreset, 0)
	for rows.Next() {
		p := entity.HabitPreset{}
		err = rows.Scan(&p.ID, &p.Name, &p.Category, &p.Icon, &p.Description, &p.DefaultDailyTarget, &p.IsActive)
		if err != nil {
			return nil, errors.New("preset row parsing error: " + err.Error())
		}
		presets = append(presets, p)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected preset rows error: " + rows.Err().Error())
	}
	return presets, nil
}

func (pr *PresetsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitPreset, error) {
	var p entity.HabitPreset
	row := pr.conn.QueryRow(ctx,
		`SELECT id, name, category, icon, description, default_daily_target, is_active FROM habit_presets WHERE id = $1;`,
		id,
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Icon, &p.Description, &p.DefaultDailyTarget, &p.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPresetNotFound
		}
		return nil, errors.New("getting preset by id error: " + err.Error())
	}
	return &p, nil
}

type UserHabitsRepository struct {
	conn PgConnection
}

func NewUserHabitsRepo(conn PgConnection) *UserHabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for userHabitsRepo: " + err.Error())
	}
	return &UserHabitsRepository{
		conn: conn,
	}
}

func (hr *UserHabitsRepository) Create(ctx context.Context, habit *entity.UserHabit) (uuid.UUID, error) {
	row := hr.conn.QueryRow(ctx,
		`INSERT INTO user_habits (user_id, habit_preset_id, custom_name, custom_icon, daily_target, display_order)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		habit.UserID,
		habit.PresetID,
		habit.CustomName,
		habit.CustomIcon,
		habit.DailyTarget,
		habit.DisplayOrder,
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrUserHasHabit
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating user habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *UserHabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.UserHabit, error) {
	var h entity.UserHabit
	h.ID = id
	row := hr.conn.QueryRow(ctx,
		`SELECT user_id, habit_preset_id, custom_name, custom_icon, daily_target, display_order, is_active, created_at
		FROM user_habits WHERE id = $1;`,
		id,
	)
	if err := row.Scan(&h.UserID, &h.PresetID, &h.CustomName, &h.CustomIcon, &h.DailyTarget, &h.DisplayOrder, &h.IsActive, &h.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting user habit by id error: " + err.Error())
	}
	return &h, nil
}

func (hr *UserHabitsRepository) GetActiveByUserID(ctx context.Context, uid uuid.UUID) ([]entity.UserHabit, error) {
	rows, err := hr.conn.Query(ctx,
		`SELECT h.id, h.user_id, h.habit_preset_id, h.custom_name, h.custom_icon, h.daily_target, h.display_order, h.is_active, h.created_at,
			p.id, p.name, p.category, p.icon, p.description, p.default_daily_target, p.is_active
		FROM user_habits h
		LEFT JOIN habit_presets p ON p.id = h.habit_preset_id
		WHERE h.user_id = $1 AND h.is_active = TRUE
		ORDER BY h.display_order;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	habits := make([]entity.UserHabit, 0)
	for rows.Next() {
		h := entity.UserHabit{}
		var presetID *uuid.UUID
		var name, category, icon, description *string
		var defaultTarget *int
		var presetActive *bool
		err = rows.Scan(
			&h.ID, &h.UserID, &h.PresetID, &h.CustomName, &h.CustomIcon, &h.DailyTarget, &h.DisplayOrder, &h.IsActive, &h.CreatedAt,
			&presetID, &name, &category, &icon, &description, &defaultTarget, &presetActive,
		)
		if err != nil {
			return nil, errors.New("user habit row parsing error: " + err.Error())
		}
		if presetID != nil {
			h.Preset = &entity.HabitPreset{
				ID:                 *presetID,
				Name:               *name,
				Category:           *category,
				Icon:               *icon,
				Description:        *description,
				DefaultDailyTarget: *defaultTarget,
				IsActive:           *presetActive,
			}
		}
		habits = append(habits, h)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected user habit rows error: " + rows.Err().Error())
	}
	return habits, nil
}

func (hr *UserHabitsRepository) UpdateDailyTarget(ctx context.Context, id uuid.UUID, target int) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE user_habits SET daily_target = $1 WHERE id = $2;`, target, id)
	if err != nil {
		return errors.New("updating daily target error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *UserHabitsRepository) UpdateDisplayOrder(ctx context.Context, id uuid.UUID, order int) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE user_habits SET display_order = $1 WHERE id = $2;`, order, id)
	if err != nil {
		return errors.New("updating display order error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *UserHabitsRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE user_habits SET is_active = FALSE WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deactivating habit error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *UserHabitsRepository) MaxDisplayOrder(ctx context.Context, uid uuid.UUID) (int, error) {
	row := hr.conn.QueryRow(ctx,
		`SELECT COALESCE(MAX(display_order), -1) FROM user_habits WHERE user_id = $1;`,
		uid,
	)
	var maxOrder int
	if err := row.Scan(&maxOrder); err != nil {
		return 0, errors.New("getting max display order error: " + err.Error())
	}
	return maxOrder, nil
}
