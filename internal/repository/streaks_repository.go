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

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(conn PgConnection) *StreaksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) Upsert(ctx context.Context, streak *entity.HabitStreak) error {
	_, err := sr.conn.Exec(ctx,
		`INSERT INTO habit_streaks (user_id, user_habit_id, current_streak, longest_streak, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, user_habit_id)
		DO UPDATE SET current_streak = EXCLUDED.current_streak, longest_streak = EXCLUDED.longest_streak, last_updated = EXCLUDED.last_updated;`,
		streak.UserID,
		streak.UserHabitID,
		streak.CurrentStreak,
		streak.LongestStreak,
		streak.LastUpdated,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return errors.New("upserting streak error: " + err.Error())
	}
	return nil
}

func (sr *StreaksRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.HabitStreak, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT id, user_id, user_habit_id, current_streak, longest_streak, last_updated FROM habit_streaks WHERE user_id = $1;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting streaks by uid error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.HabitStreak, 0)
	for rows.Next() {
		s := entity.HabitStreak{}
		err = rows.Scan(&s.ID, &s.UserID, &s.UserHabitID, &s.CurrentStreak, &s.LongestStreak, &s.LastUpdated)
		if err != nil {
			return nil, errors.New("streak row parsing error: " + err.Error())
		}
		result = append(result, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected streak rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (sr *StreaksRepository) GetByHabit(ctx context.Context, userID, habitID uuid.UUID) (*entity.HabitStreak, error) {
	var s entity.HabitStreak
	row := sr.conn.QueryRow(ctx,
		`SELECT id, user_id, user_habit_id, current_streak, longest_streak, last_updated FROM habit_streaks WHERE user_id = $1 AND user_habit_id = $2;`,
		userID,
		habitID,
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.UserHabitID, &s.CurrentStreak, &s.LongestStreak, &s.LastUpdated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting streak by habit error: " + err.Error())
	}
	return &s, nil
}
