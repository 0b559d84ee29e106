package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/lighter/internal/error_values"
	"github.com/limbo/lighter/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepo(conn PgConnection) *CompletionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for completionsRepo: " + err.Error())
	}
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) Upsert(ctx context.Context, completion *entity.HabitCompletion) error {
	_, err := cr.conn.Exec(ctx,
		`INSERT INTO daily_habit_completions (user_id, user_habit_id, completion_date, completion_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, user_habit_id, completion_date)
		DO UPDATE SET completion_count = EXCLUDED.completion_count, completed_at = NOW();`,
		completion.UserID,
		completion.UserHabitID,
		completion.CompletionDate,
		completion.CompletionCount,
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
		return errors.New("upserting completion error: " + err.Error())
	}
	return nil
}

func (cr *CompletionsRepository) DeleteByDate(ctx context.Context, userID, habitID uuid.UUID, date time.Time) error {
	ct, err := cr.conn.Exec(ctx,
		`DELETE FROM daily_habit_completions WHERE user_id = $1 AND user_habit_id = $2 AND completion_date = $3;`,
		userID,
		habitID,
		date,
	)
	if err != nil {
		return errors.New("deleting completion error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCompletionNotFound
	}
	return nil
}

func (cr *CompletionsRepository) GetForDate(ctx context.Context, userID, habitID uuid.UUID, date time.Time) (*entity.HabitCompletion, error) {
	var c entity.HabitCompletion
	row := cr.conn.QueryRow(ctx,
		`SELECT id, user_id, user_habit_id, completion_date, completion_count, completed_at
		FROM daily_habit_completions WHERE user_id = $1 AND user_habit_id = $2 AND completion_date = $3;`,
		userID,
		habitID,
		date,
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.UserHabitID, &c.CompletionDate, &c.CompletionCount, &c.CompletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting completion for date error: " + err.Error())
	}
	return &c, nil
}

func (cr *CompletionsRepository) GetByHabitSince(ctx context.Context, userID, habitID uuid.UUID, since time.Time) ([]entity.HabitCompletion, error) {
	rows, err := cr.conn.Query(ctx,
		`SELECT id, user_id, user_habit_id, completion_date, completion_count, completed_at
		FROM daily_habit_completions
		WHERE user_id = $1 AND user_habit_id = $2 AND completion_date >= $3
		ORDER BY completion_date DESC;`,
		userID,
		habitID,
		since,
	)
	if err != nil {
		return nil, errors.New("getting completion history error: " + err.Error())
	}
	return scanCompletions(rows)
}

func (cr *CompletionsRepository) GetByUserAndDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error) {
	rows, err := cr.conn.Query(ctx,
		`SELECT id, user_id, user_habit_id, completion_date, completion_count, completed_at
		FROM daily_habit_completions
		WHERE user_id = $1 AND completion_date >= $2 AND completion_date <= $3;`,
		userID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting completions for period error: " + err.Error())
	}
	return scanCompletions(rows)
}

func (cr *CompletionsRepository) GetByHabitAndDateRange(ctx context.Context, userID, habitID uuid.UUID, from, to time.Time) ([]entity.HabitCompletion, error) {
	rows, err := cr.conn.Query(ctx,
		`SELECT id, user_id, user_habit_id, completion_date, completion_count, completed_at
		FROM daily_habit_completions
		WHERE user_id = $1 AND user_habit_id = $2 AND completion_date >= $3 AND completion_date <= $4;`,
		userID,
		habitID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting habit completions for period error: " + err.Error())
	}
	return scanCompletions(rows)
}

func scanCompletions(rows pgx.Rows) ([]entity.HabitCompletion, error) {
	defer rows.Close()
	result := make([]entity.HabitCompletion, 0)
	for rows.Next() {
		c := entity.HabitCompletion{}
		err := rows.Scan(&c.ID, &c.UserID, &c.UserHabitID, &c.CompletionDate, &c.CompletionCount, &c.CompletedAt)
		if err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected completion rows error: " + rows.Err().Error())
	}
	return result, nil
}
