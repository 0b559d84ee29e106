package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/limbo/lighter/pkg/entity"
)

type LogsRepository struct {
	conn PgConnection
}

func NewLogsRepo(conn PgConnection) *LogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for logsRepo: " + err.Error())
	}
	return &LogsRepository{
		conn: conn,
	}
}

func (lr *LogsRepository) Upsert(ctx context.Context, dailyLog *entity.DailyLog) error {
	if dailyLog == nil {
		return errors.New("daily log is nil")
	}
	_, err := lr.conn.Exec(ctx,
		`INSERT INTO daily_logs (user_id, log_date, weight_kg, body_fat_percent, muscle_mass_kg, bmi, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, log_date)
		DO UPDATE SET weight_kg = EXCLUDED.weight_kg, body_fat_percent = EXCLUDED.body_fat_percent, muscle_mass_kg = EXCLUDED.muscle_mass_kg, bmi = EXCLUDED.bmi, notes = EXCLUDED.notes;`,
		dailyLog.UserID,
		dailyLog.LogDate,
		dailyLog.WeightKg,
		dailyLog.BodyFatPercent,
		dailyLog.MuscleMassKg,
		dailyLog.BMI,
		dailyLog.Notes,
	)
	if err != nil {
		return errors.New("upserting daily log error: " + err.Error())
	}
	return nil
}

func (lr *LogsRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyLog, error) {
	rows, err := lr.conn.Query(ctx,
		`SELECT id, user_id, log_date, weight_kg, body_fat_percent, muscle_mass_kg, bmi, notes, created_at
		FROM daily_logs
		WHERE user_id = $1 AND log_date >= $2 AND log_date <= $3
		ORDER BY log_date ASC;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting logs for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.DailyLog, 0)
	for rows.Next() {
		l := entity.DailyLog{}
		err = rows.Scan(&l.ID, &l.UserID, &l.LogDate, &l.WeightKg, &l.BodyFatPercent, &l.MuscleMassKg, &l.BMI, &l.Notes, &l.CreatedAt)
		if err != nil {
			return nil, errors.New("daily log row parsing error: " + err.Error())
		}
		result = append(result, l)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected daily log rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (lr *LogsRepository) GetLatest(ctx context.Context, uid uuid.UUID) (*entity.DailyLog, error) {
	var l entity.DailyLog
	row := lr.conn.QueryRow(ctx,
		`SELECT id, user_id, log_date, weight_kg, body_fat_percent, muscle_mass_kg, bmi, notes, created_at
		FROM daily_logs WHERE user_id = $1 ORDER BY log_date DESC LIMIT 1;`,
		uid,
	)
	if err := row.Scan(&l.ID, &l.UserID, &l.LogDate, &l.WeightKg, &l.BodyFatPercent, &l.MuscleMassKg, &l.BMI, &l.Notes, &l.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting latest log error: " + err.Error())
	}
	return &l, nil
}
