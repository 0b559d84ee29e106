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

type PhotosRepository struct {
	conn PgConnection
}

func NewPhotosRepo(conn PgConnection) *PhotosRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for photosRepo: " + err.Error())
	}
	return &PhotosRepository{
		conn: conn,
	}
}

func (pr *PhotosRepository) Create(ctx context.Context, photo *entity.ProgressPhoto) (uuid.UUID, error) {
	row := pr.conn.QueryRow(ctx,
		`INSERT INTO progress_photos (user_id, photo_url, weight_at_time, body_fat_at_time)
		VALUES ($1, $2, $3, $4) RETURNING id;`,
		photo.UserID,
		photo.PhotoURL,
		photo.WeightAtTime,
		photo.BodyFatAtTime,
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating progress photo error: " + err.Error())
	}
	return id, nil
}

func (pr *PhotosRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProgressPhoto, error) {
	var p entity.ProgressPhoto
	row := pr.conn.QueryRow(ctx,
		`SELECT id, user_id, photo_url, weight_at_time, body_fat_at_time, taken_at FROM progress_photos WHERE id = $1;`,
		id,
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.PhotoURL, &p.WeightAtTime, &p.BodyFatAtTime, &p.TakenAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPhotoNotFound
		}
		return nil, errors.New("getting progress photo error: " + err.Error())
	}
	return &p, nil
}

func (pr *PhotosRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.ProgressPhoto, error) {
	rows, err := pr.conn.Query(ctx,
		`SELECT id, user_id, photo_url, weight_at_time, body_fat_at_time, taken_at
		FROM progress_photos WHERE user_id = $1 ORDER BY taken_at DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting progress photos error: " + err.Error())
	}
	defer rows.Close()
	photos := make([]entity.ProgressPhoto, 0)
	for rows.Next() {
		p := entity.ProgressPhoto{}
		err = rows.Scan(&p.ID, &p.UserID, &p.PhotoURL, &p.WeightAtTime, &p.BodyFatAtTime, &p.TakenAt)
		if err != nil {
			return nil, errors.New("progress photo row parsing error: " + err.Error())
		}
		photos = append(photos, p)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected progress photo rows error: " + rows.Err().Error())
	}
	return photos, nil
}

func (pr *PhotosRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM progress_photos WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting progress photo error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPhotoNotFound
	}
	return nil
}
