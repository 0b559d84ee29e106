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

type VisionBoardRepository struct {
	conn PgConnection
}

func NewVisionBoardRepo(conn PgConnection) *VisionBoardRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for visionBoardRepo: " + err.Error())
	}
	return &VisionBoardRepository{
		conn: conn,
	}
}

func (vr *VisionBoardRepository) Create(ctx context.Context, item *entity.VisionBoardItem) (uuid.UUID, error) {
	row := vr.conn.QueryRow(ctx,
		`INSERT INTO vision_board_items (user_id, title, description, image_url, theme, item_order)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		item.UserID,
		item.Title,
		item.Description,
		item.ImageURL,
		item.Theme,
		item.ItemOrder,
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
		return uuid.UUID{}, errors.New("creating vision board item error: " + err.Error())
	}
	return id, nil
}

func (vr *VisionBoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.VisionBoardItem, error) {
	var item entity.VisionBoardItem
	row := vr.conn.QueryRow(ctx,
		`SELECT id, user_id, title, description, image_url, theme, item_order, created_at FROM vision_board_items WHERE id = $1;`,
		id,
	)
	if err := row.Scan(&item.ID, &item.UserID, &item.Title, &item.Description, &item.ImageURL, &item.Theme, &item.ItemOrder, &item.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrItemNotFound
		}
		return nil, errors.New("getting vision board item error: " + err.Error())
	}
	return &item, nil
}

func (vr *VisionBoardRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.VisionBoardItem, error) {
	rows, err := vr.conn.Query(ctx,
		`SELECT id, user_id, title, description, image_url, theme, item_order, created_at
		FROM vision_board_items WHERE user_id = $1 ORDER BY item_order;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting vision board error: " + err.Error())
	}
	defer rows.Close()
	items := make([]entity.VisionBoardItem, 0)
	for rows.Next() {
		item := entity.VisionBoardItem{}
		err = rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Description, &item.ImageURL, &item.Theme, &item.ItemOrder, &item.CreatedAt)
		if err != nil {
			return nil, errors.New("vision board row parsing error: " + err.Error())
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected vision board rows error: " + rows.Err().Error())
	}
	return items, nil
}

func (vr *VisionBoardRepository) Update(ctx context.Context, item *entity.VisionBoardItem) error {
	ct, err := vr.conn.Exec(ctx,
		`UPDATE vision_board_items SET title = $1, description = $2, theme = $3, item_order = $4 WHERE id = $5;`,
		item.Title,
		item.Description,
		item.Theme,
		item.ItemOrder,
		item.ID,
	)
	if err != nil {
		return errors.New("updating vision board item error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrItemNotFound
	}
	return nil
}

func (vr *VisionBoardRepository) UpdateImageURL(ctx context.Context, id uuid.UUID, url string) error {
	ct, err := vr.conn.Exec(ctx, `UPDATE vision_board_items SET image_url = $1 WHERE id = $2;`, url, id)
	if err != nil {
		return errors.New("updating item image error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrItemNotFound
	}
	return nil
}

func (vr *VisionBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := vr.conn.Exec(ctx, `DELETE FROM vision_board_items WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting vision board item error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrItemNotFound
	}
	return nil
}
