package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lighter/internal/error_values"
	"github.com/limbo/lighter/internal/repository"
	"github.com/limbo/lighter/internal/storage"
	"github.com/limbo/lighter/pkg/entity"
)

const visionBoardBucket = "vision-board"

type VisionBoardService struct {
	repo    repository.VisionBoardRepositoryI
	storage storage.StorageI
}

func NewVisionBoardService(repo repository.VisionBoardRepositoryI, store storage.StorageI) *VisionBoardService {
	if repo == nil || store == nil {
		log.Fatal("on vision board service provided nil deps")
	}
	return &VisionBoardService{
		repo:    repo,
		storage: store,
	}
}

func (vs *VisionBoardService) CreateItem(ctx context.Context, uid uuid.UUID, req *VisionBoardItemRequest) (*entity.VisionBoardItem, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	item := entity.VisionBoardItem{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Theme:       req.Theme,
		ItemOrder:   req.ItemOrder,
	}
	id, err := vs.repo.Create(ctx, &item)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("vision board repository error: " + err.Error())
	}
	created, err := vs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("vision board repository error: " + err.Error())
	}
	return created, nil
}

func (vs *VisionBoardService) GetBoard(ctx context.Context, uid uuid.UUID) ([]entity.VisionBoardItem, error) {
	items, err := vs.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("vision board repository error: " + err.Error())
	}
	return items, nil
}

func (vs *VisionBoardService) UpdateItem(ctx context.Context, itemID, userID uuid.UUID, req *VisionBoardItemRequest) (*entity.VisionBoardItem, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	item, err := vs.ownedItem(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	item.Title = req.Title
	item.Description = req.Description
	item.Theme = req.Theme
	item.ItemOrder = req.ItemOrder
	if err = vs.repo.Update(ctx, item); err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return nil, err
		}
		return nil, errors.New("vision board repository error: " + err.Error())
	}
	return item, nil
}

func (vs *VisionBoardService) AttachImage(ctx context.Context, itemID, userID uuid.UUID, data []byte) (*entity.VisionBoardItem, error) {
	item, err := vs.ownedItem(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}
	ext, err := detectImageExt(data)
	if err != nil {
		return nil, err
	}
	url, err := vs.storage.Save(visionBoardBucket, userID, ext, data)
	if err != nil {
		return nil, errors.New("storing image error: " + err.Error())
	}
	if err = vs.repo.UpdateImageURL(ctx, itemID, url); err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return nil, err
		}
		return nil, errors.New("vision board repository error: " + err.Error())
	}
	// Stale file cleanup only; the item already points at the new image
	if item.ImageURL != "" {
		_ = vs.storage.Remove(item.ImageURL)
	}
	item.ImageURL = url
	return item, nil
}

func (vs *VisionBoardService) DeleteItem(ctx context.Context, itemID, userID uuid.UUID) error {
	item, err := vs.ownedItem(ctx, itemID, userID)
	if err != nil {
		return err
	}
	if err = vs.repo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return err
		}
		return errors.New("vision board repository error: " + err.Error())
	}
	if item.ImageURL != "" {
		_ = vs.storage.Remove(item.ImageURL)
	}
	return nil
}

func (vs *VisionBoardService) ownedItem(ctx context.Context, itemID, userID uuid.UUID) (*entity.VisionBoardItem, error) {
	item, err := vs.repo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return nil, err
		}
		return nil, errors.New("vision board repository error: " + err.Error())
	}
	if item.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return item, nil
}
