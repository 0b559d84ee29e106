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

const photosBucket = "progress-photos"

type PhotosService struct {
	photosRepo repository.PhotosRepositoryI
	logsRepo   repository.LogsRepositoryI
	storage    storage.StorageI
}

func NewPhotosService(photosRepo repository.PhotosRepositoryI, logsRepo repository.LogsRepositoryI, store storage.StorageI) *PhotosService {
	if photosRepo == nil || logsRepo == nil || store == nil {
		log.Fatal("on photos service provided nil deps")
	}
	return &PhotosService{
		photosRepo: photosRepo,
		logsRepo:   logsRepo,
		storage:    store,
	}
}

func (ps *PhotosService) UploadPhoto(ctx context.Context, uid uuid.UUID, data []byte) (*entity.ProgressPhoto, error) {
	ext, err := detectImageExt(data)
	if err != nil {
		return nil, err
	}
	url, err := ps.storage.Save(photosBucket, uid, ext, data)
	if err != nil {
		return nil, errors.New("storing photo error: " + err.Error())
	}
	photo := entity.ProgressPhoto{
		UserID:   uid,
		PhotoURL: url,
	}
	// Snapshot of body metrics at the moment the photo was taken
	latest, err := ps.logsRepo.GetLatest(ctx, uid)
	if err != nil {
		return nil, errors.New("logs repository error: " + err.Error())
	}
	if latest != nil {
		photo.WeightAtTime = latest.WeightKg
		photo.BodyFatAtTime = latest.BodyFatPercent
	}
	id, err := ps.photosRepo.Create(ctx, &photo)
	if err != nil {
		_ = ps.storage.Remove(url)
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("photos repository error: " + err.Error())
	}
	created, err := ps.photosRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("photos repository error: " + err.Error())
	}
	return created, nil
}

func (ps *PhotosService) GetPhotos(ctx context.Context, uid uuid.UUID) ([]entity.ProgressPhoto, error) {
	photos, err := ps.photosRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("photos repository error: " + err.Error())
	}
	return photos, nil
}

func (ps *PhotosService) DeletePhoto(ctx context.Context, photoID, userID uuid.UUID) error {
	photo, err := ps.photosRepo.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPhotoNotFound) {
			return err
		}
		return errors.New("photos repository error: " + err.Error())
	}
	if photo.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	if err = ps.photosRepo.Delete(ctx, photoID); err != nil {
		if errors.Is(err, errorvalues.ErrPhotoNotFound) {
			return err
		}
		return errors.New("photos repository error: " + err.Error())
	}
	_ = ps.storage.Remove(photo.PhotoURL)
	return nil
}
