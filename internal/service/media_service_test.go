package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lighter/internal/error_values"
	"github.com/limbo/lighter/internal/repository/mocks"
	"github.com/limbo/lighter/internal/service"
	"github.com/limbo/lighter/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Valid magic bytes, enough for content sniffing
var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n.................")
	jpegBytes = []byte("\xff\xd8\xff\xe0.................")
	textBytes = []byte("definitely not an image")
)

type storageMock struct {
	saved    []string
	removed  []string
	failSave bool
}

func (sm *storageMock) Save(bucket string, uid uuid.UUID, ext string, data []byte) (string, error) {
	if sm.failSave {
		return "", errors.New("disk full")
	}
	url := "/uploads/" + bucket + "/" + uid.String() + "/file" + ext
	sm.saved = append(sm.saved, url)
	return url, nil
}

func (sm *storageMock) Remove(publicURL string) error {
	sm.removed = append(sm.removed, publicURL)
	return nil
}

func newBoardService(t *testing.T) (*service.VisionBoardService, *mocks.MockVisionBoardRepositoryI, *storageMock) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVisionBoardRepositoryI(ctrl)
	store := &storageMock{}
	return service.NewVisionBoardService(repo, store), repo, store
}

func TestCreateBoardItem(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()
	t.Run("success", func(t *testing.T) {
		s, repo, _ := newBoardService(t)
		created := &entity.VisionBoardItem{ID: itemID, UserID: userID, Title: "fit into old jeans"}
		repo.EXPECT().Create(ctx, gomock.Any()).Return(itemID, nil)
		repo.EXPECT().GetByID(ctx, itemID).Return(created, nil)
		item, err := s.CreateItem(ctx, userID, &service.VisionBoardItemRequest{Title: "fit into old jeans"})
		assert.NoError(t, err)
		assert.Equal(t, created, item)
	})
	t.Run("unknown user", func(t *testing.T) {
		s, repo, _ := newBoardService(t)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrOwnerNotFound)
		_, err := s.CreateItem(ctx, userID, &service.VisionBoardItemRequest{Title: "t"})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("negative order", func(t *testing.T) {
		s, _, _ := newBoardService(t)
		_, err := s.CreateItem(ctx, userID, &service.VisionBoardItemRequest{Title: "t", ItemOrder: -1})
		assert.Error(t, err)
	})
}

func TestAttachImage(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()
	t.Run("replaces the previous image", func(t *testing.T) {
		s, repo, store := newBoardService(t)
		repo.EXPECT().GetByID(ctx, itemID).Return(&entity.VisionBoardItem{
			ID:       itemID,
			UserID:   userID,
			ImageURL: "/uploads/vision-board/old.png",
		}, nil)
		repo.EXPECT().UpdateImageURL(ctx, itemID, gomock.Any()).Return(nil)
		item, err := s.AttachImage(ctx, itemID, userID, pngBytes)
		assert.NoError(t, err)
		require.Equal(t, 1, len(store.saved))
		assert.Equal(t, store.saved[0], item.ImageURL)
		assert.Equal(t, []string{"/uploads/vision-board/old.png"}, store.removed)
	})
	t.Run("not an image", func(t *testing.T) {
		s, repo, store := newBoardService(t)
		repo.EXPECT().GetByID(ctx, itemID).Return(&entity.VisionBoardItem{ID: itemID, UserID: userID}, nil)
		_, err := s.AttachImage(ctx, itemID, userID, textBytes)
		assert.ErrorIs(t, err, errorvalues.ErrUnsupportedFile)
		assert.Empty(t, store.saved)
	})
	t.Run("wrong owner", func(t *testing.T) {
		s, repo, _ := newBoardService(t)
		repo.EXPECT().GetByID(ctx, itemID).Return(&entity.VisionBoardItem{ID: itemID, UserID: uuid.New()}, nil)
		_, err := s.AttachImage(ctx, itemID, userID, pngBytes)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestDeleteBoardItem(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()
	t.Run("removes the stored image too", func(t *testing.T) {
		s, repo, store := newBoardService(t)
		repo.EXPECT().GetByID(ctx, itemID).Return(&entity.VisionBoardItem{
			ID:       itemID,
			UserID:   userID,
			ImageURL: "/uploads/vision-board/old.png",
		}, nil)
		repo.EXPECT().Delete(ctx, itemID).Return(nil)
		err := s.DeleteItem(ctx, itemID, userID)
		assert.NoError(t, err)
		assert.Equal(t, []string{"/uploads/vision-board/old.png"}, store.removed)
	})
	t.Run("item not found", func(t *testing.T) {
		s, repo, _ := newBoardService(t)
		repo.EXPECT().GetByID(ctx, itemID).Return(nil, errorvalues.ErrItemNotFound)
		err := s.DeleteItem(ctx, itemID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrItemNotFound)
	})
}

func newPhotosService(t *testing.T) (*service.PhotosService, *mocks.MockPhotosRepositoryI, *mocks.MockLogsRepositoryI, *storageMock) {
	ctrl := gomock.NewController(t)
	photosRepo := mocks.NewMockPhotosRepositoryI(ctrl)
	logsRepo := mocks.NewMockLogsRepositoryI(ctrl)
	store := &storageMock{}
	return service.NewPhotosService(photosRepo, logsRepo, store), photosRepo, logsRepo, store
}

func TestUploadPhoto(t *testing.T) {
	ctx := context.Background()
	photoID := uuid.New()
	weight := 86.0
	bodyFat := 21.0

	t.Run("annotates with the latest log", func(t *testing.T) {
		s, photosRepo, logsRepo, _ := newPhotosService(t)
		logsRepo.EXPECT().GetLatest(ctx, userID).Return(&entity.DailyLog{
			UserID:         userID,
			WeightKg:       &weight,
			BodyFatPercent: &bodyFat,
		}, nil)
		photosRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, photo *entity.ProgressPhoto) (uuid.UUID, error) {
			assert.Equal(t, &weight, photo.WeightAtTime)
			assert.Equal(t, &bodyFat, photo.BodyFatAtTime)
			return photoID, nil
		})
		created := &entity.ProgressPhoto{ID: photoID, UserID: userID, WeightAtTime: &weight}
		photosRepo.EXPECT().GetByID(ctx, photoID).Return(created, nil)
		photo, err := s.UploadPhoto(ctx, userID, jpegBytes)
		assert.NoError(t, err)
		assert.Equal(t, created, photo)
	})

	t.Run("no logs yet leaves the snapshot empty", func(t *testing.T) {
		s, photosRepo, logsRepo, _ := newPhotosService(t)
		logsRepo.EXPECT().GetLatest(ctx, userID).Return(nil, nil)
		photosRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, photo *entity.ProgressPhoto) (uuid.UUID, error) {
			assert.Nil(t, photo.WeightAtTime)
			assert.Nil(t, photo.BodyFatAtTime)
			return photoID, nil
		})
		photosRepo.EXPECT().GetByID(ctx, photoID).Return(&entity.ProgressPhoto{ID: photoID, UserID: userID}, nil)
		_, err := s.UploadPhoto(ctx, userID, pngBytes)
		assert.NoError(t, err)
	})

	t.Run("failed insert cleans up the stored file", func(t *testing.T) {
		s, photosRepo, logsRepo, store := newPhotosService(t)
		logsRepo.EXPECT().GetLatest(ctx, userID).Return(nil, nil)
		photosRepo.EXPECT().Create(ctx, gomock.Any()).Return(uuid.UUID{}, errors.New("db error"))
		_, err := s.UploadPhoto(ctx, userID, pngBytes)
		assert.Error(t, err)
		require.Equal(t, 1, len(store.saved))
		assert.Equal(t, store.saved, store.removed)
	})

	t.Run("not an image", func(t *testing.T) {
		s, _, _, store := newPhotosService(t)
		_, err := s.UploadPhoto(ctx, userID, textBytes)
		assert.ErrorIs(t, err, errorvalues.ErrUnsupportedFile)
		assert.Empty(t, store.saved)
	})
}

func TestDeletePhoto(t *testing.T) {
	ctx := context.Background()
	photoID := uuid.New()
	t.Run("success", func(t *testing.T) {
		s, photosRepo, _, store := newPhotosService(t)
		photosRepo.EXPECT().GetByID(ctx, photoID).Return(&entity.ProgressPhoto{
			ID:       photoID,
			UserID:   userID,
			PhotoURL: "/uploads/progress-photos/p.jpg",
		}, nil)
		photosRepo.EXPECT().Delete(ctx, photoID).Return(nil)
		err := s.DeletePhoto(ctx, photoID, userID)
		assert.NoError(t, err)
		assert.Equal(t, []string{"/uploads/progress-photos/p.jpg"}, store.removed)
	})
	t.Run("wrong owner", func(t *testing.T) {
		s, photosRepo, _, _ := newPhotosService(t)
		photosRepo.EXPECT().GetByID(ctx, photoID).Return(&entity.ProgressPhoto{ID: photoID, UserID: uuid.New()}, nil)
		err := s.DeletePhoto(ctx, photoID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("photo not found", func(t *testing.T) {
		s, photosRepo, _, _ := newPhotosService(t)
		photosRepo.EXPECT().GetByID(ctx, photoID).Return(nil, errorvalues.ErrPhotoNotFound)
		err := s.DeletePhoto(ctx, photoID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrPhotoNotFound)
	})
}
