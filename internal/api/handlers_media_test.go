package api_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/lighter/internal/api"
	errorvalues "github.com/limbo/lighter/internal/error_values"
	"github.com/limbo/lighter/internal/service"
	"github.com/limbo/lighter/internal/service/mocks"
	"github.com/limbo/lighter/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartUpload builds a request body with one file under the given field.
func multipartUpload(t *testing.T, field string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, "upload.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestCreateBoardItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockVisionBoardServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		BoardService: bService,
	}, "")
	body, err := sonic.ConfigDefault.Marshal(api.BoardItemRequest{
		Title: "fit into old jeans",
		Theme: "clothes",
	})
	require.NoError(t, err)

	t.Run("item created", func(t *testing.T) {
		bService.EXPECT().CreateItem(gomock.Any(), userID, &service.VisionBoardItemRequest{
			Title: "fit into old jeans",
			Theme: "clothes",
		}).Return(&entity.VisionBoardItem{ID: uuid.New(), UserID: userID, Title: "fit into old jeans"}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/vision-board", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.CreateBoardItem(rr, r)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("unexist user", func(t *testing.T) {
		bService.EXPECT().CreateItem(gomock.Any(), userID, gomock.Any()).
			Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/vision-board", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.CreateBoardItem(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/vision-board", bytes.NewReader([]byte("corrupted")))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.CreateBoardItem(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("field validation failed", func(t *testing.T) {
		bService.EXPECT().CreateItem(gomock.Any(), userID, gomock.Any()).
			Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("Title too long")))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/vision-board", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.CreateBoardItem(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("repository failure hides details", func(t *testing.T) {
		bService.EXPECT().CreateItem(gomock.Any(), userID, gomock.Any()).
			Return(nil, errors.New("vision board repository error: connection refused"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/vision-board", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.CreateBoardItem(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}

func TestAttachBoardImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockVisionBoardServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		BoardService: bService,
	}, "")
	itemID := uuid.New()
	pngData := []byte("\x89PNG\r\n\x1a\n.................")

	t.Run("image attached", func(t *testing.T) {
		bService.EXPECT().AttachImage(gomock.Any(), itemID, userID, pngData).
			Return(&entity.VisionBoardItem{ID: itemID, UserID: userID, ImageURL: "/uploads/vision-board/x.png"}, nil)
		body, contentType := multipartUpload(t, "image", pngData)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/vision-board/"+itemID.String()+"/image", body)
		r.Header.Set("Content-Type", contentType)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", itemID.String())
		serv.AttachBoardImage(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("unsupported file", func(t *testing.T) {
		notAnImage := []byte("plain text")
		bService.EXPECT().AttachImage(gomock.Any(), itemID, userID, notAnImage).
			Return(nil, errorvalues.ErrUnsupportedFile)
		body, contentType := multipartUpload(t, "image", notAnImage)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/vision-board/"+itemID.String()+"/image", body)
		r.Header.Set("Content-Type", contentType)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", itemID.String())
		serv.AttachBoardImage(rr, r)
		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Result().StatusCode)
	})
	t.Run("wrong form field", func(t *testing.T) {
		body, contentType := multipartUpload(t, "file", pngData)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/vision-board/"+itemID.String()+"/image", body)
		r.Header.Set("Content-Type", contentType)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", itemID.String())
		serv.AttachBoardImage(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("unexist item", func(t *testing.T) {
		bService.EXPECT().AttachImage(gomock.Any(), itemID, userID, pngData).
			Return(nil, errorvalues.ErrItemNotFound)
		body, contentType := multipartUpload(t, "image", pngData)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/vision-board/"+itemID.String()+"/image", body)
		r.Header.Set("Content-Type", contentType)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", itemID.String())
		serv.AttachBoardImage(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestDeleteBoardItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockVisionBoardServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		BoardService: bService,
	}, "")
	itemID := uuid.New()
	t.Run("item deleted", func(t *testing.T) {
		bService.EXPECT().DeleteItem(gomock.Any(), itemID, userID).Return(nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/vision-board/"+itemID.String(), nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", itemID.String())
		serv.DeleteBoardItem(rr, r)
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("foreign item", func(t *testing.T) {
		bService.EXPECT().DeleteItem(gomock.Any(), itemID, userID).Return(errorvalues.ErrWrongOwner)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/vision-board/"+itemID.String(), nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", itemID.String())
		serv.DeleteBoardItem(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestUploadPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	pService := mocks.NewMockPhotosServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		PhotosService: pService,
	}, "")
	jpegData := []byte("\xff\xd8\xff\xe0.................")

	t.Run("photo uploaded", func(t *testing.T) {
		weight := 86.0
		pService.EXPECT().UploadPhoto(gomock.Any(), userID, jpegData).
			Return(&entity.ProgressPhoto{
				ID:           uuid.New(),
				UserID:       userID,
				PhotoURL:     "/uploads/progress-photos/p.jpg",
				WeightAtTime: &weight,
			}, nil)
		body, contentType := multipartUpload(t, "photo", jpegData)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/photos", body)
		r.Header.Set("Content-Type", contentType)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.UploadPhoto(rr, r)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("file too large", func(t *testing.T) {
		pService.EXPECT().UploadPhoto(gomock.Any(), userID, jpegData).
			Return(nil, errorvalues.ErrFileTooLarge)
		body, contentType := multipartUpload(t, "photo", jpegData)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/photos", body)
		r.Header.Set("Content-Type", contentType)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.UploadPhoto(rr, r)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Result().StatusCode)
	})
	t.Run("no file in form", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/photos", bytes.NewReader([]byte("not a form")))
		r.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		serv.UploadPhoto(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestGetPhotos(t *testing.T) {
	ctrl := gomock.NewController(t)
	pService := mocks.NewMockPhotosServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		PhotosService: pService,
	}, "")
	pService.EXPECT().GetPhotos(gomock.Any(), userID).Return([]entity.ProgressPhoto{
		{ID: uuid.New(), UserID: userID, PhotoURL: "/uploads/progress-photos/p.jpg"},
	}, nil)
	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/photos", nil)
	r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
	serv.GetPhotos(rr, r)
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
}

func TestDeletePhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	pService := mocks.NewMockPhotosServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		PhotosService: pService,
	}, "")
	photoID := uuid.New()
	t.Run("photo deleted", func(t *testing.T) {
		pService.EXPECT().DeletePhoto(gomock.Any(), photoID, userID).Return(nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/photos/"+photoID.String(), nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", photoID.String())
		serv.DeletePhoto(rr, r)
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("unexist photo", func(t *testing.T) {
		pService.EXPECT().DeletePhoto(gomock.Any(), photoID, userID).Return(errorvalues.ErrPhotoNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/photos/"+photoID.String(), nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
		r.SetPathValue("id", photoID.String())
		serv.DeletePhoto(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}
