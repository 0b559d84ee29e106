package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lighter/internal/error_values"
	"github.com/limbo/lighter/internal/service"
	"github.com/limbo/lighter/pkg/httputil"
)

// one byte over the service-side cap so oversize uploads are detected, not
// silently truncated
const uploadReadLimit = 10<<20 + 1

type BoardItemRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"desc,omitempty"`
	Theme       string `json:"theme,omitempty"`
	ItemOrder   int    `json:"item_order"`
}

func (s *Server) GetBoard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get board error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	items, err := s.boardService.GetBoard(ctx, uid)
	if err != nil {
		logger.Error("getting board error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting vision board", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"items": items})
	logger.Info("vision board provided")
}

func (s *Server) CreateBoardItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req BoardItemRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create item error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	item, err := s.boardService.CreateItem(ctx, uid, &service.VisionBoardItemRequest{
		Title:       req.Title,
		Description: req.Description,
		Theme:       req.Theme,
		ItemOrder:   req.ItemOrder,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("create item error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("create item error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't create item", err)
			return
		}
		logger.Error("create item error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating item", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, item)
	logger.Info("vision board item created")
}

func (s *Server) UpdateBoardItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update item error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id in path value", nil)
		return
	}
	var req BoardItemRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update item error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	item, err := s.boardService.UpdateItem(ctx, id, uid, &service.VisionBoardItemRequest{
		Title:       req.Title,
		Description: req.Description,
		Theme:       req.Theme,
		ItemOrder:   req.ItemOrder,
	})
	if err != nil {
		s.writeBoardError(w, logger, err, "update item")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, item)
	logger.Info("vision board item updated")
}

func (s *Server) AttachBoardImage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("attach image error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("attach image error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id in path value", nil)
		return
	}
	data, err := readUpload(r, "image")
	if err != nil {
		logger.Error("attach image error: reading upload failed")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't read image from form field 'image'", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	item, err := s.boardService.AttachImage(ctx, id, uid, data)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrFileTooLarge):
			logger.Error("attach image error: file too large")
			httputil.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrUnsupportedFile):
			logger.Error("attach image error: unsupported file")
			httputil.WriteErrorResponse(w, http.StatusUnsupportedMediaType, err.Error(), nil)
		default:
			s.writeBoardError(w, logger, err, "attach image")
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, item)
	logger.Info("vision board image attached")
}

func (s *Server) DeleteBoardItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("delete item error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.boardService.DeleteItem(ctx, id, uid)
	if err != nil {
		s.writeBoardError(w, logger, err, "delete item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("vision board item deleted")
}

func (s *Server) GetPhotos(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get photos error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	photos, err := s.photosService.GetPhotos(ctx, uid)
	if err != nil {
		logger.Error("getting photos error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting photos", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"photos": photos})
	logger.Info("photos provided")
}

func (s *Server) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("upload photo error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	data, err := readUpload(r, "photo")
	if err != nil {
		logger.Error("upload photo error: reading upload failed")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't read image from form field 'photo'", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	photo, err := s.photosService.UploadPhoto(ctx, uid, data)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrFileTooLarge):
			logger.Error("upload photo error: file too large")
			httputil.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrUnsupportedFile):
			logger.Error("upload photo error: unsupported file")
			httputil.WriteErrorResponse(w, http.StatusUnsupportedMediaType, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("upload photo error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("upload photo error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while uploading photo", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, photo)
	logger.Info("progress photo uploaded")
}

func (s *Server) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("delete photo error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("delete photo error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid photo id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.photosService.DeletePhoto(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPhotoNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("delete photo error: unexist or foreign photo")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "photo doesn't exist", nil)
		default:
			logger.Error("delete photo error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting photo", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("progress photo deleted")
}

func (s *Server) writeBoardError(w http.ResponseWriter, logger *slog.Logger, err error, op string) {
	switch {
	case errors.Is(err, errorvalues.ErrItemNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: unexist or foreign item")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "vision board item doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op + " error: invalid fields")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func readUpload(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(io.LimitReader(file, uploadReadLimit))
}
