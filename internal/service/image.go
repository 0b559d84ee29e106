package service

import (
	"net/http"

	errorvalues "github.com/limbo/lighter/internal/error_values"
)

const maxUploadBytes = 10 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// detectImageExt sniffs the upload's real content type and maps it to a file
// extension. The client-supplied filename and Content-Type header are ignored.
func detectImageExt(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errorvalues.ErrUnsupportedFile
	}
	if len(data) > maxUploadBytes {
		return "", errorvalues.ErrFileTooLarge
	}
	ext, ok := imageExtensions[http.DetectContentType(data)]
	if !ok {
		return "", errorvalues.ErrUnsupportedFile
	}
	return ext, nil
}
