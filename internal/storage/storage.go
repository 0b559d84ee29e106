// Package storage keeps uploaded images on local disk and hands out the
// public URLs they are served under.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const urlPrefix = "/uploads/"

type StorageI interface {
	// Persists file content and returns its public URL
	Save(bucket string, uid uuid.UUID, ext string, data []byte) (string, error)
	// Removes the file behind a public URL previously returned by Save
	Remove(publicURL string) error
}

type FSStorage struct {
	root string
}

func NewFSStorage(root string) (*FSStorage, error) {
	if root == "" {
		return nil, errors.New("storage root is empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.New("creating storage root error: " + err.Error())
	}
	return &FSStorage{root: root}, nil
}

// Root exposes the directory files live in, for static serving.
func (fs *FSStorage) Root() string {
	return fs.root
}

func (fs *FSStorage) Save(bucket string, uid uuid.UUID, ext string, data []byte) (string, error) {
	if bucket == "" || strings.ContainsAny(bucket, "/\\.") {
		return "", errors.New("invalid bucket name")
	}
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	dir := filepath.Join(fs.root, bucket, uid.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.New("creating upload dir error: " + err.Error())
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", errors.New("writing upload error: " + err.Error())
	}
	return urlPrefix + path.Join(bucket, uid.String(), name), nil
}

func (fs *FSStorage) Remove(publicURL string) error {
	rel, ok := strings.CutPrefix(publicURL, urlPrefix)
	if !ok || rel == "" {
		return errors.New("url doesn't belong to storage: " + publicURL)
	}
	rel = filepath.Clean(filepath.FromSlash(rel))
	if strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return errors.New("url escapes storage root: " + publicURL)
	}
	if err := os.Remove(filepath.Join(fs.root, rel)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.New("removing upload error: " + err.Error())
	}
	return nil
}
