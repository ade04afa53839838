// Package storage persists uploaded product images and resolves their
// public URLs.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/spec-kit/storefront-service/internal/config"
)

// ImageStore saves an uploaded image and returns the public path it will be
// served from.
type ImageStore interface {
	Save(filename string, content io.Reader) (string, error)
}

type diskImageStore struct {
	dir          string
	publicPrefix string
}

// NewDiskImageStore writes images under the configured directory, which the
// HTTP layer serves statically.
func NewDiskImageStore(cfg config.UploadConfig) (ImageStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &diskImageStore{dir: cfg.Dir, publicPrefix: cfg.PublicPrefix}, nil
}

// Save writes the image with a unique name so repeated uploads of the same
// filename never clobber each other.
func (s *diskImageStore) Save(filename string, content io.Reader) (string, error) {
	base := filepath.Base(filename)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", errors.New("empty image filename")
	}

	name := uuid.NewString() + "-" + base
	target := filepath.Join(s.dir, name)

	file, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("close image file: %w", err)
	}

	return path.Join(s.publicPrefix, name), nil
}
