package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"lumina_site/internal/common"
	"lumina_site/internal/domain/model"
	"lumina_site/internal/platform/storage"
)

var imageExtensions = []string{"jpg", "jpeg", "png", "gif", "webp", "svg"}
var documentExtensions = []string{"pdf", "doc", "docx", "txt", "rtf"}

// FileService wraps the blob store with the operations the admin file
// manager exposes. Access control lives in the router; everything here
// assumes the caller is already an admin.
type FileService struct {
	store        storage.Store
	uploadPrefix string
}

func NewFileService(store storage.Store, uploadPrefix string) *FileService {
	return &FileService{store: store, uploadPrefix: uploadPrefix}
}

func (s *FileService) List(ctx context.Context, prefix string, limit int) ([]model.File, error) {
	return s.store.List(ctx, prefix, limit)
}

// Upload stores the payload under a fresh unique key derived from the
// original filename.
func (s *FileService) Upload(ctx context.Context, filename string, body []byte, contentType string) (*model.File, error) {
	if filename == "" {
		return nil, common.ErrBadRequest
	}
	key := storage.UniqueKey(filename, s.uploadPrefix)
	return s.store.Upload(ctx, key, body, contentType)
}

// UploadTo writes to an exact key; used by the presigned-upload endpoint
// where the key was fixed when the URL was issued.
func (s *FileService) UploadTo(ctx context.Context, key string, body []byte, contentType string) (*model.File, error) {
	if key == "" {
		return nil, common.ErrBadRequest
	}
	return s.store.Upload(ctx, key, body, contentType)
}

func (s *FileService) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, common.ErrBadRequest
	}
	return s.store.Delete(ctx, key)
}

func (s *FileService) Rename(ctx context.Context, oldKey, newKey string) (bool, error) {
	if oldKey == "" || newKey == "" {
		return false, common.ErrBadRequest
	}
	return s.store.Rename(ctx, oldKey, newKey)
}

func (s *FileService) Info(ctx context.Context, key string) (*model.File, error) {
	if key == "" {
		return nil, common.ErrBadRequest
	}
	return s.store.Info(ctx, key)
}

type PresignResult struct {
	Key       string `json:"key"`
	UploadURL string `json:"uploadUrl"`
}

func (s *FileService) PresignUpload(ctx context.Context, filename, contentType string) (*PresignResult, error) {
	if filename == "" {
		return nil, common.ErrBadRequest
	}
	key := storage.UniqueKey(filename, s.uploadPrefix)
	url, err := s.store.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}
	return &PresignResult{Key: key, UploadURL: url}, nil
}

// Stats aggregates the dashboard counters over a full listing.
func (s *FileService) Stats(ctx context.Context) (*model.StorageStats, error) {
	files, err := s.store.List(ctx, "", storage.DefaultListLimit)
	if err != nil {
		return nil, err
	}

	stats := &model.StorageStats{TotalFiles: len(files)}
	var totalSize int64
	for _, f := range files {
		totalSize += f.Size
		ext := strings.ToLower(strings.TrimPrefix(path.Ext(f.Name), "."))
		if contains(imageExtensions, ext) {
			stats.ImageCount++
		}
		if contains(documentExtensions, ext) {
			stats.DocumentCount++
		}
	}
	stats.StorageUsed = storage.FormatFileSize(totalSize)
	return stats, nil
}

// InfoExists is Info with not-found flattened to nil, matching the JSON
// shape the file manager expects.
func (s *FileService) InfoExists(ctx context.Context, key string) (*model.File, error) {
	file, err := s.Info(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return file, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
