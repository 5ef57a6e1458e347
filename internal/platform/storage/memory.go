package storage

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"lumina_site/internal/common"
	"lumina_site/internal/common/security"
	"lumina_site/internal/domain/model"
)

type memoryObject struct {
	file model.File
	body []byte
}

// MemoryStore is the development backend used when no R2/S3 credentials
// are configured. Presigned uploads point back at the local upload
// endpoint with a signed, short-lived token.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]*memoryObject
	signer  *security.UploadTokenSigner
	baseURL string
}

func NewMemoryStore(signer *security.UploadTokenSigner, baseURL string) *MemoryStore {
	s := &MemoryStore{
		objects: make(map[string]*memoryObject),
		signer:  signer,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
	s.seed()
	return s
}

func (s *MemoryStore) seed() {
	samples := []struct {
		key, contentType string
		size             int64
		modified         string
	}{
		{"uploads/sample-image.jpg", "image/jpeg", 500 * 1024, "2024-01-15"},
		{"uploads/document.pdf", "application/pdf", 2 * 1024 * 1024, "2024-01-10"},
		{"uploads/presentation.pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation", 5 * 1024 * 1024, "2024-01-08"},
	}
	for _, sample := range samples {
		modified, _ := time.Parse("2006-01-02", sample.modified)
		s.objects[sample.key] = &memoryObject{
			file: model.File{
				Key:          sample.key,
				Name:         BaseName(sample.key),
				Size:         sample.size,
				LastModified: modified,
				ContentType:  sample.contentType,
				URL:          s.publicURL(sample.key),
			},
			body: make([]byte, 0),
		}
	}
}

func (s *MemoryStore) publicURL(key string) string {
	return s.baseURL + "/files/" + key
}

func (s *MemoryStore) List(ctx context.Context, prefix string, limit int) ([]model.File, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	s.mu.RLock()
	files := make([]model.File, 0, len(s.objects))
	for key, obj := range s.objects {
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			continue
		}
		files = append(files, obj.file)
	}
	s.mu.RUnlock()

	sort.Slice(files, func(i, j int) bool { return files[i].Key < files[j].Key })
	if len(files) > limit {
		files = files[:limit]
	}
	return files, nil
}

func (s *MemoryStore) Upload(ctx context.Context, key string, body []byte, contentType string) (*model.File, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	file := model.File{
		Key:          key,
		Name:         BaseName(key),
		Size:         int64(len(body)),
		LastModified: time.Now(),
		ContentType:  contentType,
		URL:          s.publicURL(key),
	}
	s.mu.Lock()
	s.objects[key] = &memoryObject{file: file, body: body}
	s.mu.Unlock()
	return &file, nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	_, existed := s.objects[key]
	delete(s.objects, key)
	s.mu.Unlock()
	return existed, nil
}

func (s *MemoryStore) Rename(ctx context.Context, oldKey, newKey string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[oldKey]
	if !ok {
		return false, nil
	}
	renamed := *obj
	renamed.file.Key = newKey
	renamed.file.Name = BaseName(newKey)
	renamed.file.URL = s.publicURL(newKey)
	s.objects[newKey] = &renamed
	delete(s.objects, oldKey)
	return true, nil
}

func (s *MemoryStore) Info(ctx context.Context, key string) (*model.File, error) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return nil, common.ErrNotFound
	}
	file := obj.file
	return &file, nil
}

func (s *MemoryStore) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	token, err := s.signer.Sign(key, contentType)
	if err != nil {
		return "", fmt.Errorf("memoryStore.PresignUpload: %w", err)
	}
	return fmt.Sprintf("%s/api/admin/presigned-upload?token=%s", s.baseURL, url.QueryEscape(token)), nil
}
