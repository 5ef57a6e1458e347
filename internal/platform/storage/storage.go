package storage

import (
	"context"
	"fmt"
	"math"
	"path"
	"strings"
	"time"

	"lumina_site/internal/domain/model"

	"github.com/google/uuid"
)

// Store is the blob-store boundary behind the admin file manager. Keys are
// opaque slash-separated strings; the store has no notion of directories
// beyond prefix filtering.
type Store interface {
	List(ctx context.Context, prefix string, limit int) ([]model.File, error)
	Upload(ctx context.Context, key string, body []byte, contentType string) (*model.File, error)
	Delete(ctx context.Context, key string) (bool, error)
	Rename(ctx context.Context, oldKey, newKey string) (bool, error)
	Info(ctx context.Context, key string) (*model.File, error)
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
}

const DefaultListLimit = 100

// FormatFileSize renders a byte count the way the file manager shows it.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	sizes := []string{"Bytes", "KB", "MB", "GB", "TB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(i))
	return fmt.Sprintf("%s %s", trimZeros(value), sizes[i])
}

func trimZeros(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// IsAllowedFileType reports whether the filename's extension is in the
// allow-list. An empty allow-list admits everything.
func IsAllowedFileType(filename string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// UniqueKey derives a collision-free storage key from an uploaded filename,
// keeping the original name recognizable.
func UniqueKey(originalName, prefix string) string {
	ext := path.Ext(originalName)
	base := strings.TrimSuffix(path.Base(originalName), ext)
	unique := fmt.Sprintf("%s_%d_%s%s", base, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	if prefix == "" {
		return unique
	}
	return prefix + "/" + unique
}

// BaseName is the display name for a key.
func BaseName(key string) string {
	return path.Base(key)
}
