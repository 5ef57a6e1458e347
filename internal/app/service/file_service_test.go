package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"lumina_site/internal/common/security"
	"lumina_site/internal/platform/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileService(t *testing.T) (*FileService, *security.UploadTokenSigner) {
	t.Helper()
	signer := security.NewUploadTokenSigner([]byte("test-secret"), time.Minute)
	store := storage.NewMemoryStore(signer, "http://localhost:3000")
	return NewFileService(store, "uploads"), signer
}

func TestFileServiceListSeededFiles(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileService(t)

	files, err := svc.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, files, 3)

	files, err = svc.List(ctx, "uploads/", 0)
	require.NoError(t, err)
	assert.Len(t, files, 3)

	files, err = svc.List(ctx, "other/", 0)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFileServiceUpload(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileService(t)

	uploaded, err := svc.Upload(ctx, "report.pdf", []byte("pdf-bytes"), "application/pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uploaded.Key, "uploads/report_"))
	assert.True(t, strings.HasSuffix(uploaded.Key, ".pdf"))
	assert.Equal(t, int64(9), uploaded.Size)

	info, err := svc.Info(ctx, uploaded.Key)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", info.ContentType)
}

func TestFileServiceUploadKeysAreUnique(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileService(t)

	first, err := svc.Upload(ctx, "a.txt", []byte("1"), "text/plain")
	require.NoError(t, err)
	second, err := svc.Upload(ctx, "a.txt", []byte("2"), "text/plain")
	require.NoError(t, err)
	assert.NotEqual(t, first.Key, second.Key)
}

func TestFileServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileService(t)

	deleted, err := svc.Delete(ctx, "uploads/document.pdf")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, "uploads/document.pdf")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFileServiceRename(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileService(t)

	renamed, err := svc.Rename(ctx, "uploads/document.pdf", "archive/document.pdf")
	require.NoError(t, err)
	assert.True(t, renamed)

	file, err := svc.InfoExists(ctx, "archive/document.pdf")
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, "document.pdf", file.Name)

	gone, err := svc.InfoExists(ctx, "uploads/document.pdf")
	require.NoError(t, err)
	assert.Nil(t, gone)

	renamed, err = svc.Rename(ctx, "uploads/missing.txt", "x")
	require.NoError(t, err)
	assert.False(t, renamed)
}

func TestFileServicePresignUpload(t *testing.T) {
	ctx := context.Background()
	svc, signer := newFileService(t)

	result, err := svc.PresignUpload(ctx, "photo.png", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Key, "uploads/photo_"))
	require.Contains(t, result.UploadURL, "/api/admin/presigned-upload?token=")

	// The embedded token authorizes exactly the key the URL was issued for.
	token := result.UploadURL[strings.Index(result.UploadURL, "token=")+len("token="):]
	key, contentType, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, result.Key, key)
	assert.Equal(t, "image/png", contentType)
}

func TestFileServiceStats(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFileService(t)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalFiles)
	assert.Equal(t, 1, stats.ImageCount)
	assert.Equal(t, 1, stats.DocumentCount)
	assert.Equal(t, "7.49 MB", stats.StorageUsed)
}
