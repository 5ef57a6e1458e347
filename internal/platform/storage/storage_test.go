package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "0 Bytes", FormatFileSize(0))
	assert.Equal(t, "512 Bytes", FormatFileSize(512))
	assert.Equal(t, "1 KB", FormatFileSize(1024))
	assert.Equal(t, "1.5 KB", FormatFileSize(1536))
	assert.Equal(t, "2 MB", FormatFileSize(2*1024*1024))
	assert.Equal(t, "3 GB", FormatFileSize(3*1024*1024*1024))
}

func TestIsAllowedFileType(t *testing.T) {
	assert.True(t, IsAllowedFileType("photo.JPG", []string{"jpg", "png"}))
	assert.True(t, IsAllowedFileType("anything.bin", nil))
	assert.False(t, IsAllowedFileType("script.exe", []string{"jpg", "png"}))
	assert.False(t, IsAllowedFileType("noextension", []string{"jpg"}))
}

func TestUniqueKey(t *testing.T) {
	key := UniqueKey("My Report.pdf", "uploads")
	assert.True(t, strings.HasPrefix(key, "uploads/My Report_"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	bare := UniqueKey("a.txt", "")
	assert.False(t, strings.Contains(bare, "/"))

	assert.NotEqual(t, UniqueKey("a.txt", "p"), UniqueKey("a.txt", "p"))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "doc.pdf", BaseName("uploads/doc.pdf"))
	assert.Equal(t, "doc.pdf", BaseName("doc.pdf"))
}
