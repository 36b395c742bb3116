//go:build !integration

package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckAttachmentFile(t *testing.T) {
	t.Run("valid file passes", func(t *testing.T) {
		path := writeTempFile(t, "ok.txt", "content")
		assert.NoError(t, CheckAttachmentFile(path, 1024))
	})

	t.Run("missing file fails", func(t *testing.T) {
		err := CheckAttachmentFile(filepath.Join(t.TempDir(), "absent.txt"), 1024)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("directory fails", func(t *testing.T) {
		err := CheckAttachmentFile(t.TempDir(), 1024)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a regular file")
	})

	t.Run("oversized file fails", func(t *testing.T) {
		path := writeTempFile(t, "big.txt", "0123456789")
		err := CheckAttachmentFile(path, 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too large")
	})

	t.Run("file at exact limit passes", func(t *testing.T) {
		path := writeTempFile(t, "exact.txt", "12345")
		assert.NoError(t, CheckAttachmentFile(path, 5))
	})
}

func TestIsReadable(t *testing.T) {
	path := writeTempFile(t, "readable.txt", "data")
	assert.True(t, IsReadable(path))

	if os.Getuid() == 0 {
		t.Skip("permission checks are not meaningful as root")
	}

	locked := writeTempFile(t, "locked.txt", "data")
	require.NoError(t, os.Chmod(locked, 0o000))
	assert.False(t, IsReadable(locked))
}
