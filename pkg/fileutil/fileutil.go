// Package fileutil provides filesystem checks used when validating and
// uploading attachment files.
package fileutil

import (
	"fmt"
	"os"

	"github.com/jiraops/jira-issue-action/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// IsReadable checks read permission by actually opening the file, which is
// the only portable test.
func IsReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// CheckAttachmentFile verifies that path names an existing, regular,
// readable file no larger than maxSize bytes. It returns a descriptive
// error naming the first failed check.
func CheckAttachmentFile(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("attachment file not found: %s", path)
		}
		return fmt.Errorf("cannot access file %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %q is not a regular file", path)
	}
	if !IsReadable(path) {
		return fmt.Errorf("file %q is not readable", path)
	}
	if info.Size() > maxSize {
		log.Printf("Attachment %s rejected: %d bytes exceeds limit %d", path, info.Size(), maxSize)
		return fmt.Errorf("file %q is too large (%d bytes, max %d)", path, info.Size(), maxSize)
	}
	return nil
}
