package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxFileSize = 10 * 1024 * 1024 // 10 MB
	URLPrefix   = "/uploads"
)

// Sink stores at most one image per report submission on local disk and
// makes it retrievable under the /uploads/ prefix.
type Sink struct {
	baseDir string
}

func NewSink(baseDir string) *Sink {
	return &Sink{baseDir: baseDir}
}

// Dir returns the storage directory, for mounting as a static route.
func (s *Sink) Dir() string { return s.baseDir }

// Accept writes the given file to the storage directory and returns its
// public relative path ("/uploads/<name>"). A nil header is a no-op and
// returns the empty string. A partial write is removed before the error
// is returned, so a non-empty result always names a readable file.
func (s *Sink) Accept(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	// Millisecond timestamp keeps files sortable on disk; the uuid suffix
	// breaks ties between uploads landing in the same clock tick.
	name := fmt.Sprintf("%d_%s%s",
		time.Now().UnixMilli(),
		uuid.New().String()[:8],
		sanitizeExt(fileHeader.Filename),
	)

	absPath := filepath.Join(s.baseDir, name)
	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return URLPrefix + "/" + name, nil
}

// Remove deletes a previously accepted file, given the relative path that
// Accept returned. Best-effort: used to clean up when the report row fails
// to persist after the file was written.
func (s *Sink) Remove(relPath string) {
	if !strings.HasPrefix(relPath, URLPrefix+"/") {
		return
	}
	name := filepath.Base(strings.TrimPrefix(relPath, URLPrefix+"/"))
	if name == "" || name == "." {
		return
	}
	_ = os.Remove(filepath.Join(s.baseDir, name))
}

func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" || ext == "." {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
