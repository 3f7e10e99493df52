package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"urb_denuncias/internal/usecase/interfaces"
)

// LocalPhotoStore keeps uploaded photos in a directory on disk and hands back
// relative path references. Suited to single-host deployments where the
// uploads directory sits next to the application.
type LocalPhotoStore struct {
	dir string
}

var _ interfaces.IPhotoStore = (*LocalPhotoStore)(nil)

func NewLocalPhotoStore(dir string) (*LocalPhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalPhotoStore{dir: dir}, nil
}

func (s *LocalPhotoStore) Save(_ context.Context, filename, _ string, _ int64, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, photoObjectName(filename))

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("write photo file: %w", err)
	}
	return path, nil
}

// photoObjectName builds a collision-free name: timestamp, a random suffix and
// the sanitized original filename for traceability.
func photoObjectName(filename string) string {
	safe := strings.ReplaceAll(filepath.Base(filename), " ", "_")
	stamp := time.Now().Format("20060102150405")
	return fmt.Sprintf("%s_%s_%s", stamp, uuid.NewString()[:8], safe)
}
