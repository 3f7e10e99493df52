package interfaces

import (
	"context"
	"io"
)

// IPhotoStore abstracts the file-reference store for complaint photos. The
// record store only ever persists the returned reference strings, never bytes.
type IPhotoStore interface {
	// Save stores the upload and returns an opaque path-like reference.
	Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
}
