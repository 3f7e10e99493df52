package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"urb_denuncias/internal/usecase/interfaces"
)

// MinioPhotoStore keeps uploaded photos in a MinIO/S3-compatible bucket. The
// stored reference is "bucket/key"; serving the bytes back (presigned URLs or
// proxying) belongs to the presentation layer.
type MinioPhotoStore struct {
	client *minio.Client
	bucket string
}

var _ interfaces.IPhotoStore = (*MinioPhotoStore)(nil)

// NewMinioPhotoStore connects to MinIO and ensures the bucket exists.
func NewMinioPhotoStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioPhotoStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &MinioPhotoStore{client: client, bucket: bucket}, nil
}

func (s *MinioPhotoStore) Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	key := photoObjectName(filename)
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put photo object: %w", err)
	}
	return s.bucket + "/" + key, nil
}
