// Package storage provides the MinIO-backed media store for avatars,
// reels and thumbnails.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Environment variable names for the MinIO connection.
const (
	EnvKeyEndpoint  = "MINIO_ENDPOINT"
	EnvKeyAccessKey = "MINIO_ACCESS_KEY"
	EnvKeySecretKey = "MINIO_SECRET_KEY"
	EnvKeyBucket    = "MINIO_BUCKET"
	EnvKeyUseSSL    = "MINIO_USE_SSL"
)

// MinioStorage uploads media objects to a single bucket and hands out
// their public URLs.
type MinioStorage struct {
	client *minio.Client
	bucket string
	base   string
}

// NewMinioStorage connects to MinIO using the MINIO_* environment
// variables and ensures the bucket exists.
func NewMinioStorage(ctx context.Context) (*MinioStorage, error) {
	endpoint := os.Getenv(EnvKeyEndpoint)
	if endpoint == "" {
		endpoint = "localhost:9000"
	}
	bucket := os.Getenv(EnvKeyBucket)
	if bucket == "" {
		bucket = "quickflicks"
	}
	useSSL := os.Getenv(EnvKeyUseSSL) == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv(EnvKeyAccessKey), os.Getenv(EnvKeySecretKey), ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		slog.Info("created media bucket", "bucket", bucket)
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	slog.Info("connected to minio", "endpoint", endpoint, "bucket", bucket)
	return &MinioStorage{
		client: client,
		bucket: bucket,
		base:   fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket),
	}, nil
}

// Upload stores the object under key and returns its public URL.
func (s *MinioStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}
	return s.base + "/" + key, nil
}
