package gateway

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/rag"
)

// BlobStore fetches raw asset bytes (CSVs, images, PDFs) from MinIO by
// storage locator.
type BlobStore struct {
	client *minio.Client
	bucket string
}

// NewBlobStore creates the MinIO adapter.
func NewBlobStore(endpoint, accessKey, secretKey, bucket string, secure bool) (*BlobStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &BlobStore{client: client, bucket: bucket}, nil
}

// EnsureBucket creates the bucket when missing.
func (s *BlobStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Get downloads an object. Absent locators map to rag.ErrBlobNotFound so
// the resolver can treat them uniformly.
func (s *BlobStore) Get(ctx context.Context, path string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, &rag.BlobFetchError{Path: path, Err: err}
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, &rag.BlobFetchError{Path: path, Err: rag.ErrBlobNotFound}
		}
		return nil, &rag.BlobFetchError{Path: path, Err: err}
	}
	return data, nil
}

// Healthy reports whether the bucket is reachable, for readiness checks.
func (s *BlobStore) Healthy(ctx context.Context) bool {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err == nil
}
