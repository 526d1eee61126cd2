package infra

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/contractify/contractify-backend/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioClient stores rendered contract documents. All objects live in one
// service-owned bucket under per-contract keys.
type MinioClient struct {
	Client         *minio.Client
	DocumentBucket string
	Endpoint       string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: false,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	return &MinioClient{
		Client:         client,
		DocumentBucket: cfg.Minio.DocumentBucket,
		Endpoint:       endpoint,
	}
}

// EnsureDocumentBucket creates the document bucket if it does not exist.
// Called once by the consumer before processing PDF jobs.
func (m *MinioClient) EnsureDocumentBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.DocumentBucket)
	if err != nil {
		return fmt.Errorf("failed to check document bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.Client.MakeBucket(ctx, m.DocumentBucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create document bucket: %w", err)
	}
	return nil
}

// PutDocument uploads rendered PDF bytes under the given object key.
func (m *MinioClient) PutDocument(ctx context.Context, objectKey string, data []byte) error {
	_, err := m.Client.PutObject(ctx, m.DocumentBucket, objectKey,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	if err != nil {
		return fmt.Errorf("failed to upload document %s: %w", objectKey, err)
	}
	return nil
}

// GetDocument streams a stored document. The caller must close the reader.
func (m *MinioClient) GetDocument(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	obj, err := m.Client.GetObject(ctx, m.DocumentBucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %s: %w", objectKey, err)
	}
	return obj, nil
}
