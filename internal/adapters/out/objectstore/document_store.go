// Package objectstore implements the document store port on top of an
// S3-compatible object store. Courier document images are uploaded here at
// registration and streamed back through the image proxy endpoint.
package objectstore

import (
	"context"
	"fmt"
	"io"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds the connection settings for the object store.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioDocumentStore implements ports.DocumentStore against a single bucket.
type MinioDocumentStore struct {
	client *minio.Client
	bucket string
}

// NewMinioDocumentStore connects to the object store and ensures the bucket
// exists. Bucket creation races with other replicas are tolerated.
func NewMinioDocumentStore(ctx context.Context, cfg Config) (*MinioDocumentStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to object store: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			exists, existsErr := client.BucketExists(ctx, cfg.Bucket)
			if existsErr != nil || !exists {
				return nil, fmt.Errorf("creating bucket %q: %w", cfg.Bucket, err)
			}
		}
	}

	return &MinioDocumentStore{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// Put uploads a document under key.
func (s *MinioDocumentStore) Put(
	ctx context.Context,
	key string,
	body io.Reader,
	size int64,
	contentType string,
) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("uploading %q: %w", key, err)
	}
	return nil
}

// Get streams a stored document. The caller owns the body and must close it.
func (s *MinioDocumentStore) Get(ctx context.Context, key string) (*ports.StoredDocument, error) {
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", key, err)
	}

	// GetObject is lazy; Stat performs the request and surfaces a missing key.
	stat, err := object.Stat()
	if err != nil {
		_ = object.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, errs.NewObjectNotFoundErrorWithCause("document", key, err)
		}
		return nil, fmt.Errorf("reading %q: %w", key, err)
	}

	return &ports.StoredDocument{
		Body:        object,
		ContentType: stat.ContentType,
		Size:        stat.Size,
	}, nil
}

// Remove deletes a stored document. Removing an absent key is not an error.
func (s *MinioDocumentStore) Remove(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}
