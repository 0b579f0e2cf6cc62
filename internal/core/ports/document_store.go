package ports

import (
	"context"
	"io"
)

// StoredDocument is a document image streamed back from the store.
// The caller owns Body and must close it.
type StoredDocument struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// DocumentStore is the external object store holding courier document
// images. Keys are generated at upload time and persisted on the user row.
type DocumentStore interface {
	// Put uploads a document under key. Uploads are independent; courier
	// registration runs the three of them concurrently.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error

	// Get streams a stored document. Returns errs.ErrObjectNotFound for an
	// unknown key.
	Get(ctx context.Context, key string) (*StoredDocument, error)

	// Remove deletes a stored document. Used to clean up after a failed
	// registration so no orphaned objects remain.
	Remove(ctx context.Context, key string) error
}
