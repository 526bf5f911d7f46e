package storage

import (
	"context"
	"io"
)

// ObjectStorage stores and retrieves uploaded files
type ObjectStorage interface {
	// Put stores an object under the given key and returns the key
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	// Get retrieves an object; the caller closes the reader
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes an object
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL for downloading an object
	PresignGet(ctx context.Context, key string) (string, error)
}
