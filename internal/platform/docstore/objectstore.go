// Package docstore treats whole JSON objects in a blob bucket as database
// collections: lazily initialized, fully read into memory, mutated and fully
// rewritten.
package docstore

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by ObjectStore implementations when the
// requested key does not exist in the bucket.
var ErrObjectNotFound = errors.New("object not found")

// ObjectAttrs carries the object metadata needed to stream an asset back to
// a client.
type ObjectAttrs struct {
	ContentType string
	Size        int64
}

// ObjectStore abstracts the blob service backing the document collections.
// Following Go convention: the interface is defined by the consumer
// (docstore), not the provider (platform/gcs).
type ObjectStore interface {
	// Exists reports whether an object is present under key.
	Exists(ctx context.Context, key string) (bool, error)

	// Get returns the full object contents.
	// It returns ErrObjectNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put overwrites the object under key with data.
	Put(ctx context.Context, key string, data []byte) error

	// Attrs returns the metadata of the object under key.
	// It returns ErrObjectNotFound if the key is absent.
	Attrs(ctx context.Context, key string) (ObjectAttrs, error)

	// NewReader opens a streaming reader over the object under key.
	// It returns ErrObjectNotFound if the key is absent.
	NewReader(ctx context.Context, key string) (io.ReadCloser, error)
}
