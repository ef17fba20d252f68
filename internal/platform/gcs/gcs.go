// Package gcs implements the object store contract over Google Cloud Storage.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"cloud.google.com/go/storage"

	"store_backend/internal/platform/docstore"
)

// Store adapts one Cloud Storage bucket to the docstore.ObjectStore contract.
type Store struct {
	bucket *storage.BucketHandle
}

var _ docstore.ObjectStore = (*Store)(nil)

// NewClient creates the process-wide Cloud Storage client using application
// default credentials. Its lifecycle is owned by the process entry point.
func NewClient(ctx context.Context) (*storage.Client, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		slog.Error("Cloud Storage client creation failed", "error", err)
		return nil, err
	}
	return client, nil
}

// NewStore creates a Store over the named bucket of client.
func NewStore(client *storage.Client, bucket string) *Store {
	return &Store{bucket: client.Bucket(bucket)}
}

// Exists reports whether an object is present under key.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.bucket.Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", key, err)
	}
	return true, nil
}

// Get downloads the full object contents.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := s.bucket.Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, docstore.ErrObjectNotFound
		}
		return nil, fmt.Errorf("open %s: %w", key, err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			slog.Warn("failed to close object reader", "key", key, "error", cerr)
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", key, err)
	}
	return data, nil
}

// Put overwrites the object under key with data.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	w := s.bucket.Object(key).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("upload %s: %w", key, err)
	}
	// The upload is committed on Close; a failed Close means nothing was
	// overwritten.
	if err := w.Close(); err != nil {
		return fmt.Errorf("commit %s: %w", key, err)
	}
	return nil
}

// Attrs returns the metadata of the object under key.
func (s *Store) Attrs(ctx context.Context, key string) (docstore.ObjectAttrs, error) {
	attrs, err := s.bucket.Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return docstore.ObjectAttrs{}, docstore.ErrObjectNotFound
		}
		return docstore.ObjectAttrs{}, fmt.Errorf("stat %s: %w", key, err)
	}
	return docstore.ObjectAttrs{ContentType: attrs.ContentType, Size: attrs.Size}, nil
}

// NewReader opens a streaming reader over the object under key. The caller
// owns the returned reader and must close it.
func (s *Store) NewReader(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, docstore.ErrObjectNotFound
		}
		return nil, fmt.Errorf("open %s: %w", key, err)
	}
	return r, nil
}
