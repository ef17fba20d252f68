package docstore

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// MemStore is an in-memory ObjectStore used in tests and for local
// development without a bucket.
type MemStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
	types   map[string]string
}

var _ ObjectStore = (*MemStore)(nil)

// NewMemStore creates an empty in-memory object store.
func NewMemStore() *MemStore {
	return &MemStore{
		objects: map[string][]byte{},
		types:   map[string]string{},
	}
}

// Seed stores an object with an explicit content type, for test fixtures.
func (s *MemStore) Seed(key string, data []byte, contentType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = append([]byte(nil), data...)
	s.types[key] = contentType
}

// Exists reports whether an object is present under key.
func (s *MemStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok, nil
}

// Get returns a copy of the object contents.
func (s *MemStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return append([]byte(nil), data...), nil
}

// Put overwrites the object under key.
func (s *MemStore) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = append([]byte(nil), data...)
	return nil
}

// Attrs returns the metadata of the object under key.
func (s *MemStore) Attrs(_ context.Context, key string) (ObjectAttrs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	if !ok {
		return ObjectAttrs{}, ErrObjectNotFound
	}
	return ObjectAttrs{ContentType: s.types[key], Size: int64(len(data))}, nil
}

// NewReader opens a reader over a copy of the object contents.
func (s *MemStore) NewReader(_ context.Context, key string) (io.ReadCloser, error) {
	data, err := s.Get(context.Background(), key)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
