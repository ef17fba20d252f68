package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"store_backend/internal/shared/apperr"
)

// ErrNoChange can be returned by an Update mutate function to signal that the
// document is already in the desired state and the write should be skipped.
var ErrNoChange = errors.New("docstore: no change")

// Collection wraps one JSON document stored under a single key and gives it
// collection semantics: a key always yields a parseable document after first
// access, and mutations rewrite the whole document.
//
// One Collection instance exists per document key (wired at process start),
// so the collection mutex serializes every read-modify-write against that
// key within the process.
type Collection[T any] struct {
	store      ObjectStore
	key        string
	defaultDoc func() T

	mu sync.Mutex
}

// NewCollection creates a collection over the document stored under key.
// defaultDoc produces the value written on first access and returned when the
// stored payload is empty or unparseable.
func NewCollection[T any](store ObjectStore, key string, defaultDoc func() T) *Collection[T] {
	return &Collection[T]{
		store:      store,
		key:        key,
		defaultDoc: defaultDoc,
	}
}

// Key returns the object key this collection is stored under.
func (c *Collection[T]) Key() string {
	return c.key
}

// EnsureInitialized writes the default document if the key is absent.
// It is idempotent and safe to call before every access.
func (c *Collection[T]) EnsureInitialized(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ensureLocked(ctx)
}

func (c *Collection[T]) ensureLocked(ctx context.Context) error {
	exists, err := c.store.Exists(ctx, c.key)
	if err != nil {
		return apperr.Wrap(apperr.KindStorage, "failed to check "+c.key, err)
	}
	if exists {
		return nil
	}
	if err := c.writeLocked(ctx, c.defaultDoc()); err != nil {
		return err
	}
	slog.Info("initialized document with default data", "key", c.key)
	return nil
}

// Read ensures the document exists, then fetches and parses it. An empty
// payload or a parse failure is treated as the default document rather than
// an error; only store I/O failures propagate.
func (c *Collection[T]) Read(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLocked(ctx)
}

func (c *Collection[T]) readLocked(ctx context.Context) (T, error) {
	var zero T
	if err := c.ensureLocked(ctx); err != nil {
		return zero, err
	}
	data, err := c.store.Get(ctx, c.key)
	if err != nil {
		// The key cannot revert to missing after ensureLocked, but a racing
		// external deletion still degrades to the default document.
		if errors.Is(err, ErrObjectNotFound) {
			return c.defaultDoc(), nil
		}
		return zero, apperr.Wrap(apperr.KindStorage, "failed to read "+c.key, err)
	}
	if len(data) == 0 {
		return c.defaultDoc(), nil
	}
	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("unparseable document, falling back to default", "key", c.key, "error", err)
		return c.defaultDoc(), nil
	}
	return doc, nil
}

// ReadStrict fetches and parses the document without initializing it. It
// returns a not_found error if the key is absent. Read-only collections such
// as the product catalog use this so they never write to the bucket.
func (c *Collection[T]) ReadStrict(ctx context.Context) (T, error) {
	var zero T
	data, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return zero, apperr.New(apperr.KindNotFound, "missing document "+c.key)
		}
		return zero, apperr.Wrap(apperr.KindStorage, "failed to read "+c.key, err)
	}
	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return zero, apperr.Wrap(apperr.KindStorage, "corrupt document "+c.key, err)
	}
	return doc, nil
}

// Write serializes the document and overwrites the stored object
// unconditionally (last write wins, no version check).
func (c *Collection[T]) Write(ctx context.Context, doc T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(ctx, doc)
}

func (c *Collection[T]) writeLocked(ctx context.Context, doc T) error {
	// Two-space indent matches the layout the documents were created with.
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperr.Wrap(apperr.KindStorage, "failed to encode "+c.key, err)
	}
	if err := c.store.Put(ctx, c.key, data); err != nil {
		return apperr.Wrap(apperr.KindStorage, "failed to write "+c.key, err)
	}
	return nil
}

// Update runs mutate inside the collection lock: ensure, read, mutate in
// memory, write back. The lock is held for the whole sequence so concurrent
// updates to the same document cannot lose each other's writes.
//
// If mutate returns ErrNoChange the write is skipped and the current document
// is returned. Any other error aborts the update without writing.
func (c *Collection[T]) Update(ctx context.Context, mutate func(doc T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	doc, err := c.readLocked(ctx)
	if err != nil {
		return zero, err
	}
	out, err := mutate(doc)
	if err != nil {
		if errors.Is(err, ErrNoChange) {
			return doc, nil
		}
		return zero, err
	}
	if err := c.writeLocked(ctx, out); err != nil {
		return zero, err
	}
	return out, nil
}
