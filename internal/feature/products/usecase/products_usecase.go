// Package usecase implements the business logic for the product catalog.
package usecase

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"store_backend/internal/feature/products/domain/entity"
	"store_backend/internal/platform/docstore"
	"store_backend/internal/shared/apperr"
)

// ProductRepository abstracts the read-only product catalog.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ProductRepository interface {
	// List returns every catalog entry.
	List(ctx context.Context) ([]entity.Product, error)

	// Find returns the catalog entry with the given id.
	// It returns a not_found error if the product does not exist.
	Find(ctx context.Context, id string) (*entity.Product, error)
}

// AssetStore abstracts the blob bucket holding the product assets.
type AssetStore interface {
	// Attrs returns the metadata of the object under key.
	Attrs(ctx context.Context, key string) (docstore.ObjectAttrs, error)

	// NewReader opens a streaming reader over the object under key.
	NewReader(ctx context.Context, key string) (io.ReadCloser, error)
}

// productsUsecase provides catalog browsing and asset resolution.
type productsUsecase struct {
	products ProductRepository
	assets   AssetStore
}

// NewProductsUsecase creates a new productsUsecase with the given repository
// and asset store.
func NewProductsUsecase(products ProductRepository, assets AssetStore) *productsUsecase {
	return &productsUsecase{products: products, assets: assets}
}

// List returns every catalog entry.
func (u *productsUsecase) List(ctx context.Context) ([]entity.Product, error) {
	return u.products.List(ctx)
}

// Get returns the catalog entry with the given id.
func (u *productsUsecase) Get(ctx context.Context, id string) (*entity.Product, error) {
	if id == "" {
		return nil, apperr.New(apperr.KindValidation, "missing product id")
	}
	return u.products.Find(ctx, id)
}

// Download resolves the product's backing asset and opens a streaming reader
// over it. The caller owns the returned reader. A missing product or a
// missing backing object both yield a not_found error.
func (u *productsUsecase) Download(ctx context.Context, id string) (*entity.Asset, error) {
	product, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	key := strings.TrimPrefix(product.Path, "/")
	attrs, err := u.assets.Attrs(ctx, key)
	if err != nil {
		if errors.Is(err, docstore.ErrObjectNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "file missing")
		}
		return nil, apperr.Wrap(apperr.KindStorage, "failed to stat asset "+key, err)
	}

	contentType := attrs.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	reader, err := u.assets.NewReader(ctx, key)
	if err != nil {
		if errors.Is(err, docstore.ErrObjectNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "file missing")
		}
		return nil, apperr.Wrap(apperr.KindStorage, "failed to open asset "+key, err)
	}

	return &entity.Asset{
		Reader:      reader,
		ContentType: contentType,
		Filename:    path.Base(key),
		Size:        attrs.Size,
	}, nil
}
