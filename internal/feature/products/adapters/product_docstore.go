// Package adapters はproductsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"store_backend/internal/feature/products/domain/entity"
	"store_backend/internal/feature/products/usecase"
	"store_backend/internal/platform/docstore"
	"store_backend/internal/shared/apperr"
)

// productDocstore はProductRepositoryインターフェースのドキュメントストア実装です。
// カタログは外部で管理される読み取り専用ドキュメントのため、ReadStrictを使用し、
// このアダプターがドキュメントを初期化・変更することはありません。
type productDocstore struct {
	col *docstore.Collection[[]entity.Product]
}

// productDocstoreがProductRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ProductRepository = (*productDocstore)(nil)

// NewProductDocstore は指定されたコレクションでproductDocstoreの新しいインスタンスを生成します。
func NewProductDocstore(col *docstore.Collection[[]entity.Product]) *productDocstore {
	return &productDocstore{col: col}
}

// List はカタログの全商品を返します。
func (r *productDocstore) List(ctx context.Context) ([]entity.Product, error) {
	return r.col.ReadStrict(ctx)
}

// Find はIDで商品を取得します。
// 商品が存在しない場合、not_foundエラーを返します。
func (r *productDocstore) Find(ctx context.Context, id string) (*entity.Product, error) {
	products, err := r.col.ReadStrict(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, apperr.New(apperr.KindNotFound, "product not found")
}
