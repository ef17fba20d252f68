// Package adapters はcartフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"store_backend/internal/feature/cart/domain/entity"
	"store_backend/internal/feature/cart/usecase"
	"store_backend/internal/platform/docstore"
	"store_backend/internal/shared/apperr"
)

// cartDocstore はCartRepositoryインターフェースのドキュメントストア実装です。
// 全ユーザーのカートを1つのJSONドキュメント（userId→行リストのマップ）として読み書きします。
type cartDocstore struct {
	col *docstore.Collection[entity.CartDocument]
}

// cartDocstoreがCartRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CartRepository = (*cartDocstore)(nil)

// NewCartDocstore は指定されたコレクションでcartDocstoreの新しいインスタンスを生成します。
func NewCartDocstore(col *docstore.Collection[entity.CartDocument]) *cartDocstore {
	return &cartDocstore{col: col}
}

// AddLine は行のマージまたは追加をドキュメントの更新ロック内で行います。
// 同じproductIdの既存行がある場合は数量のみ加算します（名前と価格は据え置き）。
func (r *cartDocstore) AddLine(ctx context.Context, userID int, line entity.CartLine) ([]entity.CartLine, error) {
	var result []entity.CartLine
	_, err := r.col.Update(ctx, func(doc entity.CartDocument) (entity.CartDocument, error) {
		// JSONのnullはエラーなくnilマップにデコードされるため、代入前に正規化する
		if doc == nil {
			doc = entity.CartDocument{}
		}
		key := entity.UserKey(userID)
		lines := doc[key]

		merged := false
		for i := range lines {
			if lines[i].ProductID == line.ProductID {
				lines[i].Quantity += line.Quantity
				merged = true
				break
			}
		}
		if !merged {
			lines = append(lines, line)
		}

		doc[key] = lines
		result = lines
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Lines はユーザーのカート行を返します。エントリが無ければ空のスライスを返します。
func (r *cartDocstore) Lines(ctx context.Context, userID int) ([]entity.CartLine, error) {
	doc, err := r.col.Read(ctx)
	if err != nil {
		return nil, err
	}
	lines := doc[entity.UserKey(userID)]
	if lines == nil {
		lines = []entity.CartLine{}
	}
	return lines, nil
}

// RemoveLine は指定されたproductIdの行をフィルタで取り除きます。
// ユーザーのカートエントリ自体が無い場合はnot_foundエラーを返し、書き込みは行いません。
func (r *cartDocstore) RemoveLine(ctx context.Context, userID int, productID string) ([]entity.CartLine, error) {
	var result []entity.CartLine
	_, err := r.col.Update(ctx, func(doc entity.CartDocument) (entity.CartDocument, error) {
		key := entity.UserKey(userID)
		lines, ok := doc[key]
		if !ok {
			return nil, apperr.New(apperr.KindNotFound, "cart not found for user")
		}

		filtered := make([]entity.CartLine, 0, len(lines))
		for _, l := range lines {
			if l.ProductID != productID {
				filtered = append(filtered, l)
			}
		}

		doc[key] = filtered
		result = filtered
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Clear はユーザーのカート行を空にします。エントリが無い場合もキーを作成します。
func (r *cartDocstore) Clear(ctx context.Context, userID int) error {
	_, err := r.col.Update(ctx, func(doc entity.CartDocument) (entity.CartDocument, error) {
		if doc == nil {
			doc = entity.CartDocument{}
		}
		doc[entity.UserKey(userID)] = []entity.CartLine{}
		return doc, nil
	})
	return err
}
