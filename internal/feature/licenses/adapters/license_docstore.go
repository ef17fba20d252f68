// Package adapters はlicensesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"store_backend/internal/feature/licenses/domain/entity"
	"store_backend/internal/feature/licenses/usecase"
	"store_backend/internal/platform/docstore"
)

// licenseDocstore はLicenseRepositoryインターフェースのドキュメントストア実装です。
// 全ライセンスを1つのJSONドキュメント（licenses配列）として読み書きします。
type licenseDocstore struct {
	col *docstore.Collection[entity.LicenseDocument]
}

// licenseDocstoreがLicenseRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.LicenseRepository = (*licenseDocstore)(nil)

// NewLicenseDocstore は指定されたコレクションでlicenseDocstoreの新しいインスタンスを生成します。
func NewLicenseDocstore(col *docstore.Collection[entity.LicenseDocument]) *licenseDocstore {
	return &licenseDocstore{col: col}
}

// IssueBatch は重複排除とライセンス生成をドキュメントの更新ロック内で行います。
// ステータスに関係なく、既に(userId, productId)のライセンスが存在する商品は
// スキップされます。新規作成が無い場合は書き込み自体を省略します。
func (r *licenseDocstore) IssueBatch(ctx context.Context, userID int, orders []entity.OrderItem) ([]entity.License, error) {
	created := []entity.License{}
	_, err := r.col.Update(ctx, func(doc entity.LicenseDocument) (entity.LicenseDocument, error) {
		licensed := map[string]bool{}
		for _, l := range doc.Licenses {
			if l.UserID == userID {
				licensed[l.ProductID] = true
			}
		}

		ts := time.Now().UTC()
		for _, o := range orders {
			if licensed[o.ID] {
				continue
			}
			key, err := entity.NewLicenseKey()
			if err != nil {
				return doc, err
			}
			created = append(created, entity.License{
				LicenseKey:    key,
				UserID:        userID,
				ProductID:     o.ID,
				Name:          o.Name,
				Quantity:      o.Quantity,
				UsesRemaining: o.Quantity,
				Created:       ts,
				Status:        entity.StatusActive,
			})
			// 同一リクエスト内の重複商品にも二重発行しない
			licensed[o.ID] = true
		}

		if len(created) == 0 {
			return doc, docstore.ErrNoChange
		}
		doc.Licenses = append(doc.Licenses, created...)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ActiveByUser は指定ユーザーのstatusがactiveなライセンスを返します。
func (r *licenseDocstore) ActiveByUser(ctx context.Context, userID int) ([]entity.License, error) {
	doc, err := r.col.Read(ctx)
	if err != nil {
		return nil, err
	}
	active := []entity.License{}
	for _, l := range doc.Licenses {
		if l.UserID == userID && l.Status == entity.StatusActive {
			active = append(active, l)
		}
	}
	return active, nil
}
