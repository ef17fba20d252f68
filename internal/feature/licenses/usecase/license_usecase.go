// Package usecase はlicensesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"store_backend/internal/feature/licenses/domain/entity"
	"store_backend/internal/shared/apperr"
)

// LicenseRepository はライセンスの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// (userId, productId)による重複排除はライセンスドキュメントの更新ロック内で行われます。
type LicenseRepository interface {
	// IssueBatch はまだライセンスされていない商品のみに新しいライセンスを発行し、
	// 新規作成分だけを返します。全商品が発行済みの場合は書き込みを行わず空を返します。
	IssueBatch(ctx context.Context, userID int, orders []entity.OrderItem) ([]entity.License, error)

	// ActiveByUser は指定ユーザーのstatusがactiveなライセンスを返します。
	ActiveByUser(ctx context.Context, userID int) ([]entity.License, error)
}

// licenseUsecase はライセンス発行のビジネスロジックを実装します。
type licenseUsecase struct {
	licenses LicenseRepository
}

// NewLicenseUsecase はlicenseUsecaseの新しいインスタンスを生成します。
func NewLicenseUsecase(licenses LicenseRepository) *licenseUsecase {
	return &licenseUsecase{licenses: licenses}
}

// Issue は購入された商品のライセンスを発行します。
// 既に(userId, productId)のライセンスが存在する商品はスキップされ、
// 戻り値には新規作成されたライセンスのみが含まれます（冪等な発行）。
func (u *licenseUsecase) Issue(ctx context.Context, userID int, orders []entity.OrderItem) ([]entity.License, error) {
	if userID <= 0 || len(orders) == 0 {
		return nil, apperr.New(apperr.KindValidation, "invalid input")
	}
	for _, o := range orders {
		if o.ID == "" || o.Quantity < 1 {
			return nil, apperr.New(apperr.KindValidation, "invalid input")
		}
	}
	return u.licenses.IssueBatch(ctx, userID, orders)
}

// ListActive は指定ユーザーのアクティブなライセンスを返します。
// usesRemainingによるフィルタは行いません（残回数0でもstatusがactiveなら返します）。
func (u *licenseUsecase) ListActive(ctx context.Context, userID int) ([]entity.License, error) {
	if userID <= 0 {
		return nil, apperr.New(apperr.KindValidation, "invalid userId")
	}
	return u.licenses.ActiveByUser(ctx, userID)
}
