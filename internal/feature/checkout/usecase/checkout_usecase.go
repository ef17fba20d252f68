// Package usecase はcheckoutフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"math"

	"store_backend/internal/feature/checkout/domain/entity"
	"store_backend/internal/shared/apperr"
)

// PaymentGateway は外部決済プロセッサへのペイメントインテント作成を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PaymentGateway interface {
	// CreateIntent は指定された金額（セント単位）のペイメントインテントを作成し、
	// クライアントシークレットを返します。
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

// checkoutUsecase は決済開始のビジネスロジックを実装します。
type checkoutUsecase struct {
	gateway PaymentGateway
}

// NewCheckoutUsecase はcheckoutUsecaseの新しいインスタンスを生成します。
func NewCheckoutUsecase(gateway PaymentGateway) *checkoutUsecase {
	return &checkoutUsecase{gateway: gateway}
}

// CreatePaymentIntent はカート合計（price×quantityの総和）をセントに換算して
// ペイメントインテントを作成し、クライアントシークレットを返します。
// 決済処理そのものは外部プロセッサの責務であり、ここは単一のパススルー呼び出しです。
func (u *checkoutUsecase) CreatePaymentIntent(ctx context.Context, items []entity.CheckoutItem) (string, error) {
	if len(items) == 0 {
		return "", apperr.New(apperr.KindValidation, "missing items")
	}

	total := 0.0
	for _, item := range items {
		if item.Quantity < 1 || item.Price <= 0 {
			return "", apperr.New(apperr.KindValidation, "invalid item")
		}
		total += item.Price * float64(item.Quantity)
	}

	amountCents := int64(math.Round(total * 100))
	return u.gateway.CreateIntent(ctx, amountCents, "usd")
}
