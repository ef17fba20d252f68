// Package stripe はPaymentGatewayインターフェースのStripe実装を提供します。
package stripe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"store_backend/internal/feature/checkout/usecase"
)

// Gateway はStripeのPaymentIntents APIを呼び出すPaymentGateway実装です。
type Gateway struct {
	api *client.API
}

// GatewayがPaymentGatewayを実装していることをコンパイル時に検証します。
var _ usecase.PaymentGateway = (*Gateway)(nil)

// NewGateway は指定されたシークレットキーでGatewayの新しいインスタンスを生成します。
func NewGateway(secretKey string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api}
}

// CreateIntent は自動決済手段を有効にしたペイメントインテントを作成します。
// リトライ時の二重課金を防ぐため、リクエストごとにUUIDの冪等キーを付与します。
func (g *Gateway) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	params := &stripeapi.PaymentIntentParams{
		Amount:   stripeapi.Int64(amountCents),
		Currency: stripeapi.String(currency),
		AutomaticPaymentMethods: &stripeapi.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripeapi.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		slog.Error("payment intent creation failed", "error", err, "amount_cents", amountCents)
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
