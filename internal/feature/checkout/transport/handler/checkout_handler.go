// Package handler はcheckoutフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"store_backend/internal/feature/checkout/domain/entity"
	"store_backend/internal/feature/checkout/transport/http/dto"
	"store_backend/internal/shared/httperr"
)

// CheckoutUsecase は決済開始のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CheckoutUsecase interface {
	CreatePaymentIntent(ctx context.Context, items []entity.CheckoutItem) (string, error)
}

// CheckoutHandler は決済開始のHTTPリクエストを処理します。
type CheckoutHandler struct {
	checkout CheckoutUsecase
}

// NewCheckoutHandler はCheckoutHandlerの新しいインスタンスを生成します。
func NewCheckoutHandler(checkout CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// CreatePaymentIntent はペイメントインテントを作成するAPIエンドポイントを処理します。
// - リクエストJSONをCreatePaymentIntentReqにバインド
// - バリデーションエラー時は400を返却
// - 成功時はクライアントシークレットを200で返却
func (h *CheckoutHandler) CreatePaymentIntent(c *gin.Context) {
	var req dto.CreatePaymentIntentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("checkout validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: "missing items"})
		return
	}
	items := make([]entity.CheckoutItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.CheckoutItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	secret, err := h.checkout.CreatePaymentIntent(c.Request.Context(), items)
	if err != nil {
		slog.Warn("payment intent creation failed", "error", err)
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CreatePaymentIntentResponse{ClientSecret: secret})
}
