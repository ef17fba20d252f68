// Package handler はcartフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"store_backend/internal/feature/cart/domain/entity"
	"store_backend/internal/feature/cart/transport/http/dto"
	"store_backend/internal/shared/httperr"
)

// CartUsecase はカート操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CartUsecase interface {
	Add(ctx context.Context, userID int, line entity.CartLine) ([]entity.CartLine, error)
	Get(ctx context.Context, userID int) ([]entity.CartLine, error)
	Remove(ctx context.Context, userID int, productID string) ([]entity.CartLine, error)
	Clear(ctx context.Context, userID int) error
}

// CartHandler はカート操作のHTTPリクエストを処理します。
type CartHandler struct {
	cart CartUsecase
}

// NewCartHandler はCartHandlerの新しいインスタンスを生成します。
func NewCartHandler(cart CartUsecase) *CartHandler {
	return &CartHandler{cart: cart}
}

// Add は商品をカートに追加するAPIエンドポイントを処理します。
// - リクエストJSONをAddToCartReqにバインド
// - バリデーションエラー時は400、未認可ユーザーは401を返却
// - 成功時は更新後のカート行を200で返却
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("cart add validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: "missing required fields"})
		return
	}
	lines, err := h.cart.Add(c.Request.Context(), req.UserID, entity.CartLine{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Name:      req.Name,
		Price:     req.Price,
	})
	if err != nil {
		slog.Warn("cart add failed", "error", err, "user_id", req.UserID, "product_id", req.ProductID)
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Message: "product added to cart", Cart: lines})
}

// Get はユーザーのカートを取得するAPIエンドポイントを処理します。
// パスパラメータのuserIdが整数でない場合は400を返却します。
func (h *CartHandler) Get(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: "invalid userId"})
		return
	}
	lines, err := h.cart.Get(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("cart get failed", "error", err, "user_id", userID)
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// Remove は商品をカートから取り除くAPIエンドポイントを処理します。
// カートエントリ自体が無い場合は404を返却します。
func (h *CartHandler) Remove(c *gin.Context) {
	var req dto.RemoveFromCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("cart remove validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: "missing userId or productId"})
		return
	}
	lines, err := h.cart.Remove(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		slog.Warn("cart remove failed", "error", err, "user_id", req.UserID, "product_id", req.ProductID)
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Message: "product removed from cart", Cart: lines})
}

// Clear はユーザーのカートを空にするAPIエンドポイントを処理します。
func (h *CartHandler) Clear(c *gin.Context) {
	var req dto.ClearCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("cart clear validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: "missing userId"})
		return
	}
	if err := h.cart.Clear(c.Request.Context(), req.UserID); err != nil {
		slog.Warn("cart clear failed", "error", err, "user_id", req.UserID)
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{Message: "cart cleared", Cart: []entity.CartLine{}})
}
