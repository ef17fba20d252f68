// Package handler はproductsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"store_backend/internal/feature/products/domain/entity"
	"store_backend/internal/feature/products/transport/http/dto"
	"store_backend/internal/shared/httperr"
)

// ProductsUsecase は商品カタログのユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ProductsUsecase interface {
	List(ctx context.Context) ([]entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	Download(ctx context.Context, id string) (*entity.Asset, error)
}

// ProductHandler は商品カタログのHTTPリクエストを処理します。
type ProductHandler struct {
	products ProductsUsecase
}

// NewProductHandler はProductHandlerの新しいインスタンスを生成します。
func NewProductHandler(products ProductsUsecase) *ProductHandler {
	return &ProductHandler{products: products}
}

// List は商品一覧を取得するAPIエンドポイントを処理します。
// 内部のアセットパスを除いた公開フィールドのみをJSONで返します。
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		slog.Warn("product list failed", "error", err)
		httperr.Respond(c, err)
		return
	}
	out := make([]dto.ProductItem, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Get は単一商品を取得するAPIエンドポイントを処理します。
// 商品が存在しない場合は404を返却します。
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Warn("product get failed", "error", err, "product_id", c.Param("id"))
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProductItem{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	})
}

// Download は商品アセットをストリーミングでダウンロードさせるAPIエンドポイントを処理します。
// Content-Typeはオブジェクトのメタデータから、ファイル名はアセットパスから決定します。
func (h *ProductHandler) Download(c *gin.Context) {
	asset, err := h.products.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Warn("product download failed", "error", err, "product_id", c.Param("id"))
		httperr.Respond(c, err)
		return
	}
	defer func() {
		if cerr := asset.Reader.Close(); cerr != nil {
			slog.Warn("failed to close asset reader", "error", cerr)
		}
	}()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", asset.Filename),
	}
	c.DataFromReader(http.StatusOK, asset.Size, asset.ContentType, asset.Reader, extraHeaders)
}
