// Package handler はlicensesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"store_backend/internal/feature/licenses/domain/entity"
	"store_backend/internal/feature/licenses/transport/http/dto"
	"store_backend/internal/shared/httperr"
)

// LicenseUsecase はライセンス操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type LicenseUsecase interface {
	Issue(ctx context.Context, userID int, orders []entity.OrderItem) ([]entity.License, error)
	ListActive(ctx context.Context, userID int) ([]entity.License, error)
}

// LicenseHandler はライセンス操作のHTTPリクエストを処理します。
type LicenseHandler struct {
	licenses LicenseUsecase
}

// NewLicenseHandler はLicenseHandlerの新しいインスタンスを生成します。
func NewLicenseHandler(licenses LicenseUsecase) *LicenseHandler {
	return &LicenseHandler{licenses: licenses}
}

// Issue は購入済み商品のライセンスを発行するAPIエンドポイントを処理します。
// - リクエストJSONをIssueLicensesReqにバインド
// - バリデーションエラー時は400を返却
// - 成功時は新規作成されたライセンスのみを201で返却（発行済み分は含まない）
func (h *LicenseHandler) Issue(c *gin.Context) {
	var req dto.IssueLicensesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("license issue validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: "invalid input"})
		return
	}
	orders := make([]entity.OrderItem, 0, len(req.Products))
	for _, p := range req.Products {
		orders = append(orders, entity.OrderItem{ID: p.ID, Name: p.Name, Quantity: p.Quantity})
	}
	created, err := h.licenses.Issue(c.Request.Context(), req.UserID, orders)
	if err != nil {
		slog.Warn("license issue failed", "error", err, "user_id", req.UserID)
		httperr.Respond(c, err)
		return
	}
	slog.Info("licenses issued", "user_id", req.UserID, "created", len(created))
	c.JSON(http.StatusCreated, dto.LicensesResponse{Message: "licenses created", Licenses: created})
}

// ListActive はユーザーのアクティブなライセンス一覧を返すAPIエンドポイントを処理します。
func (h *LicenseHandler) ListActive(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: "invalid userId"})
		return
	}
	licenses, err := h.licenses.ListActive(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("license list failed", "error", err, "user_id", userID)
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LicensesResponse{Licenses: licenses})
}
