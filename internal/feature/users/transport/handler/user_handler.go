// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"store_backend/internal/feature/users/domain/entity"
	"store_backend/internal/feature/users/transport/http/dto"
	"store_backend/internal/shared/httperr"
)

// UsersUsecase はユーザー管理操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler)が定義します。
type UsersUsecase interface {
	// Signup は新規ユーザーを登録し、採番済みのユーザーを返します。
	Signup(ctx context.Context, name, email, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にユーザーとJWTトークンを返します。
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
}

// UserHandler はユーザー管理操作のHTTPリクエストを処理します。
type UserHandler struct {
	users UsersUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からUsersUsecaseを注入します。
func NewUserHandler(users UsersUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをSignupReqにバインド
// - バリデーションエラー時は400を返却
// - メールアドレス重複時は400を返却
// - 成功時はパスワードを除いたユーザーを201で返却
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: "missing required fields"})
		return
	}
	user, err := h.users.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		httperr.Respond(c, err)
		return
	}
	slog.Info("user signup successful", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusCreated, dto.SignupResponse{
		Message: "user created successfully",
		User:    dto.UserItem{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はJWTトークンとパスワードを除いたユーザーを200で返却
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: "missing email or password"})
		return
	}
	user, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		httperr.Respond(c, err)
		return
	}
	slog.Info("user login successful", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "login successful",
		Token:   token,
		User:    dto.UserItem{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}
