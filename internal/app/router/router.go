package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	carthandler "store_backend/internal/feature/cart/transport/handler"
	checkouthandler "store_backend/internal/feature/checkout/transport/handler"
	licensehandler "store_backend/internal/feature/licenses/transport/handler"
	producthandler "store_backend/internal/feature/products/transport/handler"
	userhandler "store_backend/internal/feature/users/transport/handler"
	jwtmw "store_backend/internal/platform/jwt"
	"store_backend/internal/platform/http/handler"
)

// NewRouter assembles the gin engine with CORS and the storefront route
// table. Signup, login, product browsing and the health check are public;
// cart, license and checkout routes require a JWT signed with jwtSecret.
func NewRouter(allowedOrigins []string, jwtSecret string,
	users *userhandler.UserHandler,
	products *producthandler.ProductHandler,
	carts *carthandler.CartHandler,
	licenses *licensehandler.LicenseHandler,
	checkout *checkouthandler.CheckoutHandler) *gin.Engine {
	r := gin.Default()

	// ストアフロント本番ドメインとローカル開発のみ許可
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/api/users", users.Signup)
	// ログイン（JWT 発行）
	r.POST("/api/users/login", users.Login)
	// 商品カタログは公開
	r.GET("/api/products", products.List)
	r.GET("/api/products/:id", products.Get)
	r.GET("/api/products/:id/download", products.Download)

	// 認証必須のルート
	auth := r.Group("/api")
	// jwtmw.AuthRequired ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		auth.POST("/cart/add", carts.Add)
		auth.GET("/cart/:userId", carts.Get)
		auth.DELETE("/cart/remove", carts.Remove)
		auth.DELETE("/cart/clear", carts.Clear)
		auth.POST("/licenses", licenses.Issue)
		auth.GET("/licenses/:userId", licenses.ListActive)
		auth.POST("/checkout/create-payment-intent", checkout.CreatePaymentIntent)
	}

	return r
}
