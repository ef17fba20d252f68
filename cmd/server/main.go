package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"store_backend/internal/app/router"
	cartadapters "store_backend/internal/feature/cart/adapters"
	cartentity "store_backend/internal/feature/cart/domain/entity"
	carthandler "store_backend/internal/feature/cart/transport/handler"
	cartusecase "store_backend/internal/feature/cart/usecase"
	checkoutstripe "store_backend/internal/feature/checkout/adapters/stripe"
	checkouthandler "store_backend/internal/feature/checkout/transport/handler"
	checkoutusecase "store_backend/internal/feature/checkout/usecase"
	licenseadapters "store_backend/internal/feature/licenses/adapters"
	licenseentity "store_backend/internal/feature/licenses/domain/entity"
	licensehandler "store_backend/internal/feature/licenses/transport/handler"
	licenseusecase "store_backend/internal/feature/licenses/usecase"
	productadapters "store_backend/internal/feature/products/adapters"
	productentity "store_backend/internal/feature/products/domain/entity"
	producthandler "store_backend/internal/feature/products/transport/handler"
	productusecase "store_backend/internal/feature/products/usecase"
	useradapters "store_backend/internal/feature/users/adapters"
	userentity "store_backend/internal/feature/users/domain/entity"
	userhandler "store_backend/internal/feature/users/transport/handler"
	userusecase "store_backend/internal/feature/users/usecase"
	"store_backend/internal/platform/cache"
	"store_backend/internal/platform/config"
	"store_backend/internal/platform/docstore"
	"store_backend/internal/platform/gcs"
	jwtmw "store_backend/internal/platform/jwt"
	infraredis "store_backend/internal/platform/redis"
)

// Object keys of the JSON documents inside the bucket.
const (
	usersDocKey    = "json/users.json"
	cartDocKey     = "json/cart.json"
	licensesDocKey = "json/licenses.json"
	productsDocKey = "products.json"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// Cloud Storage（プロセス全体で1クライアント、ライフサイクルはここが所有）
	gcsClient, err := gcs.NewClient(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := gcsClient.Close(); err != nil {
			slog.Error("failed to close storage client", "error", err)
		}
	}()
	store := gcs.NewStore(gcsClient, cfg.GCSBucket)

	// Redis（任意: 接続できない場合はキャッシュなしで稼働）
	var rdb *redisv9.Client
	if cfg.RedisHost == "" {
		slog.Info("Redis not configured, running without cache")
	} else if tmp, err := infraredis.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword); err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// ドキュメントコレクション（キーごとに1インスタンス）
	usersCol := docstore.NewCollection(store, usersDocKey,
		func() []userentity.User { return []userentity.User{} })
	cartCol := docstore.NewCollection(store, cartDocKey,
		func() cartentity.CartDocument { return cartentity.CartDocument{} })
	licensesCol := docstore.NewCollection(store, licensesDocKey,
		func() licenseentity.LicenseDocument {
			return licenseentity.LicenseDocument{Licenses: []licenseentity.License{}}
		})
	productsCol := docstore.NewCollection(store, productsDocKey,
		func() []productentity.Product { return []productentity.Product{} })

	// Repository
	userRepo := useradapters.NewUserDocstore(usersCol)
	cartRepo := cartadapters.NewCartDocstore(cartCol)
	licenseRepo := licenseadapters.NewLicenseDocstore(licensesCol)
	productRepo := productadapters.NewProductDocstore(productsCol)

	// 商品カタログはRedisキャッシュでラップ
	cachedProductRepo := cache.NewCachingProductRepository(rdb, cfg.ProductCacheTTL, productRepo, "products")

	// Usecase
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	usersUC := userusecase.NewUsersUsecase(userRepo, jwtGen)
	cartUC := cartusecase.NewCartUsecase(cartRepo, usersUC)
	licenseUC := licenseusecase.NewLicenseUsecase(licenseRepo)
	productsUC := productusecase.NewProductsUsecase(cachedProductRepo, store)
	checkoutUC := checkoutusecase.NewCheckoutUsecase(checkoutstripe.NewGateway(cfg.StripeSecretKey))

	// Handler
	usersH := userhandler.NewUserHandler(usersUC)
	cartH := carthandler.NewCartHandler(cartUC)
	licensesH := licensehandler.NewLicenseHandler(licenseUC)
	productsH := producthandler.NewProductHandler(productsUC)
	checkoutH := checkouthandler.NewCheckoutHandler(checkoutUC)

	// ルータ生成
	r := router.NewRouter(cfg.AllowedOrigins, cfg.JWTSecret, usersH, productsH, cartH, licensesH, checkoutH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}
	if cfg.StripeSecretKey == "" {
		slog.Warn("STRIPE_SECRET_KEY is not set. Checkout will fail until it is configured.")
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
