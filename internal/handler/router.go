package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/talo100uraba/talo-admin/internal/metrics"
	"github.com/talo100uraba/talo-admin/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	TokenVerifier     middleware.TokenVerifier
	CORSAllowedOrigin string
	Logger            *slog.Logger

	// メトリクス
	Collector metrics.MetricsCollector
	Gatherer  prometheus.Gatherer

	// サービス
	AuthService    AuthServiceInterface
	ProductService ProductServiceInterface

	// ヘルスチェック
	HealthChecker HealthChecker
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → Logging → Metrics
//
// 商品・プロモーションの読み取りは公開、書き込みはベアラートークンで保護する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	if deps.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	}
	if deps.Collector != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.Collector))
	}

	authHandler := NewAuthHandler(deps.AuthService, deps.Collector)
	productHandler := NewProductHandler(deps.ProductService, deps.Collector)
	healthHandler := NewHealthHandler(deps.HealthChecker)

	bearerAuth := middleware.NewBearerAuthMiddleware(deps.TokenVerifier)

	// --- 認証不要のルート ---

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Post("/login", authHandler.Login)

	r.Get("/api/products", productHandler.List)
	r.Get("/api/products/{id}", productHandler.Get)
	r.Get("/api/promociones", productHandler.ListPromotions)

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}

	// --- ベアラートークンが必要なルート ---

	r.Group(func(r chi.Router) {
		r.Use(bearerAuth)

		r.Get("/api/test", authHandler.Test)

		r.Post("/api/products", productHandler.Create)
		r.Put("/api/products/{id}", productHandler.Update)
		r.Delete("/api/products/{id}", productHandler.Delete)

		r.Post("/api/promociones", productHandler.CreatePromotion)
	})

	return r
}
