package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	autharea "github.com/miguelangelabou/globosanabell/internal/auth"
	carthandler "github.com/miguelangelabou/globosanabell/internal/cart/handler"
	cataloghandler "github.com/miguelangelabou/globosanabell/internal/catalog/handler"
	checkouthandler "github.com/miguelangelabou/globosanabell/internal/checkout/handler"
	companyhandler "github.com/miguelangelabou/globosanabell/internal/company/handler"
	"github.com/miguelangelabou/globosanabell/internal/config"
	"github.com/miguelangelabou/globosanabell/internal/media"
	saleshandler "github.com/miguelangelabou/globosanabell/internal/sales/handler"
	"github.com/miguelangelabou/globosanabell/pkg/health"
	"github.com/miguelangelabou/globosanabell/pkg/middleware"
)

type routerDeps struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	redis  *redis.Client
	tokens *autharea.JWTManager

	catalog  *cataloghandler.Handler
	admin    *cataloghandler.AdminHandler
	cart     *carthandler.Handler
	checkout *checkouthandler.Handler
	company  *companyhandler.Handler
	sales    *saleshandler.Handler
	auth     *autharea.Handler
	media    *media.Handler
}

func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Compress(5))
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(middleware.CORS(deps.cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(deps.cfg.RateLimitRPS, deps.cfg.RateLimitBurst, deps.logger))
	r.Use(middleware.RequestLogging(deps.logger))
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.RequestLogger(deps.logger))

	healthHandler := health.NewHandler(
		health.CheckerFunc{CheckerName: "postgres", Fn: func(ctx context.Context) error {
			return deps.pool.Ping(ctx)
		}},
		health.CheckerFunc{CheckerName: "redis", Fn: func(ctx context.Context) error {
			return deps.redis.Ping(ctx).Err()
		}},
	)

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Public storefront.
		r.Group(deps.catalog.Routes)
		r.Group(deps.company.PublicRoutes)
		r.Group(deps.cart.Routes)
		r.Group(deps.checkout.Routes)

		r.Route("/auth", func(r chi.Router) {
			deps.auth.Routes(r)
		})

		// Admin panel.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Authenticate(deps.tokens))
			r.Use(middleware.RequireRole("admin"))

			deps.admin.Routes(r)
			deps.company.AdminRoutes(r)
			deps.sales.Routes(r)
			deps.media.Routes(r)
		})
	})

	return r
}
