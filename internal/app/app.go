// Package app wires the service's dependencies and runs the HTTP server.
package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	autharea "github.com/miguelangelabou/globosanabell/internal/auth"
	cartevent "github.com/miguelangelabou/globosanabell/internal/cart/event"
	carthandler "github.com/miguelangelabou/globosanabell/internal/cart/handler"
	cartrepo "github.com/miguelangelabou/globosanabell/internal/cart/repository"
	cartservice "github.com/miguelangelabou/globosanabell/internal/cart/service"
	catalogevent "github.com/miguelangelabou/globosanabell/internal/catalog/event"
	cataloghandler "github.com/miguelangelabou/globosanabell/internal/catalog/handler"
	catalogrepo "github.com/miguelangelabou/globosanabell/internal/catalog/repository"
	catalogservice "github.com/miguelangelabou/globosanabell/internal/catalog/service"
	checkoutevent "github.com/miguelangelabou/globosanabell/internal/checkout/event"
	checkouthandler "github.com/miguelangelabou/globosanabell/internal/checkout/handler"
	checkoutservice "github.com/miguelangelabou/globosanabell/internal/checkout/service"
	companyhandler "github.com/miguelangelabou/globosanabell/internal/company/handler"
	companyrepo "github.com/miguelangelabou/globosanabell/internal/company/repository"
	companyservice "github.com/miguelangelabou/globosanabell/internal/company/service"
	"github.com/miguelangelabou/globosanabell/internal/config"
	"github.com/miguelangelabou/globosanabell/internal/geoip"
	"github.com/miguelangelabou/globosanabell/internal/media"
	saleshandler "github.com/miguelangelabou/globosanabell/internal/sales/handler"
	salesrepo "github.com/miguelangelabou/globosanabell/internal/sales/repository"
	salesservice "github.com/miguelangelabou/globosanabell/internal/sales/service"
	"github.com/miguelangelabou/globosanabell/pkg/database"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/kafka"
	"github.com/miguelangelabou/globosanabell/pkg/validator"
)

// App holds the wired service and its owned resources.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	pool      *pgxpool.Pool
	redis     *redis.Client
	publisher kafka.Publisher

	server *http.Server
}

// New connects to the backing stores and wires every layer.
func New(ctx context.Context, cfg *config.Config, l *slog.Logger, migrations embed.FS) (*App, error) {
	pool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	if err := database.RunMigrations(ctx, pool, migrations, l); err != nil {
		pool.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	var publisher kafka.Publisher = kafka.NopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, l)
	}

	v := validator.New()

	// Catalog.
	productRepo := catalogrepo.NewPostgresProductRepository(pool)
	catalogEvents := catalogevent.NewPublisher(publisher, l)

	// Cart and wishlist.
	sessionRepo := cartrepo.NewRedisSessionRepository(redisClient)
	cartEvents := cartevent.NewPublisher(publisher, l)

	catalogSvc := catalogservice.New(productRepo, wishlistAdapter{sessionRepo}, catalogEvents, v)
	cartSvc := cartservice.New(sessionRepo, catalogSvc, cartEvents)

	// Company profile.
	companyRepo := companyrepo.NewPostgresCompanyRepository(pool)
	companySvc := companyservice.New(companyRepo, v)

	// Sales log.
	saleRepo := salesrepo.NewPostgresSaleRepository(pool)
	salesSvc := salesservice.New(saleRepo)

	// Checkout.
	geo := geoip.NewClient(cfg.GeoIP.Token, l)
	checkoutEvents := checkoutevent.NewPublisher(publisher, l)
	checkoutSvc := checkoutservice.New(cartSvc, companySvc, salesSvc, catalogSvc, geo, checkoutEvents)

	// Admin auth.
	tokens := autharea.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	adminRepo := autharea.NewPostgresAdminRepository(pool)
	authSvc := autharea.NewService(adminRepo, tokens)

	// Media uploads.
	var uploader media.Uploader = disabledUploader{}
	if cfg.Media.CloudName != "" {
		uploader, err = media.NewCloudinaryUploader(cfg.Media.CloudName, cfg.Media.APIKey, cfg.Media.APISecret)
		if err != nil {
			pool.Close()
			_ = redisClient.Close()
			return nil, fmt.Errorf("configuring media uploads: %w", err)
		}
	}

	router := newRouter(routerDeps{
		cfg:      cfg,
		logger:   l,
		pool:     pool,
		redis:    redisClient,
		tokens:   tokens,
		catalog:  cataloghandler.New(catalogSvc),
		admin:    cataloghandler.NewAdmin(catalogSvc),
		cart:     carthandler.New(cartSvc),
		checkout: checkouthandler.New(checkoutSvc),
		company:  companyhandler.New(companySvc),
		sales:    saleshandler.New(salesSvc),
		auth:     autharea.NewHandler(authSvc),
		media:    media.NewHandler(uploader, catalogSvc),
	})

	return &App{
		cfg:       cfg,
		logger:    l,
		pool:      pool,
		redis:     redisClient,
		publisher: publisher,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}, nil
}

// Run serves HTTP until the context is canceled or a signal arrives,
// then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "addr", a.server.Addr, "environment", a.cfg.Environment)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}

	a.close()
	return nil
}

func (a *App) close() {
	if err := a.publisher.Close(); err != nil {
		a.logger.Warn("closing kafka producer", "error", err)
	}
	if err := a.redis.Close(); err != nil {
		a.logger.Warn("closing redis client", "error", err)
	}
	a.pool.Close()
}

// wishlistAdapter narrows the session repository to the catalog's
// favorites lookup.
type wishlistAdapter struct {
	repo *cartrepo.RedisSessionRepository
}

func (w wishlistAdapter) ProductIDs(ctx context.Context, sessionID string) ([]string, error) {
	return w.repo.GetWishlist(ctx, sessionID)
}

// disabledUploader rejects uploads when Cloudinary is not configured.
type disabledUploader struct{}

func (disabledUploader) Upload(context.Context, multipart.File, string) (string, error) {
	return "", apperrors.NewUnavailable("media uploads")
}

func (disabledUploader) Delete(context.Context, string) error {
	return apperrors.NewUnavailable("media uploads")
}
