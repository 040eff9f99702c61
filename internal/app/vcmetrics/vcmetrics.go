// Package vcmetrics собирает приложение консоли метрик: хранилище, кеш,
// внешний контент-API, сервисы и HTTP-сервер.
package vcmetrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/vc-metrics/internal/cache"
	"github.com/magabrotheeeer/vc-metrics/internal/config"
	"github.com/magabrotheeeer/vc-metrics/internal/lib/jwt"
	"github.com/magabrotheeeer/vc-metrics/internal/migrations"
	articleservice "github.com/magabrotheeeer/vc-metrics/internal/services/article"
	authservice "github.com/magabrotheeeer/vc-metrics/internal/services/auth"
	"github.com/magabrotheeeer/vc-metrics/internal/storage/repository"
	"github.com/magabrotheeeer/vc-metrics/internal/vcapi"
)

// App держит собранный HTTP-сервер и зависимости для его остановки.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New подключает хранилище и кеш, накатывает миграции и собирает роутер.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)
	fetcher := vcapi.NewClient(cfg.VCAPI.AddressVCAPI, cfg.VCAPI.TimeoutVCAPI)

	authService := authservice.NewAuthService(db, jwtMaker)
	articleService := articleservice.NewArticleService(db, fetcher, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, articleService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
