// Package recipefinder собирает приложение: хранилище, кеш, сессии,
// сервисы и HTTP-сервер.
package recipefinder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/recipe-finder/internal/cache"
	"github.com/magabrotheeeer/recipe-finder/internal/config"
	"github.com/magabrotheeeer/recipe-finder/internal/lib/jwt"
	"github.com/magabrotheeeer/recipe-finder/internal/session"
	authservice "github.com/magabrotheeeer/recipe-finder/internal/services/auth"
	searchservice "github.com/magabrotheeeer/recipe-finder/internal/services/search"
	"github.com/magabrotheeeer/recipe-finder/internal/storage/mongodb"
)

// App держит собранные зависимости и HTTP-сервер приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *mongodb.Storage
	cache  *cache.Cache
}

// New собирает приложение из конфига: подключение к MongoDB и redis,
// хранилище сессий, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := mongodb.New(ctx, cfg.MongoConnection)
	if err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(cacheRedis.Db, cfg.SessionTTL)
	jwtMaker := jwt.NewMaker(cfg.SecretKey, cfg.SessionTTL)

	authService := authservice.NewAuthService(db, sessions, jwtMaker)
	searchService := searchservice.NewSearchService(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, searchService, cfg.CORS)

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

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
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
		if closeErr := a.db.Close(timeoutCtx); closeErr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", closeErr))
		}
		if closeErr := a.cache.Db.Close(); closeErr != nil {
			a.logger.Error("failed to close cache", slog.Any("err", closeErr))
		}
		return err
	}
}
