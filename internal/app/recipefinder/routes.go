// Package recipefinder предоставляет маршруты для основного приложения.
package recipefinder

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/recipe-finder/internal/config"
	"github.com/magabrotheeeer/recipe-finder/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/recipe-finder/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/recipe-finder/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/recipe-finder/internal/http/handlers/health"
	recipesearch "github.com/magabrotheeeer/recipe-finder/internal/http/handlers/recipe/search"
	"github.com/magabrotheeeer/recipe-finder/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/recipe-finder/internal/services/auth"
	searchservice "github.com/magabrotheeeer/recipe-finder/internal/services/search"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, searchService *searchservice.SearchService, corsCfg config.CORS) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Открытые конечные точки
	r.Post("/register", register.New(logger, authService).ServeHTTP)
	r.Post("/login", login.New(logger, authService).ServeHTTP)
	r.Get("/health", health.New(logger).ServeHTTP)

	// Группа с проверкой сессии
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.SessionMiddleware(authService, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger, 50, 100))
		r.Post("/logout", logout.New(logger, authService).ServeHTTP)
		r.Get("/search", recipesearch.New(logger, searchService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
}
