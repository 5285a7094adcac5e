// Package middlewarectx содержит HTTP middleware для проверки серверных сессий.
//
// SessionMiddleware проверяет сессионный токен в заголовке Authorization,
// валидирует его через сервис аутентификации и в случае успеха добавляет
// в контекст данные пользователя и идентификатор сессии. Защищенный
// обработчик выполняется только после успешной проверки.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/recipe-finder/internal/http/response"
	"github.com/magabrotheeeer/recipe-finder/internal/lib/sl"
	"github.com/magabrotheeeer/recipe-finder/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ для идентификатора пользователя в контексте
	UserID Key = "user_id"
	// Username — ключ для имени пользователя в контексте
	Username Key = "username"
	// SessionID — ключ для идентификатора сессии в контексте
	SessionID Key = "session_id"
)

// Service описывает интерфейс сервиса для проверки сессии.
type Service interface {
	ValidateSession(ctx context.Context, token string) (*models.PublicUser, string, error)
}

// SessionMiddleware возвращает HTTP middleware, который проверяет сессионный
// токен в заголовке Authorization.
//
// Если сессия активна, добавляет данные пользователя и идентификатор сессии
// в контекст запроса, иначе возвращает HTTP 401 Unauthorized.
func SessionMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("no active session"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, sessionID, err := authService.ValidateSession(r.Context(), tokenStr)
			if err != nil {
				log.Error("session validation failed", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("no active session"))
				return
			}
			ctx := context.WithValue(r.Context(), UserID, user.ID)
			ctx = context.WithValue(ctx, Username, user.Username)
			ctx = context.WithValue(ctx, SessionID, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
