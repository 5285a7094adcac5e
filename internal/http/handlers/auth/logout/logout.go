// Package logout реализует HTTP-обработчик выхода из системы.
//
// Обработчик стоит за session middleware: идентификатор сессии берется
// из контекста запроса и передается сервису на уничтожение.
package logout

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/recipe-finder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/recipe-finder/internal/http/response"
	"github.com/magabrotheeeer/recipe-finder/internal/lib/sl"
	services "github.com/magabrotheeeer/recipe-finder/internal/services/auth"
)

// Service описывает интерфейс бизнес-логики выхода.
type Service interface {
	Logout(ctx context.Context, sessionID string) error
}

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sessionID, ok := r.Context().Value(middlewarectx.SessionID).(string)
	if !ok || sessionID == "" {
		log.Error("session id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("no active session"))
		return
	}

	if err := h.service.Logout(r.Context(), sessionID); err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			log.Error("logout without active session")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("no active session"))
			return
		}
		log.Error("logout failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to logout"))
		return
	}

	log.Info("session destroyed", slog.String("session_id", sessionID))
	render.JSON(w, r, response.Message("logout successful"))
}
