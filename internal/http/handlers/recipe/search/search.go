// Package search реализует HTTP-обработчик поиска рецептов.
//
// Запрос берется из query-параметра; ответ — JSON-массив документов
// рецептов, не более пятнадцати, в порядке хранилища.
package search

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/recipe-finder/internal/http/response"
	"github.com/magabrotheeeer/recipe-finder/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики поиска.
type Service interface {
	Search(ctx context.Context, query string) ([]map[string]any, error)
}

// Handler обрабатывает HTTP-запросы поиска рецептов.
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
	const op = "handlers.recipe.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query().Get("query")
	if query == "" {
		log.Error("empty search query")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("no query provided"))
		return
	}

	results, err := h.service.Search(r.Context(), query)
	if err != nil {
		log.Error("search failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to search recipes"))
		return
	}

	log.Info("search completed", slog.String("query", query), slog.Int("count", len(results)))
	render.JSON(w, r, results)
}
