// Package services содержит бизнес-логику поиска рецептов с кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/magabrotheeeer/recipe-finder/internal/lib/sl"
)

// MaxResults ограничивает количество возвращаемых рецептов за один запрос.
const MaxResults = 15

// cacheTTL — время жизни закэшированного результата поиска.
// Коллекция рецептов read-only, инвалидация не нужна.
const cacheTTL = time.Minute

// RecipeRepository определяет контракт поиска рецептов в хранилище.
type RecipeRepository interface {
	// SearchRecipesByTitle возвращает не более limit рецептов, чей title
	// соответствует шаблону без учета регистра, в порядке хранилища.
	SearchRecipesByTitle(ctx context.Context, pattern string, limit int64) ([]map[string]any, error)
}

// Cache описывает методы для кэширования результатов поиска.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// SearchService реализует поиск рецептов по подстроке названия.
type SearchService struct {
	repo  RecipeRepository
	cache Cache
	log   *slog.Logger
}

// NewSearchService создает новый экземпляр SearchService.
func NewSearchService(repo RecipeRepository, cache Cache, log *slog.Logger) *SearchService {
	return &SearchService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Search выполняет поиск рецептов, в названии которых query встречается
// как подстрока без учета регистра. Спецсимволы запроса экранируются,
// то есть трактуются буквально, а не как элементы регулярного выражения.
func (s *SearchService) Search(ctx context.Context, query string) ([]map[string]any, error) {
	const op = "services.search.Search"

	cacheKey := "search:" + strings.ToLower(query)
	var cached []map[string]any
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	pattern := regexp.QuoteMeta(query)
	results, err := s.repo.SearchRecipesByTitle(ctx, pattern, MaxResults)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, cacheKey, results, cacheTTL); err != nil {
		s.log.Warn("failed to cache search results", sl.Err(err))
	}
	return results, nil
}
