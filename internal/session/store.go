// Package session реализует серверное хранилище сессий поверх redis.
//
// Запись сессии связывает её идентификатор с идентификатором пользователя.
// Logout удаляет запись, после чего токен с тем же session id перестает
// проходить проверку. TTL записи ограничивает время жизни сессии.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound возвращается, когда запись сессии отсутствует
// или уже уничтожена.
var ErrSessionNotFound = errors.New("session not found")

const keyPrefix = "session:"

// Store хранит активные сессии в redis.
type Store struct {
	db  *redis.Client
	ttl time.Duration
}

// NewStore создает хранилище сессий поверх существующего redis-клиента.
func NewStore(db *redis.Client, ttl time.Duration) *Store {
	return &Store{
		db:  db,
		ttl: ttl,
	}
}

// Create создает запись сессии для пользователя и возвращает её идентификатор.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	const op = "session.Create"
	sessionID := uuid.NewString()
	if err := s.db.Set(ctx, keyPrefix+sessionID, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return sessionID, nil
}

// Get возвращает идентификатор пользователя, привязанный к сессии.
func (s *Store) Get(ctx context.Context, sessionID string) (string, error) {
	const op = "session.Get"
	userID, err := s.db.Get(ctx, keyPrefix+sessionID).Result()
	if err == redis.Nil {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return userID, nil
}

// Delete уничтожает сессию. Возвращает ErrSessionNotFound,
// если записи уже нет.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	const op = "session.Delete"
	deleted, err := s.db.Del(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}
