// Package jwt реализует генерацию и парсинг подписанных сессионных токенов.
//
// Токен связывает клиента с записью серверной сессии: в claims хранятся
// идентификатор сессии и данные пользователя. Сам факт наличия валидного
// токена не означает активную сессию — запись сессии проверяется отдельно.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга сессионных токенов.
type Maker interface {
	// GenerateToken создает токен для указанной сессии и пользователя.
	GenerateToken(sessionID, userID, username string) (string, error)
	// ParseToken возвращает *SessionClaims, если токен корректен.
	ParseToken(tokenStr string) (*SessionClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
