// Package services содержит бизнес-логику регистрации, входа и серверных сессий.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/recipe-finder/internal/lib/jwt"
	"github.com/magabrotheeeer/recipe-finder/internal/lib/password"
	"github.com/magabrotheeeer/recipe-finder/internal/models"
	"github.com/magabrotheeeer/recipe-finder/internal/session"
	"github.com/magabrotheeeer/recipe-finder/internal/storage/mongodb"
)

// ErrUserExists возвращается при регистрации, если username или email уже занят.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials возвращается при входе, если пара email+пароль не подошла.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNoActiveSession возвращается, когда защищенная операция вызвана
// без действующей сессии.
var ErrNoActiveSession = errors.New("no active session")

// UserRepository определяет контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// FindUserByEmail возвращает пользователя по email или mongodb.ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	// FindUserByID возвращает пользователя по строковому идентификатору.
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	// UserExists проверяет одним запросом, занят ли username или email.
	UserExists(ctx context.Context, username, email string) (bool, error)
	// InsertUser сохраняет нового пользователя и возвращает его идентификатор.
	InsertUser(ctx context.Context, user models.User) (string, error)
}

// SessionStore определяет контракт хранилища сессий.
type SessionStore interface {
	// Create создает сессию для пользователя и возвращает её идентификатор.
	Create(ctx context.Context, userID string) (string, error)
	// Get возвращает идентификатор пользователя, привязанный к сессии.
	Get(ctx context.Context, sessionID string) (string, error)
	// Delete уничтожает сессию.
	Delete(ctx context.Context, sessionID string) error
}

// AuthService отвечает за регистрацию, вход, выход и проверку сессий.
type AuthService struct {
	users    UserRepository
	sessions SessionStore
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sessions SessionStore, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Совпадение по любому из полей username/email блокирует регистрацию.
// Вход после регистрации не выполняется.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (string, error) {
	const op = "services.auth.Register"

	exists, err := s.users.UserExists(ctx, username, email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return "", ErrUserExists
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	id, err := s.users.InsertUser(ctx, user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Login проверяет пароль пользователя, создает сессию и возвращает
// данные пользователя вместе с подписанным сессионным токеном.
// Пароль или его хэш наружу не возвращаются.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.PublicUser, string, error) {
	const op = "services.auth.Login"

	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, mongodb.ErrUserNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if err = password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	public := user.Public()
	sessionID, err := s.sessions.Create(ctx, public.ID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.jwtMaker.GenerateToken(sessionID, public.ID, public.Username)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return &public, token, nil
}

// Logout уничтожает сессию. Повторный выход по той же сессии
// возвращает ErrNoActiveSession.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	const op = "services.auth.Logout"

	err := s.sessions.Delete(ctx, sessionID)
	if errors.Is(err, session.ErrSessionNotFound) {
		return ErrNoActiveSession
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ValidateSession проверяет сессионный токен: подпись, наличие живой записи
// сессии и принадлежность её тому же пользователю. Возвращает связанного
// пользователя и идентификатор сессии.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*models.PublicUser, string, error) {
	const op = "services.auth.ValidateSession"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, "", ErrNoActiveSession
	}
	userID, err := s.sessions.Get(ctx, claims.SessionID)
	if errors.Is(err, session.ErrSessionNotFound) {
		return nil, "", ErrNoActiveSession
	}
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if userID != claims.UserID {
		return nil, "", ErrNoActiveSession
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if errors.Is(err, mongodb.ErrUserNotFound) {
		return nil, "", ErrNoActiveSession
	}
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	public := user.Public()
	return &public, claims.SessionID, nil
}
