// Package mongodb реализует адаптер хранилища документов.
//
// Адаптер работает с двумя коллекциями — пользователи и рецепты — и отвечает
// за перевод нативных идентификаторов хранилища (ObjectID) в строковую форму
// на своей границе. Каждый вызов к базе ограничен таймаутом из конфига.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/magabrotheeeer/recipe-finder/internal/config"
	"github.com/magabrotheeeer/recipe-finder/internal/models"
)

// ErrUserNotFound возвращается, когда пользователь отсутствует в коллекции.
var ErrUserNotFound = errors.New("user not found")

// Storage хранит подключение к MongoDB и ссылки на коллекции.
type Storage struct {
	client  *mongo.Client
	users   *mongo.Collection
	recipes *mongo.Collection
	timeout time.Duration
}

// New подключается к MongoDB по настройкам и проверяет соединение.
func New(ctx context.Context, cfg config.MongoConnection) (*Storage, error) {
	const op = "storage.mongodb.New"

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(cfg.Database)
	return &Storage{
		client:  client,
		users:   db.Collection(cfg.UsersCollection),
		recipes: db.Collection(cfg.RecipesCollection),
		timeout: cfg.TimeoutMongo,
	}, nil
}

// Close разрывает соединение с базой.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// opCtx ограничивает вызов к базе таймаутом адаптера.
func (s *Storage) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// FindUserByEmail возвращает пользователя по email или ErrUserNotFound.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.mongodb.FindUserByEmail"
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// FindUserByID возвращает пользователя по его строковому идентификатору.
// Некорректный hex трактуется как отсутствие пользователя.
func (s *Storage) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.mongodb.FindUserByID"
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// UserExists проверяет единым запросом, занят ли username или email.
func (s *Storage) UserExists(ctx context.Context, username, email string) (bool, error) {
	const op = "storage.mongodb.UserExists"
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}
	count, err := s.users.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return count > 0, nil
}

// InsertUser сохраняет нового пользователя и возвращает строковый идентификатор.
func (s *Storage) InsertUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.mongodb.InsertUser"
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}
	return oid.Hex(), nil
}

// SearchRecipesByTitle возвращает не более limit рецептов, чей title
// соответствует шаблону без учета регистра. Порядок документов —
// тот, что отдает хранилище, явная сортировка не применяется.
// Все ObjectID в результатах, включая вложенные документы,
// приведены к строкам.
func (s *Storage) SearchRecipesByTitle(ctx context.Context, pattern string, limit int64) ([]map[string]any, error) {
	const op = "storage.mongodb.SearchRecipesByTitle"
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	filter := bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}}
	cursor, err := s.recipes.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	result := make([]map[string]any, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err = cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, normalizeDoc(doc))
	}
	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
