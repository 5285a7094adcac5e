// Package models содержит доменную модель пользователя сервиса.
// Структура используется в бизнес-логике и при работе с хранилищем документов.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User представляет зарегистрированного пользователя системы.
//
// ID хранится в MongoDB как ObjectID; за пределы хранилища
// идентификатор выходит только в строковом hex-представлении.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
}

// PublicUser — представление пользователя, возвращаемое наружу.
// Содержит строковый идентификатор и никогда не содержит учетные данные.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public возвращает внешнее представление пользователя.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Email:    u.Email,
	}
}
