// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и профиль.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User представляет зарегистрированного пользователя системы.
//
// Email хранится в нижнем регистре и уникален на уровне хранилища.
// PasswordHash никогда не сериализуется в JSON-ответы.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Age          int                `bson:"age" json:"age"`
}
