// Package models содержит доменную модель статьи.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Article представляет статью, созданную от имени пользователя.
//
// AuthorName и AuthorAge — снимок профиля автора на момент создания статьи.
// Последующие изменения профиля на них не влияют.
type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	AuthorID    primitive.ObjectID `bson:"authorID" json:"authorID"`
	AuthorName  string             `bson:"authorName" json:"authorName"`
	AuthorAge   int                `bson:"authorAge" json:"authorAge"`
}
