// Package mongodb реализует хранилище пользователей и статей поверх MongoDB.
//
// Storage держит подключение к базе и коллекциям; методы работы с документами
// находятся в users.go и articles.go.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	articlesCollection = "articles"
)

// Storage инкапсулирует клиент MongoDB и коллекции приложения.
type Storage struct {
	Client   *mongo.Client
	Users    *mongo.Collection
	Articles *mongo.Collection
}

// New подключается к MongoDB по строке подключения, проверяет соединение
// и создает уникальный индекс по email пользователей.
func New(ctx context.Context, connectionString, databaseName string) (*Storage, error) {
	const op = "storage.mongodb.New"

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(databaseName)
	s := &Storage{
		Client:   client,
		Users:    db.Collection(usersCollection),
		Articles: db.Collection(articlesCollection),
	}
	if err = s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// ensureIndexes создает уникальный индекс по полю email.
// Уникальность email гарантируется на уровне базы.
func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Close закрывает соединение с базой.
func (s *Storage) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
