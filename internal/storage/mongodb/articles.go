package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/article-api/internal/models"
)

// SaveArticle сохраняет статью и возвращает её с заполненным идентификатором.
func (s *Storage) SaveArticle(ctx context.Context, article models.Article) (*models.Article, error) {
	const op = "storage.SaveArticle"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.Articles.InsertOne(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected inserted id type", op)
	}
	article.ID = id
	return &article, nil
}

// ListArticles возвращает все статьи.
func (s *Storage) ListArticles(ctx context.Context) ([]models.Article, error) {
	const op = "storage.ListArticles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cursor, err := s.Articles.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var result []models.Article
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
