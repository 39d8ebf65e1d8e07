// Package article содержит бизнес-логику создания и получения статей.
package article

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/article-api/internal/models"
)

// UserRepository описывает доступ к пользователям, нужный для проверки автора.
type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// ArticleRepository описывает контракт хранения статей.
type ArticleRepository interface {
	SaveArticle(ctx context.Context, article models.Article) (*models.Article, error)
	ListArticles(ctx context.Context) ([]models.Article, error)
}

// ArticleService создает и перечисляет статьи.
type ArticleService struct {
	users    UserRepository
	articles ArticleRepository
}

// NewArticleService создает новый экземпляр ArticleService.
func NewArticleService(users UserRepository, articles ArticleRepository) *ArticleService {
	return &ArticleService{
		users:    users,
		articles: articles,
	}
}

// Create создает статью от имени пользователя authorID.
//
// Автор должен существовать на момент создания — иначе storage.ErrUserNotFound.
// Имя и возраст автора фиксируются в статье снимком и далее не синхронизируются
// с изменениями профиля. Принадлежность автора определяется authorID из пути,
// а не claims токена.
func (s *ArticleService) Create(ctx context.Context, authorID, title, description string) (*models.Article, error) {
	const op = "services.article.Create"

	author, err := s.users.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	oid, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	article := models.Article{
		Title:       title,
		Description: description,
		AuthorID:    oid,
		AuthorName:  author.Name,
		AuthorAge:   author.Age,
	}
	saved, err := s.articles.SaveArticle(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

// List возвращает все статьи.
func (s *ArticleService) List(ctx context.Context) ([]models.Article, error) {
	const op = "services.article.List"

	result, err := s.articles.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
