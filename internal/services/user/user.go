// Package user содержит бизнес-логику обновления профиля пользователя.
package user

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/article-api/internal/models"
)

// UserRepository описывает контракт частичного обновления профиля.
type UserRepository interface {
	UpdateUser(ctx context.Context, userID string, name *string, age *int) (*models.User, error)
}

// UserService обновляет профиль пользователя.
type UserService struct {
	users UserRepository
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// UpdateProfile частично обновляет имя и возраст пользователя, возвращает
// профиль после обновления. nil-поля не изменяются. Статьи пользователя
// сохраняют снимок старого имени и возраста.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, name *string, age *int) (*models.User, error) {
	const op = "services.user.UpdateProfile"

	updated, err := s.users.UpdateUser(ctx, userID, name, age)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}
