// Package auth содержит логику бизнес-уровня для регистрации, входа
// и проверки JWT токенов.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/article-api/internal/lib/jwt"
	"github.com/magabrotheeeer/article-api/internal/lib/password"
	"github.com/magabrotheeeer/article-api/internal/models"
	"github.com/magabrotheeeer/article-api/internal/storage"
)

// ErrPasswordMismatch возвращается при неверном пароле существующего пользователя.
var ErrPasswordMismatch = errors.New("password mismatch")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или storage.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users      UserRepository
	jwtMaker   jwt.Maker
	bcryptCost int
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtMaker:   jwtMaker,
		bcryptCost: bcryptCost,
	}
}

// Register создает нового пользователя с хэшированием пароля.
//
// Email приводится к нижнему регистру до проверки уникальности, поэтому
// дубликаты, различающиеся только регистром, отклоняются. Возвращает
// storage.ErrEmailTaken, если email уже занят.
func (s *AuthService) Register(ctx context.Context, email, rawPassword, name string, age int) (string, error) {
	const op = "services.auth.Register"

	email = strings.ToLower(email)
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return "", fmt.Errorf("%s: %w", op, storage.ErrEmailTaken)
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword, s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         name,
		Age:          age,
	}
	id, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Login проверяет пароль пользователя и генерирует JWT с claim userId.
//
// Несуществующий email отдаётся как storage.ErrUserNotFound, неверный
// пароль — как ErrPasswordMismatch.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrPasswordMismatch)
	}
	token, err := s.jwtMaker.GenerateToken(user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken проверяет JWT и возвращает claims с идентификатором пользователя.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.Claims, error) {
	return s.jwtMaker.ParseToken(token)
}
