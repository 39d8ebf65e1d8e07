package mongodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/article-api/internal/lib/jwt"
	"github.com/magabrotheeeer/article-api/internal/lib/password"
	"github.com/magabrotheeeer/article-api/internal/models"
	articleservice "github.com/magabrotheeeer/article-api/internal/services/article"
	authservice "github.com/magabrotheeeer/article-api/internal/services/auth"
	userservice "github.com/magabrotheeeer/article-api/internal/services/user"
	"github.com/magabrotheeeer/article-api/internal/storage"
)

func TestStorage_RegisterUser(t *testing.T) {
	db, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(db)
	email := UniqueEmail()

	id := factory.CreateUser(t, email, "hashedpassword", "A", 30)
	assert.NotEmpty(t, id)

	got, err := db.GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	assert.Equal(t, email, got.Email)
	assert.Equal(t, "hashedpassword", got.PasswordHash)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, 30, got.Age)

	// Уникальный индекс по email отклоняет второй документ.
	_, err = db.RegisterUser(context.Background(), models.User{
		Email:        email,
		PasswordHash: "otherhash",
		Name:         "B",
		Age:          40,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrEmailTaken))
}

func TestStorage_GetUserByID(t *testing.T) {
	db, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(db)
	id := factory.CreateUser(t, UniqueEmail(), "hash", "A", 30)

	got, err := db.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	_, err = db.GetUserByID(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrUserNotFound))

	_, err = db.GetUserByID(context.Background(), "not-an-object-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrUserNotFound))
}

func TestStorage_UpdateUser(t *testing.T) {
	db, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(db)
	id := factory.CreateUser(t, UniqueEmail(), "hash", "A", 30)

	name := "B"
	got, err := db.UpdateUser(context.Background(), id, &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, 30, got.Age, "age stays untouched on partial update")

	age := 31
	got, err = db.UpdateUser(context.Background(), id, nil, &age)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, 31, got.Age)

	_, err = db.UpdateUser(context.Background(), primitive.NewObjectID().Hex(), &name, &age)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrUserNotFound))
}

func TestStorage_Articles(t *testing.T) {
	db, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(db)
	id := factory.CreateUser(t, UniqueEmail(), "hash", "A", 30)
	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	saved, err := db.SaveArticle(context.Background(), models.Article{
		Title:       "t",
		Description: "d",
		AuthorID:    oid,
		AuthorName:  "A",
		AuthorAge:   30,
	})
	require.NoError(t, err)
	assert.False(t, saved.ID.IsZero())

	articles, err := db.ListArticles(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "t", articles[0].Title)
	assert.Equal(t, "A", articles[0].AuthorName)
}

// Сквозной сценарий: регистрация → вход → создание статьи → список.
func TestEndToEnd_SignupLoginCreateList(t *testing.T) {
	db, cleanup := setupTestDatabase(t)
	defer cleanup()

	maker := jwt.NewMaker("integration_secret", time.Hour)
	auth := authservice.NewAuthService(db, maker, password.DefaultCost)
	articles := articleservice.NewArticleService(db, db)
	users := userservice.NewUserService(db)

	ctx := context.Background()
	email := UniqueEmail()

	userID, err := auth.Register(ctx, email, "pw123", "A", 30)
	require.NoError(t, err)

	stored, err := db.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", stored.PasswordHash, "plaintext must never be stored")

	// Повторная регистрация с тем же email отклоняется.
	_, err = auth.Register(ctx, email, "pw123", "A", 30)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrEmailTaken))

	token, err := auth.Login(ctx, email, "pw123")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	created, err := articles.Create(ctx, userID, "t", "d")
	require.NoError(t, err)
	assert.Equal(t, "A", created.AuthorName)
	assert.Equal(t, 30, created.AuthorAge)

	// Обновление профиля не трогает снимок в уже созданной статье.
	name := "Renamed"
	updated, err := users.UpdateProfile(ctx, userID, &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	listed, err := articles.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "A", listed[0].AuthorName)

	// Статью нельзя создать для несуществующего пользователя.
	_, err = articles.Create(ctx, primitive.NewObjectID().Hex(), "t2", "d2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrUserNotFound))

	listed, err = articles.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1, "failed creation must not persist an orphan article")
}
