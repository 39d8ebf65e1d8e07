package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/magabrotheeeer/article-api/internal/models"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его ID.
func (f *TestDataFactory) CreateUser(t *testing.T, email, passwordHash, name string, age int) string {
	id, err := f.storage.RegisterUser(context.Background(), models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Age:          age,
	})
	require.NoError(t, err)
	return id
}

// UniqueEmail возвращает уникальный email для изоляции тестовых данных.
func UniqueEmail() string {
	return uuid.New().String() + "@example.com"
}

// setupTestDatabase поднимает контейнер MongoDB и возвращает подключенное
// хранилище вместе с функцией очистки. Тест пропускается, если контейнерное
// окружение недоступно.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	container, err := tcmongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Skipf("container runtime is not available: %v", err)
	}

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	storage, err := New(connectCtx, uri, "articleapi_test")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close(ctx)
		_ = testcontainers.TerminateContainer(container)
	}
	return storage, cleanup
}
