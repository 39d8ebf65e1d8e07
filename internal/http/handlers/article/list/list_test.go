package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/article-api/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]models.Article, error) {
	args := m.Called(ctx)
	articles, _ := args.Get(0).([]models.Article)
	return articles, args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	articleID, err := primitive.ObjectIDFromHex("64a1f0c2e13e5a7b9c8d0e99")
	require.NoError(t, err)
	authorID, err := primitive.ObjectIDFromHex("64a1f0c2e13e5a7b9c8d0e12")
	require.NoError(t, err)

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "список со статьями",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return([]models.Article{
					{
						ID:          articleID,
						Title:       "t",
						Description: "d",
						AuthorID:    authorID,
						AuthorName:  "A",
						AuthorAge:   30,
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"articles":[{"id":"64a1f0c2e13e5a7b9c8d0e99","title":"t","description":"d",` +
				`"authorID":"64a1f0c2e13e5a7b9c8d0e12","authorName":"A","authorAge":30}]}`,
		},
		{
			name: "пустой список",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"articles":[]}`,
		},
		{
			name: "ошибка сервиса",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
