package signup

import (
	"bytes"
	"context"
	"encoding/json"
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

	"github.com/magabrotheeeer/article-api/internal/storage"
)

// MockService реализует интерфейс signup.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, email, password, name string, age int) (string, error) {
	args := m.Called(ctx, email, password, name, age)
	return args.String(0), args.Error(1)
}

func TestSignupHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			requestBody: Request{
				Email:    "a@x.com",
				Password: "pw123",
				Name:     "A",
				Age:      30,
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "a@x.com", "pw123", "A", 30).
					Return("64a1f0c2e13e5a7b9c8d0e12", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"message":"user created successfully"}`,
		},
		{
			name: "занятый email",
			requestBody: Request{
				Email:    "a@x.com",
				Password: "pw123",
				Name:     "A",
				Age:      30,
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "a@x.com", "pw123", "A", 30).
					Return("", storage.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"email already in use"}`,
		},
		{
			name:           "отсутствуют обязательные поля",
			requestBody:    Request{Email: "a@x.com"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"field Password is a required field, field Name is a required field, field Age is a required field"}`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
		{
			name: "ошибка сервиса",
			requestBody: Request{
				Email:    "a@x.com",
				Password: "pw123",
				Name:     "A",
				Age:      30,
			},
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "a@x.com", "pw123", "A", 30).
					Return("", errors.New("db error"))
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

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
