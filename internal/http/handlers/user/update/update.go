// Package update реализует HTTP-обработчик частичного обновления профиля пользователя.
//
// Обновляются только имя и возраст; непереданные поля остаются без изменений.
// В ответ возвращается профиль после обновления, поле пароля в JSON не попадает.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/article-api/internal/http/response"
	"github.com/magabrotheeeer/article-api/internal/lib/sl"
	"github.com/magabrotheeeer/article-api/internal/models"
	"github.com/magabrotheeeer/article-api/internal/storage"
)

// Request — входные данные для обновления профиля. Оба поля необязательны.
type Request struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// Service описывает интерфейс бизнес-логики обновления профиля.
type Service interface {
	UpdateProfile(ctx context.Context, userID string, name *string, age *int) (*models.User, error)
}

// Handler управляет HTTP-запросами на обновление профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить профиль пользователя
// @Description Частично обновляет имя и возраст. Снимки автора в ранее созданных статьях не меняются.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param userId path string true "Идентификатор пользователя"
// @Param request body Request true "Новые значения профиля"
// @Success 200 {object} map[string]any "Профиль обновлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/users/{userId} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	userID := chi.URLParam(r, "userId")

	user, err := h.service.UpdateProfile(r.Context(), userID, req.Name, req.Age)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Error("user not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to update profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error"))
		return
	}

	log.Info("updated user profile", slog.String("id", userID))
	render.JSON(w, r, map[string]any{
		"message": "user profile updated successfully",
		"user":    user,
	})
}
