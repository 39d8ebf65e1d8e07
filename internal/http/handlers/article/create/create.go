// Package create реализует HTTP-обработчик создания статьи от имени пользователя.
//
// Handler принимает JSON-запрос с данными статьи, проверяет наличие обязательных
// полей, берёт идентификатор автора из сегмента пути {userId} и вызывает
// бизнес-логику создания статьи. Созданная статья возвращается в JSON-формате.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/article-api/internal/http/response"
	"github.com/magabrotheeeer/article-api/internal/lib/sl"
	"github.com/magabrotheeeer/article-api/internal/models"
	"github.com/magabrotheeeer/article-api/internal/storage"
)

// Request — входные данные для создания статьи.
type Request struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Service описывает интерфейс бизнес-логики создания статьи.
type Service interface {
	Create(ctx context.Context, authorID, title, description string) (*models.Article, error)
}

// Handler управляет HTTP-запросами на создание статей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания статей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новую статью
// @Description Создает статью от имени пользователя из пути. Имя и возраст автора фиксируются снимком.
// @Tags Articles
// @Accept  json
// @Produce  json
// @Param userId path string true "Идентификатор автора"
// @Param request body Request true "Данные новой статьи"
// @Success 201 {object} map[string]any "Статья создана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Автор не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /api/users/{userId}/articles [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.create"

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
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userID := chi.URLParam(r, "userId")

	article, err := h.service.Create(r.Context(), userID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Error("author not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found with that ID"))
			return
		}
		log.Error("failed to create article", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error"))
		return
	}

	log.Info("created article", slog.String("id", article.ID.Hex()))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, map[string]any{
		"message": "article created successfully",
		"article": article,
	})
}
