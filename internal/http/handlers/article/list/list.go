// Package list реализует HTTP-обработчик получения всех статей.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/article-api/internal/http/response"
	"github.com/magabrotheeeer/article-api/internal/lib/sl"
	"github.com/magabrotheeeer/article-api/internal/models"
)

// Service описывает интерфейс бизнес-логики получения статей.
type Service interface {
	List(ctx context.Context) ([]models.Article, error)
}

// Handler управляет HTTP-запросами на получение списка статей.
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
// @Summary Получить все статьи
// @Tags Articles
// @Produce  json
// @Success 200 {object} map[string]any "Список статей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /api/articles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	articles, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list articles", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("server error"))
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}

	log.Info("listed articles", slog.Int("count", len(articles)))
	render.JSON(w, r, map[string]any{
		"articles": articles,
	})
}
