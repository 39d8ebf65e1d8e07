// Package articleapi предоставляет маршруты приложения.
package articleapi

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	articlecreate "github.com/magabrotheeeer/article-api/internal/http/handlers/article/create"
	articlelist "github.com/magabrotheeeer/article-api/internal/http/handlers/article/list"
	"github.com/magabrotheeeer/article-api/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/article-api/internal/http/handlers/auth/signup"
	"github.com/magabrotheeeer/article-api/internal/http/handlers/health"
	"github.com/magabrotheeeer/article-api/internal/http/handlers/home"
	userupdate "github.com/magabrotheeeer/article-api/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/article-api/internal/http/middlewarectx"
	articleservice "github.com/magabrotheeeer/article-api/internal/services/article"
	authservice "github.com/magabrotheeeer/article-api/internal/services/auth"
	userservice "github.com/magabrotheeeer/article-api/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, auth *authservice.AuthService, articles *articleservice.ArticleService, users *userservice.UserService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/signup", signup.New(logger, auth).ServeHTTP)
		r.Post("/login", login.New(logger, auth).ServeHTTP)
		r.Patch("/users/{userId}", userupdate.New(logger, users).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(auth, logger))
			r.Post("/users/{userId}/articles", articlecreate.New(logger, articles).ServeHTTP)
			r.Get("/articles", articlelist.New(logger, articles).ServeHTTP)
		})
	})

	r.Get("/", home.New(logger).ServeHTTP)
	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
